package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/core"
	"github.com/vovakirdan/mazegen/internal/generate"
	"github.com/vovakirdan/mazegen/internal/maze"
	"github.com/vovakirdan/mazegen/internal/render"
)

// Viewer layout constants
const (
	viewerReservedRows  = 3   // Title, status and help lines
	viewerCacheSize     = 32  // Finished mazes kept for p/n navigation
	defaultStepsPerTick = 8   // Generator steps per animation tick
	defaultAnimateRate  = 30  // Animation ticks per second
	maxSeedHistory      = 256 // Seeds remembered for p/n navigation
	viewerScrollColumns = 4   // Columns moved per left/right key
)

// ViewerConfig configures a ViewerModel.
type ViewerConfig struct {
	Runtime core.RuntimeConfig

	// Width and Height fix the maze size in cells. Zero fits the maze to
	// the terminal and refits it on resize.
	Width  int
	Height int

	Text render.TextOptions

	// Base supplies geometry, colors and output for PNG saves. A maze saved
	// from the viewer goes through the same pipeline as the root command.
	Base     config.Config
	Recorder generate.Recorder
	Logger   *log.Logger

	// SaveDir is where PNGs are written. Empty disables saving.
	SaveDir string

	StepsPerTick int
	TickRate     int
	Animate      bool // Start the first maze animated
}

// DefaultViewerConfig returns a config that fits mazes to an 80x24 terminal.
func DefaultViewerConfig() ViewerConfig {
	return ViewerConfig{
		Runtime:      core.DefaultConfig(),
		Text:         render.DefaultTextOptions(),
		Base:         config.Default(),
		StepsPerTick: defaultStepsPerTick,
		TickRate:     defaultAnimateRate,
	}
}

type frameKey struct {
	seed int64
	w, h int
}

type frame struct {
	grid  *maze.Grid
	stats maze.Stats
}

// ViewerModel is the Bubble Tea model for browsing generated mazes.
type ViewerModel struct {
	cfg      ViewerConfig
	keys     ViewerKeyMap
	help     help.Model
	viewport viewport.Model
	cache    *lru.Cache[frameKey, frame]

	seeds  []int64 // Seeds shown so far, oldest first
	cursor int     // Index into seeds of the maze on screen

	grid  *maze.Grid
	stats maze.Stats
	gen   *maze.Generator // Non-nil while an animation is running
	anim  int             // Bumped on every startAnimation; tags TickMsg

	mazeW, mazeH int
	status       string
	quitting     bool
}

// NewViewerModel creates a viewer showing the maze for cfg.Runtime.Seed.
func NewViewerModel(cfg ViewerConfig) ViewerModel {
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = defaultStepsPerTick
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultAnimateRate
	}
	if cfg.Text.Geometry == (render.Geometry{}) {
		cfg.Text = render.DefaultTextOptions()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	// Size is constant and positive so New cannot fail.
	cache, _ := lru.New[frameKey, frame](viewerCacheSize)

	h := help.New()
	h.ShowAll = false

	m := ViewerModel{
		cfg:    cfg,
		keys:   DefaultViewerKeyMap(),
		help:   h,
		cache:  cache,
		seeds:  []int64{core.ResolveSeed(cfg.Runtime.Seed)},
		cursor: 0,
	}
	if cfg.SaveDir == "" {
		m.keys.Save.SetEnabled(false)
	}

	m.viewport = viewport.New(cfg.Runtime.ScreenW, max(cfg.Runtime.ScreenH-viewerReservedRows, 1))
	m.viewport.KeyMap.Up = m.keys.Up
	m.viewport.KeyMap.Down = m.keys.Down
	m.viewport.KeyMap.Left = m.keys.Left
	m.viewport.KeyMap.Right = m.keys.Right
	// Space belongs to Next.
	m.viewport.KeyMap.PageDown = key.NewBinding(
		key.WithKeys("pgdown", "f"),
		key.WithHelp("f/pgdn", "page down"),
	)
	m.viewport.SetHorizontalStep(viewerScrollColumns)
	m.help.Width = cfg.Runtime.ScreenW
	m.fitMaze()
	if cfg.Animate {
		m.startAnimation()
	} else {
		m.load()
	}
	return m
}

// fitMaze picks the maze size for the current screen.
func (m *ViewerModel) fitMaze() {
	if m.cfg.Width > 0 && m.cfg.Height > 0 {
		m.mazeW, m.mazeH = m.cfg.Width, m.cfg.Height
		return
	}
	g := m.cfg.Text.Geometry
	m.mazeW, m.mazeH = m.cfg.Runtime.MazeFit(g.CellWidth, g.CellHeight, g.WallWidth, g.WallHeight, viewerReservedRows)
}

// Seed returns the seed of the maze on screen.
func (m ViewerModel) Seed() int64 {
	return m.seeds[m.cursor]
}

// Size returns the maze size in cells.
func (m ViewerModel) Size() (w, h int) {
	return m.mazeW, m.mazeH
}

// Grid returns the maze on screen. While animating it is the partial grid.
func (m ViewerModel) Grid() *maze.Grid {
	if m.gen != nil {
		return m.gen.Grid()
	}
	return m.grid
}

// Animating reports whether a generation is being played step by step.
func (m ViewerModel) Animating() bool {
	return m.gen != nil
}

// Status returns the last status line message.
func (m ViewerModel) Status() string {
	return m.status
}

// IsQuitting returns true if the user asked to leave the viewer.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// load shows the finished maze for the current seed, generating it on a
// cache miss.
func (m *ViewerModel) load() {
	m.gen = nil
	k := frameKey{seed: m.Seed(), w: m.mazeW, h: m.mazeH}
	if f, ok := m.cache.Get(k); ok {
		m.grid, m.stats = f.grid, f.stats
		m.refresh()
		return
	}

	grid, stats, err := maze.Generate(m.mazeW, m.mazeH, core.NewRNG(uint64(k.seed)))
	if err != nil {
		m.grid = nil
		m.status = err.Error()
		m.refresh()
		return
	}
	m.grid = grid
	m.stats = stats
	m.cache.Add(k, frame{grid: grid, stats: stats})
	m.refresh()
}

// startAnimation restarts generation of the current seed one step at a time.
func (m *ViewerModel) startAnimation() {
	gen, err := maze.NewGenerator(m.mazeW, m.mazeH, core.NewRNG(uint64(m.Seed())))
	if err != nil {
		m.status = err.Error()
		m.gen = nil
		return
	}
	m.gen = gen
	m.anim++
	m.grid = nil
	m.refresh()
}

// animTick schedules the next tick of the running animation, if any.
func (m ViewerModel) animTick() tea.Cmd {
	if m.gen == nil {
		return nil
	}
	return tickCmd(m.cfg.TickRate, m.anim)
}

// advance runs one animation tick. It reports whether the animation continues.
func (m *ViewerModel) advance() bool {
	if m.gen == nil {
		return false
	}
	for range m.cfg.StepsPerTick {
		if m.gen.Step() == maze.StateDone {
			break
		}
	}
	if m.gen.State() == maze.StateDone {
		m.grid = m.gen.Grid()
		m.stats = m.gen.Stats()
		m.cache.Add(frameKey{seed: m.Seed(), w: m.mazeW, h: m.mazeH}, frame{grid: m.grid, stats: m.stats})
		m.gen = nil
		m.refresh()
		return false
	}
	m.refresh()
	return true
}

// refresh re-renders the maze into the viewport.
func (m *ViewerModel) refresh() {
	grid := m.Grid()
	if grid == nil {
		m.viewport.SetContent("")
		return
	}
	screen, err := render.Text(grid, m.cfg.Text)
	if err != nil {
		m.status = err.Error()
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(RenderScreen(screen))
}

// next moves forward in the seed history, drawing a fresh seed at the end.
func (m *ViewerModel) next() {
	if m.cursor < len(m.seeds)-1 {
		m.cursor++
		return
	}
	seed := core.ResolveSeed(0)
	for seed == m.seeds[len(m.seeds)-1] {
		seed++
	}
	m.seeds = append(m.seeds, seed)
	if len(m.seeds) > maxSeedHistory {
		m.seeds = m.seeds[1:]
	}
	m.cursor = len(m.seeds) - 1
}

// prev moves back in the seed history. It reports whether it moved.
func (m *ViewerModel) prev() bool {
	if m.cursor == 0 {
		return false
	}
	m.cursor--
	return true
}

// save writes the current maze as a PNG using the configured geometry.
func (m *ViewerModel) save() {
	if m.cfg.SaveDir == "" {
		return
	}
	if m.gen != nil {
		m.status = "wait for the maze to finish"
		return
	}

	cfg := m.cfg.Base
	cfg.Grid.Width = m.mazeW
	cfg.Grid.Height = m.mazeH
	cfg.Seed = m.Seed()
	cfg.Output = filepath.Join(m.cfg.SaveDir, fmt.Sprintf("maze_%d.png", m.Seed()))

	res, err := generate.Run(generate.Options{
		Config:   cfg,
		Logger:   m.cfg.Logger,
		Recorder: m.cfg.Recorder,
	})
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("saved %s (%dx%d px)", res.Output, res.Width, res.Height)
}

// Init initializes the viewer.
func (m ViewerModel) Init() tea.Cmd {
	return m.animTick()
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.Runtime.ScreenW = msg.Width
		m.cfg.Runtime.ScreenH = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-viewerReservedRows, 1)
		m.help.Width = msg.Width

		w, h := m.mazeW, m.mazeH
		m.fitMaze()
		if w == m.mazeW && h == m.mazeH {
			m.refresh()
			return m, nil
		}
		if m.gen != nil {
			m.startAnimation()
			return m, m.animTick()
		}
		m.load()
		return m, nil

	case TickMsg:
		if msg.Anim != m.anim {
			return m, nil
		}
		if m.advance() {
			return m, m.animTick()
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.next()
		m.load()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if !m.prev() {
			m.status = "no earlier maze"
			return m, nil
		}
		m.load()
		return m, nil

	case key.Matches(msg, m.keys.Animate):
		if m.gen != nil {
			// Second press skips to the end.
			m.gen.Run()
			m.advance()
			return m, nil
		}
		m.startAnimation()
		return m, m.animTick()

	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("MAZE %dx%d  seed %d  [%d/%d]", m.mazeW, m.mazeH, m.Seed(), m.cursor+1, len(m.seeds))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	status := m.status
	if status == "" {
		status = m.describe()
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// describe summarizes the maze on screen for the status line.
func (m ViewerModel) describe() string {
	if m.gen != nil {
		return fmt.Sprintf("carving... %d cells left, frontier %d", m.gen.Unvisited(), len(m.gen.Frontier()))
	}
	if m.grid == nil {
		return ""
	}
	return fmt.Sprintf("%d passages, %d backtracks, max depth %d",
		m.stats.Passages, m.stats.Backtracks, m.stats.MaxDepth)
}

// RunViewer starts the maze viewer in the alternate screen.
func RunViewer(cfg ViewerConfig) error {
	p := tea.NewProgram(
		NewViewerModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
