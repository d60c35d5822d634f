package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazegen/internal/core"
	"github.com/vovakirdan/mazegen/internal/maze"
	"github.com/vovakirdan/mazegen/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testViewerConfig() ViewerConfig {
	cfg := DefaultViewerConfig()
	cfg.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}
	cfg.Logger = log.New(io.Discard)
	return cfg
}

func update(t *testing.T, m ViewerModel, msg tea.Msg) (ViewerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(ViewerModel)
	require.True(t, ok, "Update returned %T", next)
	return vm, cmd
}

func TestViewerFitsTerminal(t *testing.T) {
	m := NewViewerModel(testViewerConfig())

	w, h := m.Size()
	assert.Equal(t, 19, w)
	assert.Equal(t, 10, h)
	assert.Equal(t, int64(42), m.Seed())

	require.NotNil(t, m.Grid())
	assert.True(t, maze.Analyze(m.Grid()).Perfect())
	assert.Contains(t, m.View(), "seed 42")
}

func TestViewerFixedSize(t *testing.T) {
	cfg := testViewerConfig()
	cfg.Width, cfg.Height = 5, 3
	m := NewViewerModel(cfg)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})
	w, h := m.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 3, h)
}

func TestViewerRefitsOnResize(t *testing.T) {
	m := NewViewerModel(testViewerConfig())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	w, h := m.Size()
	assert.Equal(t, 9, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, 9, m.Grid().Width())
}

func TestViewerNextAndPrev(t *testing.T) {
	m := NewViewerModel(testViewerConfig())
	first := m.Grid().Clone()

	m, _ = update(t, m, runeKey('p'))
	assert.Equal(t, "no earlier maze", m.Status())

	m, _ = update(t, m, runeKey('n'))
	assert.NotEqual(t, int64(42), m.Seed())
	second := m.Seed()

	m, _ = update(t, m, runeKey('p'))
	assert.Equal(t, int64(42), m.Seed())
	assert.True(t, first.Equal(m.Grid()))

	// Forward again revisits the same seed instead of drawing a new one.
	m, _ = update(t, m, runeKey('n'))
	assert.Equal(t, second, m.Seed())
}

func TestViewerAnimationMatchesGenerate(t *testing.T) {
	cfg := testViewerConfig()
	cfg.Width, cfg.Height = 6, 4
	m := NewViewerModel(cfg)

	m, cmd := update(t, m, runeKey('a'))
	require.True(t, m.Animating())
	require.NotNil(t, cmd)

	for i := 0; m.Animating(); i++ {
		require.Less(t, i, 1000, "animation did not finish")
		m, _ = update(t, m, TickMsg{Time: time.Now(), Anim: m.anim})
	}

	want, _, err := maze.Generate(6, 4, core.NewRNG(42))
	require.NoError(t, err)
	assert.True(t, want.Equal(m.Grid()))
}

func TestViewerAnimationSkip(t *testing.T) {
	cfg := testViewerConfig()
	cfg.Animate = true
	m := NewViewerModel(cfg)
	require.True(t, m.Animating())
	require.NotNil(t, m.Init())

	m, _ = update(t, m, runeKey('a'))
	assert.False(t, m.Animating())
	assert.True(t, maze.Analyze(m.Grid()).Perfect())
}

func TestViewerSaveDisabledWithoutDir(t *testing.T) {
	m := NewViewerModel(testViewerConfig())

	m, _ = update(t, m, runeKey('s'))
	assert.Empty(t, m.Status())
}

type memRecorder struct {
	runs []storage.Run
}

func (r *memRecorder) SaveRun(run storage.Run) (string, error) {
	r.runs = append(r.runs, run)
	return "run-1", nil
}

func TestViewerSave(t *testing.T) {
	dir := t.TempDir()
	rec := &memRecorder{}
	cfg := testViewerConfig()
	cfg.Width, cfg.Height = 4, 3
	cfg.SaveDir = dir
	cfg.Recorder = rec
	m := NewViewerModel(cfg)

	m, _ = update(t, m, runeKey('s'))
	assert.Contains(t, m.Status(), "saved")

	_, err := os.Stat(filepath.Join(dir, "maze_42.png"))
	require.NoError(t, err)
	require.Len(t, rec.runs, 1)
	assert.Equal(t, int64(42), rec.runs[0].Seed)
	assert.Equal(t, 4, rec.runs[0].Width)
}

func TestViewerQuit(t *testing.T) {
	m := NewViewerModel(testViewerConfig())

	m, cmd := update(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'a', core.ColorDefault)
	s.SetColored(1, 0, 'b', core.ColorDefault)
	s.SetColored(3, 1, '#', core.ColorBrightWhite)

	out := RenderScreen(s)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "#")
}

func TestViewerDropsTicksFromReplacedAnimation(t *testing.T) {
	cfg := testViewerConfig()
	cfg.Width, cfg.Height = 20, 10
	cfg.StepsPerTick = 1
	m := NewViewerModel(cfg)

	m, _ = update(t, m, runeKey('a'))
	first := m.anim
	m, _ = update(t, m, runeKey('a')) // finish
	require.False(t, m.Animating())
	m, cmd := update(t, m, runeKey('a')) // restart
	require.True(t, m.Animating())
	require.NotNil(t, cmd)
	require.NotEqual(t, first, m.anim)

	left := m.gen.Unvisited()
	m, cmd = update(t, m, TickMsg{Time: time.Now(), Anim: first})
	assert.Nil(t, cmd, "a tick from the finished animation must not schedule another")
	assert.Equal(t, left, m.gen.Unvisited())

	_, cmd = update(t, m, TickMsg{Time: time.Now(), Anim: m.anim})
	assert.NotNil(t, cmd)
}

func TestViewerResizeKeepsAnimationTicking(t *testing.T) {
	cfg := testViewerConfig()
	cfg.StepsPerTick = 1
	m := NewViewerModel(cfg)

	m, _ = update(t, m, runeKey('a'))
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	require.True(t, m.Animating())
	assert.NotNil(t, cmd)
}

func TestViewerScrollKeys(t *testing.T) {
	cfg := testViewerConfig()
	cfg.Width, cfg.Height = 30, 30
	m := NewViewerModel(cfg)

	assert.Equal(t, m.keys.Down.Help(), m.viewport.KeyMap.Down.Help())

	m, _ = update(t, m, runeKey('j'))
	assert.Equal(t, 1, m.viewport.YOffset)
	m, _ = update(t, m, runeKey('k'))
	assert.Equal(t, 0, m.viewport.YOffset)

	m, _ = update(t, m, runeKey('l'))
	assert.Greater(t, m.viewport.HorizontalScrollPercent(), 0.0)
	m, _ = update(t, m, runeKey('h'))
	assert.Zero(t, m.viewport.HorizontalScrollPercent())

	// Space moves to the next maze instead of paging.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 2, len(m.seeds))
	assert.Equal(t, 0, m.viewport.YOffset)
}
