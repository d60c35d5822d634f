package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazegen/internal/storage"
)

func sampleRuns() []storage.Run {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []storage.Run{
		{ID: "b", Seed: 7, Width: 20, Height: 10, Output: "b.png", DurationMs: 3, CreatedAt: at},
		{ID: "a", Seed: 5, Width: 100, Height: 75, Output: "a.png", DurationMs: 12, CreatedAt: at.Add(-time.Hour)},
	}
}

func TestHistorySelect(t *testing.T) {
	m := NewHistoryModel(sampleRuns(), 100, 30)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	hm, ok := next.(HistoryModel)
	require.True(t, ok)
	assert.NotNil(t, cmd)
	require.NotNil(t, hm.Selected())
	assert.Equal(t, "b", hm.Selected().ID)
}

func TestHistoryQuitWithoutSelection(t *testing.T) {
	m := NewHistoryModel(sampleRuns(), 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	hm := next.(HistoryModel)
	assert.Nil(t, hm.Selected())
	assert.Empty(t, hm.View())
}

func TestHistoryEmpty(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)

	assert.Contains(t, m.View(), "No mazes recorded yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, next.(HistoryModel).Selected())
}

func TestHistoryRow(t *testing.T) {
	row := HistoryRow(sampleRuns()[1])
	assert.Equal(t, "100x75", row[1])
	assert.Equal(t, "5", row[2])
	assert.Equal(t, "12ms", row[3])
	assert.Equal(t, "a.png", row[4])
}
