//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/reform/internal/core/domain"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type endedTape struct{}

func (endedTape) Read() (*progrock.StatusUpdate, error) {
	return nil, io.EOF
}

func TestWaitForTape_EndsOnError(t *testing.T) {
	msg := WaitForTape(endedTape{})()
	assert.IsType(t, MsgTapeEnded{}, msg)
}

func TestModel_Update_TapeUpdate_AddsRunningVertex(t *testing.T) {
	m := NewModel(endedTape{}, 3)

	_, cmd := m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "1", Name: "src/a.js"}},
	}})

	require.Len(t, m.vertices, 1)
	assert.Equal(t, "src/a.js", m.vertices[0].Name)
	assert.Equal(t, statusRunning, m.vertices[0].Status)
	assert.NotNil(t, cmd)
}

func TestModel_Update_TapeUpdate_Outcomes(t *testing.T) {
	m := NewModel(endedTape{}, 3)
	now := timestamppb.New(time.Now())
	msg := "transform failed"

	m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "a.js", Completed: now},
			{Id: "2", Name: "b.js", Completed: now, Cached: true},
			{Id: "3", Name: "c.js", Completed: now, Error: &msg},
		},
	}})

	assert.Equal(t, statusDone, m.vertices[0].Status)
	assert.Equal(t, statusCached, m.vertices[1].Status)
	assert.Equal(t, statusFailed, m.vertices[2].Status)
	assert.True(t, m.vertices[2].Expanded, "failed files open their details")

	finished, failed := m.counts()
	assert.Equal(t, 3, finished)
	assert.Equal(t, 1, failed)
}

func TestModel_Update_TapeEnded_Quits(t *testing.T) {
	m := NewModel(endedTape{}, 0)

	_, cmd := m.Update(MsgTapeEnded{})

	assert.True(t, m.ended)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Update_KeyMsg_Navigation(t *testing.T) {
	m := NewModel(endedTape{}, 3)
	m.vertices = []VertexState{
		{ID: "1", Name: "a.js"},
		{ID: "2", Name: "b.js"},
		{ID: "3", Name: "c.js"},
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, m.SelectedIdx)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.SelectedIdx)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 2, m.SelectedIdx)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.vertices[2].Expanded)
}

func TestModel_Update_KeyMsg_Verbosity(t *testing.T) {
	m := NewModel(endedTape{}, 0)
	assert.Equal(t, domain.LogLevelInfo, m.MinLogLevel)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	assert.Equal(t, domain.LogLevelDebug, m.MinLogLevel)

	for range 4 {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	}
	assert.Equal(t, domain.LogLevelError, m.MinLogLevel)
}

func TestModel_View(t *testing.T) {
	m := NewModel(endedTape{}, 4)
	m.vertices = []VertexState{
		{ID: "1", Name: "src/a.js", Status: statusDone},
		{ID: "2", Name: "src/b.js", Status: statusCached},
		{ID: "3", Name: "src/c.js", Status: statusFailed, Error: "exit status 2", Expanded: true},
	}
	m.logs["3"] = []string{"[DEBUG] transform-failed", "unexpected token"}

	output := m.View()

	assert.Contains(t, output, "3/4 files")
	assert.Contains(t, output, "1 failed")
	assert.Contains(t, output, "src/a.js")
	assert.Contains(t, output, "(cached)")
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "exit status 2")
	assert.Contains(t, output, "unexpected token")
	assert.NotContains(t, output, "transform-failed")
}

func TestModel_View_Scrolling(t *testing.T) {
	m := NewModel(endedTape{}, 5)
	m.height = 4
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		m.vertices = append(m.vertices, VertexState{ID: id, Name: "file-" + id, Status: statusDone})
	}

	output := m.View()
	assert.Contains(t, output, "file-1")
	assert.Contains(t, output, "file-3")
	assert.NotContains(t, output, "file-4")

	m.SelectedIdx = 4
	output = m.View()
	assert.NotContains(t, output, "file-2")
	assert.Contains(t, output, "file-3")
	assert.Contains(t, output, "file-5")
}

func TestModel_VisibleLogs_Tail(t *testing.T) {
	m := NewModel(endedTape{}, 1)
	m.logs["1"] = []string{"1", "2", "3", "4", "5", "6", "7"}

	assert.Equal(t, []string{"3", "4", "5", "6", "7"}, m.visibleLogs("1"))
}
