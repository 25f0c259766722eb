package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/ui/style"
)

const (
	statusRunning = "running"
	statusDone    = "done"
	statusCached  = "cached"
	statusFailed  = "failed"

	maxLogLines = 5
)

// VertexState is the view of one candidate file.
type VertexState struct {
	ID       string
	Name     string
	Status   string
	Error    string
	Expanded bool
}

// Model is the Bubble Tea model for the progress view.
type Model struct {
	tape     TapeSource
	total    int
	vertices []VertexState
	index    map[string]int
	logs     map[string][]string
	width    int
	height   int
	spinner  spinner.Model
	ended    bool

	SelectedIdx int
	MinLogLevel domain.LogLevel
}

// NewModel creates a progress view over tape for a run of total files.
func NewModel(tape TapeSource, total int) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.Stale

	return &Model{
		tape:        tape,
		total:       total,
		index:       make(map[string]int),
		logs:        make(map[string][]string),
		spinner:     s,
		MinLogLevel: domain.LogLevelInfo,
	}
}

// Init starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.apply(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		m.ended = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		if len(m.vertices) > 0 {
			m.SelectedIdx = (m.SelectedIdx + 1) % len(m.vertices)
		}
	case "k", "up":
		if len(m.vertices) > 0 {
			m.SelectedIdx = (m.SelectedIdx - 1 + len(m.vertices)) % len(m.vertices)
		}
	case "enter", " ":
		if m.SelectedIdx < len(m.vertices) {
			m.vertices[m.SelectedIdx].Expanded = !m.vertices[m.SelectedIdx].Expanded
		}
	case "+":
		m.MinLogLevel = max(m.MinLogLevel-4, domain.LogLevelDebug)
	case "-":
		m.MinLogLevel = min(m.MinLogLevel+4, domain.LogLevelError)
	}
	return m, nil
}

// Ended reports whether the view closed because the run finished,
// rather than because the user quit.
func (m *Model) Ended() bool {
	return m.ended
}

// apply folds one progrock update into the model.
func (m *Model) apply(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		i, ok := m.index[v.Id]
		if !ok {
			i = len(m.vertices)
			m.index[v.Id] = i
			m.vertices = append(m.vertices, VertexState{ID: v.Id, Name: v.Name, Status: statusRunning})
		}

		state := &m.vertices[i]
		switch {
		case v.Error != nil:
			state.Status = statusFailed
			state.Error = *v.Error
			state.Expanded = true
		case v.Cached:
			state.Status = statusCached
		case v.Completed != nil:
			state.Status = statusDone
		}
	}

	for _, l := range update.Logs {
		for line := range strings.SplitSeq(strings.TrimRight(string(l.Data), "\n"), "\n") {
			if line != "" {
				m.logs[l.Vertex] = append(m.logs[l.Vertex], line)
			}
		}
	}
}

// counts returns how many files finished and how many of them failed.
func (m *Model) counts() (finished, failed int) {
	for _, v := range m.vertices {
		switch v.Status {
		case statusDone, statusCached:
			finished++
		case statusFailed:
			finished++
			failed++
		}
	}
	return finished, failed
}
