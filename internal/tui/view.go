package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/ui/style"
)

// View renders the header and a window of file rows around the selection.
func (m *Model) View() string {
	var s strings.Builder

	finished, failed := m.counts()
	header := fmt.Sprintf("%s %d/%d files", style.Bold.Render("reform"), finished, m.total)
	if failed > 0 {
		header += " " + style.Failed.Render(fmt.Sprintf("%d failed", failed))
	}
	s.WriteString(header + "\n")

	budget := m.height - 1
	start := 0
	if budget > 0 && len(m.vertices) > budget {
		start = max(0, m.SelectedIdx-budget/2)
		start = min(start, len(m.vertices)-budget)
	}

	lines := 0
	for i := start; i < len(m.vertices); i++ {
		if budget > 0 && lines >= budget {
			break
		}
		v := m.vertices[i]

		cursor := "  "
		if i == m.SelectedIdx {
			cursor = style.Accent.Render("> ")
		}
		s.WriteString(fmt.Sprintf("%s%s %s", cursor, m.icon(v.Status), v.Name))
		if v.Status == statusCached {
			s.WriteString(style.Muted.Render(" (cached)"))
		}
		s.WriteString("\n")
		lines++

		if !v.Expanded {
			continue
		}
		if v.Error != "" {
			s.WriteString("      " + style.Failed.Render(v.Error) + "\n")
			lines++
		}
		for _, line := range m.visibleLogs(v.ID) {
			s.WriteString("      " + style.Muted.Render(line) + "\n")
			lines++
		}
	}

	return s.String()
}

func (m *Model) icon(status string) string {
	switch status {
	case statusRunning:
		return m.spinner.View()
	case statusDone:
		return style.Fresh.Render(style.Check)
	case statusCached:
		return style.Muted.Render(style.Circle)
	case statusFailed:
		return style.Failed.Render(style.Cross)
	default:
		return style.Muted.Render(style.Dot)
	}
}

// visibleLogs returns the tail of the vertex log at or above MinLogLevel.
func (m *Model) visibleLogs(id string) []string {
	var out []string
	for _, line := range m.logs[id] {
		if lineLevel(line) >= m.MinLogLevel {
			out = append(out, line)
		}
	}
	if len(out) > maxLogLines {
		out = out[len(out)-maxLogLines:]
	}
	return out
}

// lineLevel reads the "[LEVEL] " prefix written by vertex logs.
// Unprefixed lines, such as engine stderr, count as info.
func lineLevel(line string) domain.LogLevel {
	for _, level := range []domain.LogLevel{
		domain.LogLevelDebug, domain.LogLevelInfo, domain.LogLevelWarn, domain.LogLevelError,
	} {
		if strings.HasPrefix(line, "["+level.String()+"]") {
			return level
		}
	}
	return domain.LogLevelInfo
}
