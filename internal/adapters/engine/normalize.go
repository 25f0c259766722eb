// Package engine provides the transform engines applied to candidate files.
package engine

import (
	"context"
	"strings"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
)

// Option keys understood by Normalizer.
const (
	OptTrimTrailingWhitespace = "trim_trailing_whitespace"
	OptIndentSize             = "indent_size"
	OptIndentWithTabs         = "indent_with_tabs"
	OptPreserveNewlines       = "preserve_newlines"
	OptMaxPreserveNewlines    = "max_preserve_newlines"
	OptEOL                    = "eol"
	OptEndWithNewline         = "end_with_newline"
)

var _ ports.TransformEngine = (*Normalizer)(nil)

// Normalizer is a language-agnostic whitespace formatter.
// Applying it to its own output yields the same output.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

type normalizeConfig struct {
	trim             bool
	indentSize       int
	indentWithTabs   bool
	preserveNewlines bool
	maxBlank         int
	eol              string
	endWithNewline   bool
}

func newNormalizeConfig(opts domain.Options) normalizeConfig {
	return normalizeConfig{
		trim:             opts.Bool(OptTrimTrailingWhitespace, true),
		indentSize:       opts.Int(OptIndentSize, 4),
		indentWithTabs:   opts.Bool(OptIndentWithTabs, false),
		preserveNewlines: opts.Bool(OptPreserveNewlines, true),
		maxBlank:         opts.Int(OptMaxPreserveNewlines, 0),
		eol:              parseEOL(opts.String(OptEOL, "")),
		endWithNewline:   opts.Bool(OptEndWithNewline, false),
	}
}

func parseEOL(v string) string {
	switch strings.ToLower(v) {
	case "\n", "lf":
		return "\n"
	case "\r\n", "crlf":
		return "\r\n"
	default:
		return ""
	}
}

type line struct {
	body string
	term string
}

// Transform normalizes whitespace in content according to opts.
func (n *Normalizer) Transform(ctx context.Context, content string, opts domain.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cfg := newNormalizeConfig(opts)
	lines := splitLines(content)

	out := make([]line, 0, len(lines))
	blankRun := 0
	for _, l := range lines {
		if cfg.trim {
			l.body = strings.TrimRight(l.body, " \t")
		}
		l.body = reindent(l.body, cfg)

		if strings.TrimSpace(l.body) == "" {
			blankRun++
			if !cfg.preserveNewlines || (cfg.maxBlank > 0 && blankRun > cfg.maxBlank) {
				continue
			}
		} else {
			blankRun = 0
		}

		if cfg.eol != "" && l.term != "" {
			l.term = cfg.eol
		}
		out = append(out, l)
	}

	if cfg.endWithNewline {
		out = ensureFinalNewline(out, cfg.eol)
	}

	var b strings.Builder
	b.Grow(len(content))
	for _, l := range out {
		b.WriteString(l.body)
		b.WriteString(l.term)
	}
	return b.String(), nil
}

// splitLines splits content after every "\n", keeping "\r\n" together.
// An empty final fragment is dropped.
func splitLines(content string) []line {
	var lines []line
	for content != "" {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, line{body: content})
			break
		}
		body, term := content[:i], "\n"
		if strings.HasSuffix(body, "\r") {
			body, term = body[:len(body)-1], "\r\n"
		}
		lines = append(lines, line{body: body, term: term})
		content = content[i+1:]
	}
	return lines
}

// reindent rewrites the leading whitespace of body as spaces or tabs.
func reindent(body string, cfg normalizeConfig) string {
	if cfg.indentSize <= 0 {
		return body
	}

	end := 0
	cols := 0
	for end < len(body) && (body[end] == ' ' || body[end] == '\t') {
		if body[end] == '\t' {
			cols += cfg.indentSize
		} else {
			cols++
		}
		end++
	}
	if end == 0 {
		return body
	}

	var indent string
	if cfg.indentWithTabs {
		indent = strings.Repeat("\t", cols/cfg.indentSize) + strings.Repeat(" ", cols%cfg.indentSize)
	} else {
		indent = strings.Repeat(" ", cols)
	}
	return indent + body[end:]
}

// ensureFinalNewline drops trailing blank lines and terminates the last line exactly once.
func ensureFinalNewline(lines []line, eol string) []line {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1].body) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return lines
	}

	last := &lines[len(lines)-1]
	if eol == "" {
		if last.term != "" {
			return lines
		}
		eol = lines[0].term
		if eol == "" {
			eol = "\n"
		}
	}
	last.term = eol
	return lines
}
