// Package linear provides a synchronous, line-per-file progress printer for CI environments.
package linear

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/reform/internal/ui/output"
	"go.trai.ch/reform/internal/ui/style"
)

// TapeSource yields progrock updates in the order they were recorded.
type TapeSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// Renderer prints one line per finished file and prefixes engine stderr with the file name.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	names   map[string]string
	done    map[string]bool
	buffers map[string]*bytes.Buffer
}

// NewRenderer creates a new Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w:       w,
		output:  output.New(w),
		names:   make(map[string]string),
		done:    make(map[string]bool),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Run consumes tape until it ends. io.EOF is a normal end.
func (r *Renderer) Run(tape TapeSource) error {
	for {
		update, err := tape.Read()
		if err != nil {
			r.flushAll()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		r.render(update)
	}
}

func (r *Renderer) render(update *progrock.StatusUpdate) {
	for _, l := range update.Logs {
		if l.Stream == progrock.LogStream_STDERR {
			r.writeLog(l.Vertex, l.Data)
		}
	}

	for _, v := range update.Vertexes {
		r.names[v.Id] = v.Name
		if v.Completed == nil || r.done[v.Id] {
			continue
		}
		r.done[v.Id] = true
		r.flush(v.Id)

		switch {
		case v.Error != nil:
			symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
			_, _ = fmt.Fprintf(r.w, "%s %s: %s\n", symbol, v.Name, *v.Error)
		case v.Cached:
			_, _ = fmt.Fprintf(r.w, "%s\n", r.output.String(style.Circle+" "+v.Name+" (cached)").Faint())
		default:
			symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
			_, _ = fmt.Fprintf(r.w, "%s %s\n", symbol, v.Name)
		}
	}
}

// writeLog buffers data and prints every complete line.
func (r *Renderer) writeLog(id string, data []byte) {
	buf, ok := r.buffers[id]
	if !ok {
		buf = new(bytes.Buffer)
		r.buffers[id] = buf
	}
	buf.Write(data)

	for {
		i := bytes.IndexByte(buf.Bytes(), '\n')
		if i < 0 {
			return
		}
		line := buf.Next(i + 1)
		r.printLine(id, line)
	}
}

func (r *Renderer) flush(id string) {
	if buf, ok := r.buffers[id]; ok {
		if buf.Len() > 0 {
			r.printLine(id, buf.Bytes())
		}
		delete(r.buffers, id)
	}
}

func (r *Renderer) flushAll() {
	for id := range r.buffers {
		r.flush(id)
	}
}

func (r *Renderer) printLine(id string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}

	prefix := r.output.String(fmt.Sprintf("[%s]", r.names[id])).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s %s\n", prefix, line)
}
