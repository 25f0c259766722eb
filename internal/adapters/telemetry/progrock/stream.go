package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

const streamBuffer = 64

var _ progrock.Writer = (*Stream)(nil)

// Stream is a progrock.Writer whose updates are read back, in order, by a
// single consumer such as a terminal frontend.
type Stream struct {
	mu       sync.RWMutex
	closed   bool
	updates  chan *progrock.StatusUpdate
	detached chan struct{}
	once     sync.Once
}

// NewStream creates a new Stream.
func NewStream() *Stream {
	return &Stream{
		updates:  make(chan *progrock.StatusUpdate, streamBuffer),
		detached: make(chan struct{}),
	}
}

// WriteStatus queues update for the consumer. Once the consumer has detached,
// updates are dropped.
func (s *Stream) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil
	}

	select {
	case s.updates <- update:
	case <-s.detached:
	}
	return nil
}

// Close ends the stream. Read returns io.EOF once queued updates are drained.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.updates)
	}
	return nil
}

// Read blocks for the next update.
func (s *Stream) Read() (*progrock.StatusUpdate, error) {
	update, ok := <-s.updates
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}

// Detach tells writers the consumer is gone so they never block on it.
func (s *Stream) Detach() {
	s.once.Do(func() { close(s.detached) })
}
