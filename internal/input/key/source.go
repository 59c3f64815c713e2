package key

import (
	"context"
	"errors"
	"sync"
)

// ErrSourceClosed is returned by Next once a source has no more events.
var ErrSourceClosed = errors.New("key source closed")

// Source produces key events one at a time.
// Next blocks until an event is available, the source is exhausted, or ctx
// is done.
type Source interface {
	Next(ctx context.Context) (Event, error)
}

// SliceSource replays a fixed sequence of events.
type SliceSource struct {
	mu     sync.Mutex
	events []Event
	pos    int
}

// NewSliceSource creates a source that yields events in order.
func NewSliceSource(events ...Event) *SliceSource {
	return &SliceSource{events: events}
}

// NewScriptSource creates a source from a key script.
func NewScriptSource(script string) (*SliceSource, error) {
	events, err := ParseScript(script)
	if err != nil {
		return nil, err
	}
	return NewSliceSource(events...), nil
}

// Next returns the next event, or ErrSourceClosed when all have been read.
func (s *SliceSource) Next(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.events) {
		return Event{}, ErrSourceClosed
	}
	e := s.events[s.pos]
	s.pos++
	return e, nil
}

// Remaining returns the number of unread events.
func (s *SliceSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events) - s.pos
}

// ChanSource adapts a channel of events, as fed by a terminal poller.
type ChanSource struct {
	C <-chan Event
}

// Next waits for the next event on the channel.
func (s ChanSource) Next(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case e, ok := <-s.C:
		if !ok {
			return Event{}, ErrSourceClosed
		}
		return e, nil
	}
}

// Chain reads from each source in turn, moving on when one is closed.
func Chain(sources ...Source) Source {
	return &chain{sources: sources}
}

type chain struct {
	sources []Source
}

func (c *chain) Next(ctx context.Context) (Event, error) {
	for len(c.sources) > 0 {
		e, err := c.sources[0].Next(ctx)
		if errors.Is(err, ErrSourceClosed) {
			c.sources = c.sources[1:]
			continue
		}
		return e, err
	}
	return Event{}, ErrSourceClosed
}
