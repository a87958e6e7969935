// Package events carries dungeon lifecycle notifications out of the
// simulator. The simulator only emits; where notices go is decided by the
// Sink it is given.
package events

//go:generate mockgen -destination=mock/mock_sink.go -package=eventsmock github.com/samdwyer/guildsim/internal/events Sink

import (
	"context"
	"sync"
)

// Kind names a notification.
type Kind string

const (
	KindFloorStarted     Kind = "floor.started"
	KindFloorCleared     Kind = "floor.cleared"
	KindDungeonFailed    Kind = "dungeon.failed"
	KindDungeonCompleted Kind = "dungeon.completed"
	KindJobFallback      Kind = "job.fallback"
	KindEnemyFallback    Kind = "enemy.fallback"
)

// Warning reports whether the kind flags a misconfiguration.
func (k Kind) Warning() bool {
	return k == KindJobFallback || k == KindEnemyFallback
}

// Event is a single notification.
type Event struct {
	Kind        Kind    `json:"kind" yaml:"kind"`
	Composition string  `json:"composition" yaml:"composition"`
	Floor       int     `json:"floor,omitempty" yaml:"floor,omitempty"`
	Scaling     float64 `json:"scaling,omitempty" yaml:"scaling,omitempty"`
	Detail      string  `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Sink receives events. Implementations must be safe for concurrent use.
type Sink interface {
	Emit(ctx context.Context, event Event)
}

// Nop discards every event.
type Nop struct{}

// Emit implements Sink.
func (Nop) Emit(context.Context, Event) {}

// Collector keeps every event in memory.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

// Emit implements Sink.
func (c *Collector) Emit(_ context.Context, event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

// Events returns a copy of the events received so far.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Count returns how many events of a kind were received.
func (c *Collector) Count(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

type fanout []Sink

// Fanout returns a sink that forwards to every non-nil sink in order.
func Fanout(sinks ...Sink) Sink {
	out := make(fanout, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (f fanout) Emit(ctx context.Context, event Event) {
	for _, s := range f {
		s.Emit(ctx, event)
	}
}
