package test

import (
	"sync"
	"time"

	"github.com/polkiloo/projectdesk/internal/domain/model"
)

// EventRecorder collects published events.
type EventRecorder struct {
	mu     sync.Mutex
	events []model.Event
}

// Publish records the event.
func (r *EventRecorder) Publish(event model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns recorded events in publication order.
func (r *EventRecorder) Events() []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Event{}, r.events...)
}

// ManualClock is a settable clock for deterministic timestamps.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock starts the clock at now.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

// Now returns the current clock value.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SequenceIDs hands out consecutive identifiers starting at Next.
type SequenceIDs struct {
	mu   sync.Mutex
	Next int64
}

// NextID returns the next identifier.
func (s *SequenceIDs) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.Next
	s.Next++
	return id
}
