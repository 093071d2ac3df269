package usecase

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() Clock {
	return func() time.Time { return time.Now().UTC() }
}

// IDGenerator mints record identifiers.
type IDGenerator interface {
	NextID() int64
}

// MonotonicIDGenerator issues Unix millisecond timestamps, bumped past the
// last issued value so identifiers strictly increase within one process.
//
// Identifiers are not coordinated across processes: two instances writing the
// same store can mint the same value in the same millisecond.
type MonotonicIDGenerator struct {
	mu    sync.Mutex
	last  int64
	clock Clock
}

// NewMonotonicIDGenerator constructs MonotonicIDGenerator.
func NewMonotonicIDGenerator(clock Clock) *MonotonicIDGenerator {
	return &MonotonicIDGenerator{clock: clock}
}

// NextID returns the next identifier.
func (g *MonotonicIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.clock().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// nextFreeID draws from ids and keeps the result above every identifier
// already present in the collection.
func nextFreeID(ids IDGenerator, maxExisting int64) int64 {
	id := ids.NextID()
	if id <= maxExisting {
		id = maxExisting + 1
	}
	return id
}
