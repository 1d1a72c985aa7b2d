// Package idgen assigns recipe ids. Ids are positive integers no larger than
// MaxID so they survive a round trip through a JavaScript number.
package idgen

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// MaxID is the largest integer a float64 represents exactly (2^53 - 1).
const MaxID int64 = 1<<53 - 1

// Generator produces recipe ids.
type Generator interface {
	Next() int64
}

// Observer is implemented by generators that must stay clear of ids already
// in use.
type Observer interface {
	Observe(id int64)
}

// New returns the generator for the given id source. An empty source selects
// the clock.
func New(source string) (Generator, error) {
	switch source {
	case "", types.IDSourceClock:
		return NewClock(), nil
	case types.IDSourceUUID:
		return Random{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrIDSourceUnknown, source)
	}
}

// Clock issues millisecond timestamps made strictly increasing, so two ids
// requested within the same millisecond never collide.
type Clock struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewClock returns a Clock reading the wall clock.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Next returns max(now in milliseconds, previous id + 1).
func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

// Observe raises the floor so later ids are greater than id. Ids above
// MaxID are ignored so Next cannot overflow.
func (c *Clock) Observe(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id > c.last && id <= MaxID {
		c.last = id
	}
}

// Random derives ids from random (version 4) UUIDs: the low 53 bits of the
// first eight bytes.
type Random struct{}

// Next returns a positive pseudo-random id.
func (Random) Next() int64 {
	for {
		u := uuid.New()
		id := int64(binary.BigEndian.Uint64(u[:8])) & MaxID
		if id != 0 {
			return id
		}
	}
}
