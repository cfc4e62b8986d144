package clock

import (
	"sync"
	"time"

	"github.com/julien-sobczak/ulysses-export/pkg/resync"
)

var (
	// Lazy-load
	clockOnce      resync.Once
	clockMu        sync.RWMutex
	clockSingleton Clock
)

// Clock returns the current time. Sheets read it concurrently when stamping footers.
type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c DefaultClock) Now() time.Time {
	return time.Now()
}

// TestClock is a Clock whose time only moves when asked to.
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewTestClockAt(date time.Time) *TestClock {
	return &TestClock{
		now: date,
	}
}

func (c *TestClock) FastForward(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func CurrentClock() Clock {
	clockMu.RLock()
	current := clockSingleton
	clockMu.RUnlock()
	if current != nil {
		return current
	}
	clockOnce.Do(func() {
		clockMu.Lock()
		if clockSingleton == nil {
			clockSingleton = DefaultClock{}
		}
		clockMu.Unlock()
	})
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clockSingleton
}

// Same as time.Now() but makes possible to control time from unit tests.
func Now() time.Time {
	return CurrentClock().Now()
}

// Since returns the time elapsed since t according to the current clock.
func Since(t time.Time) time.Duration {
	return Now().Sub(t)
}

func FreezeAt(now time.Time) *TestClock {
	testClock := NewTestClockAt(now)
	clockMu.Lock()
	clockSingleton = testClock
	clockMu.Unlock()
	return testClock
}

func Unfreeze() {
	clockMu.Lock()
	clockSingleton = nil
	clockMu.Unlock()
	clockOnce.Reset()
}
