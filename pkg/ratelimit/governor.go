// Package ratelimit implements per-identity sliding-window admission control.
//
// Each identity owns a window of admission timestamps covering the trailing
// Window interval. Entries older than the window are evicted lazily on every
// check. Windows are held in an expirable LRU whose TTL equals the window
// length, so identities that stop sending requests are reclaimed on their own.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultRequestsPerMinute = 10
	DefaultMaxIdentities     = 10000
	DefaultWindow            = time.Minute
)

// Config configures a Governor.
type Config struct {
	RequestsPerMinute int
	// MaxIdentities bounds how many windows are kept at once. When exceeded the
	// least recently seen identity is dropped.
	MaxIdentities int
	Window        time.Duration
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

// Governor admits or rejects requests per identity.
// Safe for concurrent use.
type Governor struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows *expirable.LRU[string, *window]

	// beforeLock runs between the window lookup and its Lock. Tests only.
	beforeLock func(identity string)
}

type window struct {
	mu     sync.Mutex
	stamps []time.Time
}

// New creates a Governor. A zero RequestsPerMinute uses the default; a negative one is rejected.
func New(cfg Config) (*Governor, error) {
	if cfg.RequestsPerMinute < 0 {
		return nil, fmt.Errorf("ratelimit: requests per minute must be positive, got %d", cfg.RequestsPerMinute)
	}
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if cfg.MaxIdentities <= 0 {
		cfg.MaxIdentities = DefaultMaxIdentities
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Governor{
		limit:   cfg.RequestsPerMinute,
		window:  cfg.Window,
		now:     cfg.Now,
		windows: expirable.NewLRU[string, *window](cfg.MaxIdentities, nil, cfg.Window),
	}, nil
}

// Limit returns the configured requests per window.
func (g *Governor) Limit() int {
	return g.limit
}

// Check admits the request for identity or returns an *ExceededError.
// The read-evict-append sequence runs under the identity's lock, so two
// concurrent requests can never both take the last free slot.
func (g *Governor) Check(identity string) error {
	w := g.lock(identity)
	defer w.mu.Unlock()

	now := g.now()
	w.evict(now.Add(-g.window))

	if len(w.stamps) >= g.limit {
		return &ExceededError{Limit: g.limit}
	}

	w.stamps = append(w.stamps, now)
	return nil
}

// Remaining returns how many requests identity may still make in the current window.
func (g *Governor) Remaining(identity string) int {
	w := g.lock(identity)
	defer w.mu.Unlock()

	w.evict(g.now().Add(-g.window))

	return max(0, g.limit-len(w.stamps))
}

// Reset clears identity's window outright.
func (g *Governor) Reset(identity string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.windows.Remove(identity)
}

// touch returns identity's window, creating it if needed, and refreshes its TTL.
// Refreshing under g.mu guarantees a window cannot expire between two lookups
// made less than one window apart.
func (g *Governor) touch(identity string) *window {
	g.mu.Lock()
	defer g.mu.Unlock()

	w, ok := g.windows.Get(identity)
	if !ok {
		w = &window{}
	}
	g.windows.Add(identity, w)
	return w
}

// lock returns identity's live window with its mutex held. A window removed by
// Reset or evicted between touch and Lock is abandoned and the lookup retried,
// so every admission lands in the window later checks will see.
func (g *Governor) lock(identity string) *window {
	for {
		w := g.touch(identity)
		if g.beforeLock != nil {
			g.beforeLock(identity)
		}
		w.mu.Lock()

		g.mu.Lock()
		live, ok := g.windows.Peek(identity)
		g.mu.Unlock()
		if ok && live == w {
			return w
		}
		w.mu.Unlock()
	}
}

// evict drops timestamps at or before cutoff.
func (w *window) evict(cutoff time.Time) {
	i := 0
	for i < len(w.stamps) && !w.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.stamps = append(w.stamps[:0], w.stamps[i:]...)
	}
}
