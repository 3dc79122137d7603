package ratelimit

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	windowStart time.Time
	count       int
}

// MemoryStore is the in-process fixed-window limiter. One mutex guards the
// bucket map so counts for a single identity cannot race under concurrent
// bursts.
type MemoryStore struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	buckets map[string]*bucket
}

func NewMemoryStore(window time.Duration, max int) *MemoryStore {
	return &MemoryStore{
		window:  window,
		max:     max,
		buckets: make(map[string]*bucket),
	}
}

func (s *MemoryStore) Allow(_ context.Context, identity string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[identity]
	if !ok || now.Sub(b.windowStart) > s.window {
		s.buckets[identity] = &bucket{windowStart: now, count: 1}
		return true, nil
	}
	b.count++
	return b.count <= s.max, nil
}

// Cleanup drops buckets whose window has fully elapsed. Without it an
// adversary churning identities would grow the map without bound.
func (s *MemoryStore) Cleanup(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for identity, b := range s.buckets {
		if now.Sub(b.windowStart) > s.window {
			delete(s.buckets, identity)
		}
	}
}

// StartJanitor runs Cleanup periodically until the context is cancelled.
func (s *MemoryStore) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup(time.Now().UTC())
			}
		}
	}()
}
