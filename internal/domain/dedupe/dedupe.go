// Package dedupe tracks which sessions already received a report email so
// re-submitting a quiz never sends the report twice.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

// Suppressor records notified session IDs for at-most-once delivery.
type Suppressor interface {
	// SeenAndRecord atomically checks whether the session was already
	// notified and records it if not. Returns true when it was seen before.
	SeenAndRecord(ctx context.Context, sessionID string) bool

	// Unrecord forgets a session so delivery can be retried. Used when a
	// session was recorded but the email failed to go out.
	Unrecord(ctx context.Context, sessionID string)

	Size() int64
}

type entry struct {
	sessionID string
	older     *entry
}

func (e *entry) reset() {
	e.sessionID = ""
	e.older = nil
}

// memorySuppressor keeps the seen set in memory. With a positive limit it
// chains entries newest-first and evicts the oldest when full; entry structs
// cycle through a pool. A non-positive limit disables eviction entirely.
type memorySuppressor struct {
	mu     sync.RWMutex
	seen   map[string]*entry
	newest *entry
	limit  int
	size   atomic.Int64
	pool   sync.Pool
}

const defaultLimit = 50000

// NewMemorySuppressor creates an in-memory suppressor.
func NewMemorySuppressor(opts ...Option) Suppressor {
	s := &memorySuppressor{limit: defaultLimit}
	for _, opt := range opts {
		opt(s)
	}

	s.seen = make(map[string]*entry)
	if s.limit > 0 {
		s.pool = sync.Pool{New: func() interface{} { return &entry{} }}
	}
	return s
}

func (s *memorySuppressor) SeenAndRecord(ctx context.Context, sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[sessionID]; ok {
		return true
	}

	if s.limit > 0 {
		if len(s.seen) >= s.limit {
			s.evictOldest()
		}
		e := s.pool.Get().(*entry)
		e.sessionID = sessionID
		e.older = s.newest
		s.newest = e
		s.seen[sessionID] = e
	} else {
		s.seen[sessionID] = nil
	}
	s.size.Add(1)
	return false
}

func (s *memorySuppressor) Unrecord(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.seen[sessionID]
	if !ok {
		return
	}
	delete(s.seen, sessionID)
	s.size.Add(-1)

	if s.limit <= 0 {
		return
	}

	if s.newest == e {
		s.newest = e.older
	} else {
		cur := s.newest
		for cur != nil && cur.older != e {
			cur = cur.older
		}
		if cur != nil {
			cur.older = e.older
		}
	}
	e.reset()
	s.pool.Put(e)
}

// evictOldest drops the entry at the end of the chain. Caller holds the lock.
func (s *memorySuppressor) evictOldest() {
	if s.newest == nil {
		return
	}

	if s.newest.older == nil {
		delete(s.seen, s.newest.sessionID)
		s.newest.reset()
		s.pool.Put(s.newest)
		s.newest = nil
		s.size.Add(-1)
		return
	}

	prev := s.newest
	cur := s.newest.older
	for cur.older != nil {
		prev = cur
		cur = cur.older
	}
	prev.older = nil
	delete(s.seen, cur.sessionID)
	cur.reset()
	s.pool.Put(cur)
	s.size.Add(-1)
}

func (s *memorySuppressor) Size() int64 {
	return s.size.Load()
}
