package server

import (
	"sync"
	"time"

	"github.com/kinship-dev/kinship/pkg/session"
)

// entry pairs a session with its mutation lock and last-use time. The lock
// serializes every operation on the session's graph: no two mutations may
// interleave, and readers always see a fully applied state.
type entry struct {
	mu       sync.Mutex
	sess     *session.Session
	lastSeen time.Time
}

// registry holds all live sessions. Idle sessions are swept opportunistically
// whenever a new one is created; there is no background goroutine.
type registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	create  func() *session.Session
}

func newRegistry(ttl time.Duration, create func() *session.Session) *registry {
	return &registry{
		entries: make(map[string]*entry),
		ttl:     ttl,
		create:  create,
	}
}

// add creates a new session, sweeping idle ones first.
func (r *registry) add() *session.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for id, e := range r.entries {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.entries, id)
		}
	}
	sess := r.create()
	r.entries[sess.ID] = &entry{sess: sess, lastSeen: now}
	return sess
}

// get returns the entry for id, refreshing its last-use time.
func (r *registry) get(id string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if ok {
		e.lastSeen = time.Now()
	}
	return e, ok
}

// remove deletes the session with the given id, reporting whether it existed.
func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[id]
	delete(r.entries, id)
	return ok
}

// len returns the number of live sessions.
func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
