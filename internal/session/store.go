package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var TimeNow = time.Now

const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
)

type Flash struct {
	Category string
	Message  string
}

// Session is the server-side state referenced by the session cookie.
type Session struct {
	ID        string
	UserID    uint
	Username  string
	Flashes   []Flash
	ExpiresAt time.Time
}

func (s Session) Authenticated() bool {
	return s.UserID != 0
}

// Store keeps sessions in memory for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// Create stores s under a freshly generated id and returns the stored copy.
func (st *Store) Create(s Session) Session {
	return st.CreateFor(s, st.ttl)
}

// CreateFor is Create with a lifetime other than the store default.
func (st *Store) CreateFor(s Session, ttl time.Duration) Session {
	s.ID = uuid.NewString()
	s.ExpiresAt = TimeNow().Add(ttl)
	s.Flashes = append([]Flash(nil), s.Flashes...)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get returns the session with the given id. Expired sessions are dropped on access.
func (st *Store) Get(id string) (Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return Session{}, false
	}

	if !TimeNow().Before(s.ExpiresAt) {
		st.Delete(id)
		return Session{}, false
	}

	s.Flashes = append([]Flash(nil), s.Flashes...)
	return s, true
}

// AppendFlash queues f on a live session. It reports false when the session is gone or expired.
func (st *Store) AppendFlash(id string, f Flash) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok || !TimeNow().Before(s.ExpiresAt) {
		return false
	}
	s.Flashes = append(append([]Flash(nil), s.Flashes...), f)
	st.sessions[id] = s
	return true
}

// PopFlashes drains the pending flashes of a live session.
func (st *Store) PopFlashes(id string) []Flash {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok || len(s.Flashes) == 0 || !TimeNow().Before(s.ExpiresAt) {
		return nil
	}
	flashes := s.Flashes
	s.Flashes = nil
	st.sessions[id] = s
	return flashes
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Purge removes every expired session and returns how many were removed.
func (st *Store) Purge() int {
	now := TimeNow()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Sweep purges expired sessions every interval until ctx is done.
func (st *Store) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Purge()
		}
	}
}
