package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"roster/pkg/jwt"
	"time"
)

type ctxKey struct{}

// holder is shared through the request context so that a session created or
// rotated mid-request is visible to later calls in the same request.
type holder struct {
	id string
}

type Config struct {
	CookieName string
	Secure     bool
	TTL        time.Duration

	// AnonymousTTL bounds sessions that only carry flashes. Zero means DefaultAnonymousTTL, capped at TTL.
	AnonymousTTL time.Duration
}

const DefaultAnonymousTTL = 10 * time.Minute

type Manager struct {
	store  *Store
	tokens TokenService
	cfg    Config
}

func NewManager(store *Store, tokens TokenService, cfg Config) *Manager {
	if cfg.AnonymousTTL <= 0 {
		cfg.AnonymousTTL = DefaultAnonymousTTL
	}
	if cfg.TTL > 0 && cfg.AnonymousTTL > cfg.TTL {
		cfg.AnonymousTTL = cfg.TTL
	}

	return &Manager{
		store:  store,
		tokens: tokens,
		cfg:    cfg,
	}
}

// Load resolves the session cookie and attaches the session reference to the request context.
// Missing, forged and expired cookies all result in an anonymous request.
func (m *Manager) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := &holder{}
		if c, err := r.Cookie(m.cfg.CookieName); err == nil {
			if sid, err := m.tokens.SessionID(c.Value); err == nil {
				if _, ok := m.store.Get(sid); ok {
					h.id = sid
				}
			}
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, h)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Current returns the request's session, or the zero Session when there is none.
func (m *Manager) Current(r *http.Request) Session {
	h := holderFrom(r)
	if h.id == "" {
		return Session{}
	}

	s, ok := m.store.Get(h.id)
	if !ok {
		return Session{}
	}
	return s
}

func (m *Manager) IsAuthenticated(r *http.Request) bool {
	return m.Current(r).Authenticated()
}

// Login binds the user to a new session id. Pending flashes are carried over.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID uint, username string) error {
	if userID == 0 {
		return errors.New("login requires a user id")
	}

	old := m.Current(r)
	if old.ID != "" {
		m.store.Delete(old.ID)
	}

	s := m.store.Create(Session{
		UserID:   userID,
		Username: username,
		Flashes:  old.Flashes,
	})

	return m.bind(w, r, s)
}

// Clear drops the current session and starts an anonymous one in its place.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	if old := m.Current(r); old.ID != "" {
		m.store.Delete(old.ID)
	}

	return m.bind(w, r, m.store.CreateFor(Session{}, m.cfg.AnonymousTTL))
}

// Flash queues a message for the next rendered page, creating an anonymous session when needed.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, category, message string) error {
	f := Flash{Category: category, Message: message}

	if h := holderFrom(r); h.id != "" && m.store.AppendFlash(h.id, f) {
		return nil
	}

	return m.bind(w, r, m.store.CreateFor(Session{Flashes: []Flash{f}}, m.cfg.AnonymousTTL))
}

// PopFlashes returns and removes the pending flash messages.
func (m *Manager) PopFlashes(r *http.Request) []Flash {
	h := holderFrom(r)
	if h.id == "" {
		return nil
	}
	return m.store.PopFlashes(h.id)
}

// bind points the cookie at s. Cookie and token live exactly as long as the stored session.
func (m *Manager) bind(w http.ResponseWriter, r *http.Request, s Session) error {
	ttl := s.ExpiresAt.Sub(TimeNow())
	token, err := m.tokens.Issue(jwt.TokenInfo{SessionID: s.ID, Expiration: ttl})
	if err != nil {
		m.store.Delete(s.ID)
		return fmt.Errorf("issue session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(ttl.Round(time.Second).Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	holderFrom(r).id = s.ID
	return nil
}

func holderFrom(r *http.Request) *holder {
	if h, ok := r.Context().Value(ctxKey{}).(*holder); ok {
		return h
	}
	return &holder{}
}
