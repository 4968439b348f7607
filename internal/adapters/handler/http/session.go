package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wagle/internal/core/services"
)

const sessionCookie = "wagle_session"

type ctxKey string

const coordinatorKey ctxKey = "coordinator"

type session struct {
	mu       sync.Mutex
	coord    *services.Coordinator
	lastSeen time.Time
}

// SessionStore keeps one view coordinator per browser session. Requests on
// the same session are serialized; sessions idle longer than ttl are
// dropped and start over from the catalog.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
	newCoord func() *services.Coordinator
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration, newCoord func() *services.Coordinator) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
		newCoord: newCoord,
		now:      time.Now,
	}
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) acquire(id uuid.UUID) (uuid.UUID, *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok && now.Sub(sess.lastSeen) < s.ttl {
		sess.lastSeen = now
		return id, sess
	}

	s.sweep(now)
	id = uuid.New()
	sess := &session{coord: s.newCoord(), lastSeen: now}
	s.sessions[id] = sess
	return id, sess
}

func (s *SessionStore) sweep(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) >= s.ttl {
			delete(s.sessions, id)
		}
	}
}

// Middleware attaches the caller's coordinator to the request context,
// creating a session when the cookie is missing or expired.
func (s *SessionStore) Middleware(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id uuid.UUID
			if cookie, err := r.Cookie(sessionCookie); err == nil {
				id, _ = uuid.Parse(cookie.Value)
			}

			sid, sess := s.acquire(id)
			if sid != id {
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    sid.String(),
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			sess.mu.Lock()
			defer sess.mu.Unlock()

			ctx := context.WithValue(r.Context(), coordinatorKey, sess.coord)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func coordinatorFrom(r *http.Request) *services.Coordinator {
	coord, _ := r.Context().Value(coordinatorKey).(*services.Coordinator)
	return coord
}
