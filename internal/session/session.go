package session

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ababenko/portfolio/internal/nav"
	"github.com/ababenko/portfolio/internal/schedule"
)

const (
	// CookieName carries the visitor's session id.
	CookieName = "PORTFOLIO_SESSION"

	contextKey = "portfolio.session"
)

// Session is one visitor's page state.
type Session struct {
	ID    string
	State *nav.UIState
}

// Factory builds the initial state for a new visitor.
type Factory func() *nav.UIState

// Registry keeps sessions in memory and drops them after an idle period.
type Registry struct {
	factory   Factory
	scheduler *schedule.Scheduler
	idle      time.Duration
	log       *logrus.Entry

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(factory Factory, scheduler *schedule.Scheduler, idle time.Duration, log *logrus.Entry) *Registry {
	return &Registry{
		factory:   factory,
		scheduler: scheduler,
		idle:      idle,
		log:       log,
		sessions:  map[string]*Session{},
	}
}

// Get returns the session for id, or a fresh one when id is unknown or empty.
// Either way the idle timer restarts.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		s = &Session{ID: newID(), State: r.factory()}
		r.sessions[s.ID] = s
	}
	r.mu.Unlock()
	r.touch(s.ID)
	return s
}

// Lookup returns an existing session without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Drop forgets a session. It reports whether one existed.
func (r *Registry) Drop(id string) bool {
	r.scheduler.Cancel(timerKey(id))
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) touch(id string) {
	if r.idle <= 0 {
		return
	}
	r.scheduler.After(timerKey(id), r.idle, func() {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		r.log.WithField("session", id[:8]).Debug("session expired")
	})
}

func timerKey(id string) string { return "session:" + id }

func newID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// Middleware loads or creates the visitor's session and refreshes its cookie.
func Middleware(reg *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(CookieName)
		s := reg.Get(id)
		if s.ID != id {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, s.ID, 0, "/", "", false, true)
		}
		c.Set(contextKey, s)
		c.Next()
	}
}

// FromContext returns the session stored by Middleware.
func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok
}
