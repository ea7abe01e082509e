package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ababenko/portfolio/internal/logging"
	"github.com/ababenko/portfolio/internal/nav"
	"github.com/ababenko/portfolio/internal/schedule"
)

func newTestRegistry(idle time.Duration) (*Registry, *schedule.FakeClock) {
	clock := &schedule.FakeClock{}
	factory := func() *nav.UIState { return nav.NewUIState([]string{"static", "video"}, nil, time.Second) }
	return NewRegistry(factory, schedule.NewWithClock(clock.AfterFunc), idle, logging.Discard()), clock
}

func TestGetCreatesAndReuses(t *testing.T) {
	reg, _ := newTestRegistry(time.Minute)

	s := reg.Get("")
	require.Len(t, s.ID, 32)
	assert.Equal(t, "static", s.State.CurrentCategory())

	s.State.SetCategory("video")
	again := reg.Get(s.ID)
	assert.Same(t, s, again)
	assert.Equal(t, "video", again.State.CurrentCategory())

	other := reg.Get("forged")
	assert.NotEqual(t, "forged", other.ID)
	assert.Equal(t, 2, reg.Len())
}

func TestIdleExpiryRestartsOnAccess(t *testing.T) {
	reg, clock := newTestRegistry(time.Minute)
	s := reg.Get("")

	clock.Advance(40 * time.Second)
	reg.Get(s.ID)
	clock.Advance(40 * time.Second)
	_, ok := reg.Lookup(s.ID)
	assert.True(t, ok, "access re-arms the idle timer")

	clock.Advance(30 * time.Second)
	_, ok = reg.Lookup(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
}

func TestDrop(t *testing.T) {
	reg, clock := newTestRegistry(time.Minute)
	s := reg.Get("")
	assert.True(t, reg.Drop(s.ID))
	assert.False(t, reg.Drop(s.ID))
	clock.Advance(time.Hour)
	assert.Equal(t, 0, reg.Len())
}

func TestMiddlewareSetsCookieOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg, _ := newTestRegistry(time.Minute)

	r := gin.New()
	r.Use(Middleware(reg))
	r.GET("/", func(c *gin.Context) {
		s, ok := FromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, s.ID)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, w.Body.String(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, cookies[0].Value, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := FromContext(c)
	assert.False(t, ok)
}
