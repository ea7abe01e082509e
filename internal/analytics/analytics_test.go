package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ababenko/portfolio/internal/logging"
)

func openTracker(t *testing.T, now time.Time) *Tracker {
	t.Helper()
	tr, err := Open(":memory:", logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { tr.Close() })
	tr.now = func() time.Time { return now }
	return tr
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	tr := openTracker(t, time.Now())
	h := tr.HashIP("10.0.0.1")
	assert.Len(t, h, 16)
	assert.Equal(t, h, tr.HashIP("10.0.0.1"))
	assert.NotEqual(t, h, tr.HashIP("10.0.0.2"))
	assert.NotContains(t, h, "10.0.0.1")
}

func TestStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	tr := openTracker(t, now)
	ctx := context.Background()

	require.NoError(t, tr.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	require.NoError(t, tr.RecordVisit(ctx, "1.1.1.1", "ua", "/portfolio/video"))
	require.NoError(t, tr.RecordVisit(ctx, "2.2.2.2", "ua", "/"))

	tr.now = func() time.Time { return now.Add(-3 * 24 * time.Hour) }
	require.NoError(t, tr.RecordVisit(ctx, "3.3.3.3", "ua", "/"))
	tr.now = func() time.Time { return now.Add(-30 * 24 * time.Hour) }
	require.NoError(t, tr.RecordVisit(ctx, "3.3.3.3", "ua", "/"))
	tr.now = func() time.Time { return now }

	for _, c := range []string{"video", "gif", "video"} {
		require.NoError(t, tr.RecordCategoryView(ctx, "1.1.1.1", c))
	}

	stats, err := tr.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 3, stats.VisitorsToday)
	assert.EqualValues(t, 4, stats.VisitorsThisWeek)
	assert.Equal(t, []CategoryCount{{"video", 2}, {"gif", 1}}, stats.CategoryViews)
	require.Len(t, stats.RecentVisitors, 5)
	assert.Equal(t, tr.HashIP("2.2.2.2"), stats.RecentVisitors[0].HashedIP)
}

func TestCleanupDropsOldRows(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	tr := openTracker(t, now.Add(-400*24*time.Hour))
	ctx := context.Background()
	require.NoError(t, tr.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	require.NoError(t, tr.RecordCategoryView(ctx, "1.1.1.1", "gif"))

	tr.now = func() time.Time { return now }
	require.NoError(t, tr.RecordVisit(ctx, "1.1.1.1", "ua", "/"))

	n, err := tr.Cleanup(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	stats, err := tr.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
	assert.Empty(t, stats.CategoryViews)
}

func TestTracked(t *testing.T) {
	for path, want := range map[string]bool{
		"/":                   true,
		"/portfolio/gif":      true,
		"/static/js/app.js":   false,
		"/assets/portfolio/a": false,
		"/admin/api/stats":    false,
		"/favicon.ico":        false,
		"/privacy":            false,
	} {
		assert.Equal(t, want, Tracked(path), path)
	}
}

func TestMiddlewareHonoursDNT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tr := openTracker(t, time.Now())
	r := gin.New()
	r.Use(Middleware(tr))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Eventually(t, func() bool {
		stats, err := tr.Stats(context.Background())
		return err == nil && stats.TotalVisitors == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	stats, err := tr.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
}
