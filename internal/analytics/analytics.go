// Package analytics records privacy-conscious visit statistics in sqlite.
// IPs are stored only as salted, truncated hashes and rows expire after a year.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	goerrors "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Retention is how long visit rows are kept.
const Retention = 12 * 30 * 24 * time.Hour

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS category_views (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	category TEXT NOT NULL,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);
CREATE INDEX IF NOT EXISTS idx_category_views_category ON category_views(category);
`

// Visitor is one recorded page hit.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// CategoryCount is the number of times a gallery category was opened.
type CategoryCount struct {
	Category string `json:"category"`
	Views    int64  `json:"views"`
}

type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	CategoryViews    []CategoryCount `json:"category_views"`
	RecentVisitors   []Visitor       `json:"recent_visitors"`
}

// Tracker writes and reads visit statistics.
type Tracker struct {
	db   *sql.DB
	salt string
	log  *logrus.Entry
	now  func() time.Time
}

// Open opens (creating if needed) the sqlite database at path. Use
// ":memory:" in tests.
func Open(path string, log *logrus.Entry) (*Tracker, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerrors.WrapPrefix(err, "open analytics db", 0)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, goerrors.WrapPrefix(err, "create analytics schema", 0)
	}
	return &Tracker{db: db, salt: randomSalt(), log: log, now: time.Now}, nil
}

func (t *Tracker) Close() error { return t.db.Close() }

func randomSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// HashIP is stable per IP for the life of the process.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores one page hit.
func (t *Tracker) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		t.HashIP(ip), userAgent, path, t.now().UTC())
	if err != nil {
		return goerrors.WrapPrefix(err, "record visit", 0)
	}
	return nil
}

// RecordCategoryView stores one gallery category selection.
func (t *Tracker) RecordCategoryView(ctx context.Context, ip, category string) error {
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO category_views (hashed_ip, category, timestamp) VALUES (?, ?, ?)`,
		t.HashIP(ip), category, t.now().UTC())
	if err != nil {
		return goerrors.WrapPrefix(err, "record category view", 0)
	}
	return nil
}

// Cleanup deletes rows older than Retention and returns how many went.
func (t *Tracker) Cleanup(ctx context.Context) (int64, error) {
	cutoff := t.now().UTC().Add(-Retention)
	var total int64
	for _, table := range []string{"visitors", "category_views"} {
		res, err := t.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE timestamp < ?`, cutoff)
		if err != nil {
			return total, goerrors.WrapPrefix(err, "cleanup "+table, 0)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	if total > 0 {
		t.log.WithField("rows", total).Info("privacy cleanup removed old analytics rows")
	}
	return total, nil
}

// Stats summarises recorded visits.
func (t *Tracker) Stats(ctx context.Context) (*Stats, error) {
	now := t.now().UTC()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	stats := &Stats{}
	counts := []struct {
		query string
		args  []any
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{midnight}, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}, &stats.VisitorsThisWeek},
	}
	for _, c := range counts {
		if err := t.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, goerrors.WrapPrefix(err, "stats", 0)
		}
	}

	rows, err := t.db.QueryContext(ctx,
		`SELECT category, COUNT(*) AS views FROM category_views GROUP BY category ORDER BY views DESC, category`)
	if err != nil {
		return nil, goerrors.WrapPrefix(err, "category stats", 0)
	}
	for rows.Next() {
		var cc CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Views); err != nil {
			rows.Close()
			return nil, goerrors.WrapPrefix(err, "category stats", 0)
		}
		stats.CategoryViews = append(stats.CategoryViews, cc)
	}
	rows.Close()

	rows, err = t.db.QueryContext(ctx,
		`SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors ORDER BY timestamp DESC, id DESC LIMIT 50`)
	if err != nil {
		return nil, goerrors.WrapPrefix(err, "recent visitors", 0)
	}
	defer rows.Close()
	for rows.Next() {
		var v Visitor
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, goerrors.WrapPrefix(err, "recent visitors", 0)
		}
		stats.RecentVisitors = append(stats.RecentVisitors, v)
	}
	return stats, rows.Err()
}

var untrackedPrefixes = []string{"/static/", "/assets/", "/admin", "/favicon", "/privacy"}

// Tracked reports whether a request path counts as a page visit.
func Tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Middleware records page hits in the background. Requests with DNT: 1 and
// asset or admin paths are skipped.
func Middleware(t *Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if Tracked(path) && c.GetHeader("DNT") != "1" {
			ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
			go func() {
				if err := t.RecordVisit(context.Background(), ip, ua, path); err != nil {
					t.log.WithError(err).Warn("record visitor")
				}
			}()
		}
		c.Next()
	}
}
