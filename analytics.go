package main

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"
)

// VisitorMetric is one tracked page view. IPs are stored hashed.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// ProjectClickStat counts outbound clicks on a project card.
type ProjectClickStat struct {
	Slug   string `json:"slug"`
	Clicks int    `json:"clicks"`
}

type AdminStats struct {
	TotalVisitors    int64              `json:"total_visitors"`
	UniqueVisitors   int64              `json:"unique_visitors"`
	VisitorsToday    int64              `json:"visitors_today"`
	VisitorsThisWeek int64              `json:"visitors_this_week"`
	TotalClicks      int64              `json:"total_clicks"`
	TopProjects      []ProjectClickStat `json:"top_projects"`
	RecentVisitors   []VisitorMetric    `json:"recent_visitors"`
}

// Analytics is the privacy-conscious visitor store behind the admin pages.
type Analytics struct {
	db   *sql.DB
	salt string
}

const analyticsSchema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);
CREATE TABLE IF NOT EXISTS project_clicks (
	slug TEXT PRIMARY KEY,
	clicks INTEGER NOT NULL DEFAULT 0
);`

// OpenAnalytics opens (or creates) the sqlite database at path.
func OpenAnalytics(path, salt string) (*Analytics, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(analyticsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create analytics schema: %w", err)
	}
	return &Analytics{db: db, salt: salt}, nil
}

func (a *Analytics) Close() error {
	return a.db.Close()
}

// hashIP is consistent per IP for the lifetime of the salt.
func (a *Analytics) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + a.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (a *Analytics) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, a.hashIP(ip), userAgent, path, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (a *Analytics) RecordProjectClick(ctx context.Context, slug string) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO project_clicks (slug, clicks) VALUES (?, 1)
		ON CONFLICT(slug) DO UPDATE SET clicks = clicks + 1
	`, slug)
	if err != nil {
		return fmt.Errorf("record project click: %w", err)
	}
	return nil
}

// CleanupOldVisitors deletes visits older than maxAge.
func (a *Analytics) CleanupOldVisitors(ctx context.Context, maxAge time.Duration) (int64, error) {
	res, err := a.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, time.Now().UTC().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	return res.RowsAffected()
}

func (a *Analytics) Stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}
	now := time.Now().UTC()
	startOfDay := now.Truncate(24 * time.Hour)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
		{&stats.TotalClicks, `SELECT COALESCE(SUM(clicks), 0) FROM project_clicks`, nil},
	}
	for _, c := range counts {
		if err := a.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("admin stats: %w", err)
		}
	}

	top, err := a.TopProjects(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopProjects = top

	recent, err := a.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

func (a *Analytics) TopProjects(ctx context.Context, limit int) ([]ProjectClickStat, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT slug, clicks FROM project_clicks
		ORDER BY clicks DESC, slug
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top projects: %w", err)
	}
	defer rows.Close()

	var out []ProjectClickStat
	for rows.Next() {
		var p ProjectClickStat
		if err := rows.Scan(&p.Slug, &p.Clicks); err != nil {
			return nil, fmt.Errorf("top projects: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (a *Analytics) RecentVisitors(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("recent visitors: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

var untrackedPrefixes = []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/ws", "/stream/", "/api/"}

// TrackVisitors records page views with hashed IPs. Static assets, admin
// pages and visitors sending DNT are skipped.
func (a *Analytics) TrackVisitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" || c.Request.Method != "GET" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			if err := a.RecordVisit(context.Background(), ip, ua, path); err != nil {
				log.Printf("analytics: %v", err)
			}
		}()
		c.Next()
	}
}
