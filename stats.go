package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
)

// RepoCount is the outcome of the profile lookup. OK is false for every
// kind of failure; callers leave the static value alone in that case.
type RepoCount struct {
	Value int
	OK    bool
}

// StatsFetcher reads the public repository count of a GitHub profile.
type StatsFetcher struct {
	Client *http.Client
	URL    string
}

func NewStatsFetcher(apiURL, user string) *StatsFetcher {
	return &StatsFetcher{Client: http.DefaultClient, URL: apiURL + "/users/" + user}
}

// Fetch issues a single unauthenticated GET. There is no retry.
func (f *StatsFetcher) Fetch(ctx context.Context) RepoCount {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return RepoCount{}
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return RepoCount{}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RepoCount{}
	}
	return parseRepoCount(body)
}

// parseRepoCount accepts only a positive numeric public_repos field.
func parseRepoCount(body []byte) RepoCount {
	if !gjson.ValidBytes(body) {
		return RepoCount{}
	}
	v := gjson.GetBytes(body, "public_repos")
	if v.Type != gjson.Number || v.Int() <= 0 {
		return RepoCount{}
	}
	return RepoCount{Value: int(v.Int()), OK: true}
}

type HeroStat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// HeroStats holds the numbers shown under the hero banner.
type HeroStats struct {
	mu    sync.RWMutex
	stats []HeroStat
}

func NewHeroStats(defaults []HeroStat) *HeroStats {
	stats := make([]HeroStat, len(defaults))
	copy(stats, defaults)
	return &HeroStats{stats: stats}
}

// Apply overwrites the first stat with a successful count.
func (h *HeroStats) Apply(rc RepoCount) bool {
	if !rc.OK {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.stats) == 0 {
		return false
	}
	h.stats[0].Number = strconv.Itoa(rc.Value)
	return true
}

func (h *HeroStats) Snapshot() []HeroStat {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]HeroStat, len(h.stats))
	copy(out, h.stats)
	return out
}

// StatsCache keeps the last good count across restarts so the public API
// is not hit on every deploy.
type StatsCache interface {
	Get(ctx context.Context) (RepoCount, error)
	Set(ctx context.Context, n int) error
}

const statsCacheKey = "portfolio:github:public_repos"

type RedisStatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStatsCache(rdb *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{rdb: rdb, ttl: ttl}
}

// Get returns a zero RepoCount on a miss.
func (c *RedisStatsCache) Get(ctx context.Context) (RepoCount, error) {
	n, err := c.rdb.Get(ctx, statsCacheKey).Int()
	if errors.Is(err, redis.Nil) {
		return RepoCount{}, nil
	}
	if err != nil {
		return RepoCount{}, fmt.Errorf("stats cache get: %w", err)
	}
	return RepoCount{Value: n, OK: n > 0}, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, n int) error {
	if err := c.rdb.Set(ctx, statsCacheKey, n, c.ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}

// RefreshHeroStats enriches the hero stats once. A cached count wins over
// the network; cache errors are logged and otherwise ignored, and a failed
// fetch leaves the stats untouched.
func RefreshHeroStats(ctx context.Context, f *StatsFetcher, cache StatsCache, stats *HeroStats) {
	if cache != nil {
		rc, err := cache.Get(ctx)
		if err != nil {
			log.Printf("stats: %v", err)
		}
		if stats.Apply(rc) {
			return
		}
	}

	rc := f.Fetch(ctx)
	if !stats.Apply(rc) {
		return
	}
	log.Printf("stats: %d public repositories", rc.Value)

	if cache != nil {
		if err := cache.Set(ctx, rc.Value); err != nil {
			log.Printf("stats: %v", err)
		}
	}
}
