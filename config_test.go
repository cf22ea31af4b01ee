package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "CONTACT_EMAIL", "STATS_CACHE_TTL", "CONTACT_RATE_PER_MIN", "CORS_ORIGINS", "ADMIN_USERNAME", "ADMIN_PASSWORD"} {
		t.Setenv(k, "")
	}

	cfg := loadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "abdullahzunorain@gmail.com", cfg.ContactEmail)
	assert.Equal(t, time.Hour, cfg.StatsCacheTTL)
	assert.Equal(t, 4*time.Second, cfg.ContactResetDelay)
	assert.Equal(t, 5, cfg.ContactRatePerMin)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "admin", cfg.AdminUsername)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GITHUB_API_URL", "http://localhost:1234/")
	t.Setenv("STATS_CACHE_TTL", "90")
	t.Setenv("CONTACT_RESET_DELAY", "1500ms")
	t.Setenv("CONTACT_RATE_PER_MIN", "nope")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg := loadConfig()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "http://localhost:1234", cfg.GitHubAPI)
	assert.Equal(t, 90*time.Second, cfg.StatsCacheTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.ContactResetDelay)
	assert.Equal(t, 5, cfg.ContactRatePerMin)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
