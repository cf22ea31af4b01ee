package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port              string
	ContactEmail      string
	GitHubUser        string
	GitHubAPI         string
	DBPath            string
	RedisAddr         string
	RedisPassword     string
	StatsCacheTTL     time.Duration
	ContactResetDelay time.Duration
	ContactRatePerMin int
	CORSOrigins       []string
	RetentionSpec     string
	AdminUsername     string
	AdminPassword     string
}

// loadConfig reads the environment (.env is loaded by godotenv/autoload)
// and falls back to development defaults.
func loadConfig() Config {
	cfg := Config{
		Port:              getenv("PORT", "8080"),
		ContactEmail:      getenv("CONTACT_EMAIL", "abdullahzunorain@gmail.com"),
		GitHubUser:        getenv("GITHUB_USER", "abdullahzunorain"),
		GitHubAPI:         strings.TrimRight(getenv("GITHUB_API_URL", "https://api.github.com"), "/"),
		DBPath:            getenv("DB_PATH", "portfolio.db"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		StatsCacheTTL:     getenvDuration("STATS_CACHE_TTL", time.Hour),
		ContactResetDelay: getenvDuration("CONTACT_RESET_DELAY", 4*time.Second),
		ContactRatePerMin: getenvInt("CONTACT_RATE_PER_MIN", 5),
		CORSOrigins:       strings.Split(getenv("CORS_ORIGINS", "*"), ","),
		RetentionSpec:     getenv("RETENTION_CRON", "0 0 3 * * *"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
	}

	// Default credentials for development only.
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

// getenvDuration accepts "10s", "5m" or a bare number of seconds.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: %s=%q is not a duration, using %s", key, v, def)
		return def
	}
	return d
}
