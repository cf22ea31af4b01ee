package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const visitorRetention = 365 * 24 * time.Hour

// startRetention schedules the privacy cleanup of old visitor rows and the
// pruning of idle rate limiter entries. spec uses the six-field (seconds)
// cron format.
func startRetention(spec string, analytics *Analytics, limiters ...*IPRateLimiter) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(spec, func() {
		runRetention(context.Background(), analytics, limiters)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule retention %q: %w", spec, err)
	}

	log.Printf("Retention scheduler started (%s)", spec)
	c.Start()
	return c, nil
}

func runRetention(ctx context.Context, analytics *Analytics, limiters []*IPRateLimiter) {
	n, err := analytics.CleanupOldVisitors(ctx, visitorRetention)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
	} else if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", n)
	}

	for _, l := range limiters {
		l.Cleanup(time.Hour)
	}
}
