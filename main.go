package main

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// App holds everything the routes share.
type App struct {
	cfg            Config
	catalog        *Catalog
	stats          *HeroStats
	about          template.HTML
	analytics      *Analytics
	admin          *Admin
	contactLimiter *IPRateLimiter
}

func NewApp(cfg Config, analytics *Analytics) (*App, error) {
	about, err := renderMarkdown(AboutMe)
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:            cfg,
		catalog:        NewCatalog(ProjectList),
		stats:          NewHeroStats(HeroStatDefaults),
		about:          about,
		analytics:      analytics,
		admin:          NewAdmin(cfg, analytics),
		contactLimiter: NewIPRateLimiter(cfg.ContactRatePerMin),
	}, nil
}

// limiters lists every per-IP limiter the retention job prunes.
func (app *App) limiters() []*IPRateLimiter {
	return []*IPRateLimiter{app.contactLimiter, app.admin.LoginLimiter()}
}

func main() {
	cfg := loadConfig()

	analytics, err := OpenAnalytics(cfg.DBPath, generateToken())
	if err != nil {
		log.Fatal(err)
	}
	defer analytics.Close()
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")

	app, err := NewApp(cfg, analytics)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache StatsCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		cache = NewRedisStatsCache(rdb, cfg.StatsCacheTTL)
	}
	go RefreshHeroStats(ctx, NewStatsFetcher(cfg.GitHubAPI, cfg.GitHubUser), cache, app.stats)

	sched, err := startRetention(cfg.RetentionSpec, analytics, app.limiters()...)
	if err != nil {
		log.Fatal(err)
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     newRouter(app),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	go func() {
		log.Printf("Listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func newRouter(app *App) *gin.Engine {
	r := gin.Default()
	r.Use(requestID())
	r.Use(app.analytics.TrackVisitors())
	r.LoadHTMLGlob("templates/*")

	r.Static("/static", "./static")

	// Home page route
	r.GET("/", app.home)

	projects := &projectHandler{catalog: app.catalog}
	r.GET("/projects", projects.section)

	// HTMX contact form endpoints
	contact := &contactHandler{
		to:         app.cfg.ContactEmail,
		resetDelay: app.cfg.ContactResetDelay,
		limiter:    app.contactLimiter,
	}
	r.GET("/contact-form", contact.form)
	r.POST("/contact", contact.submit)

	r.GET("/stream/typing", typingStream(TypingPhrases, DefaultTypingPace))
	r.GET("/ws", serveSession(SessionOptions{
		Catalog:        app.catalog,
		Phrases:        TypingPhrases,
		Pace:           DefaultTypingPace,
		ContactEmail:   app.cfg.ContactEmail,
		ResetDelay:     app.cfg.ContactResetDelay,
		ContactLimiter: app.contactLimiter,
		Clicks:         app.analytics,
	}))

	api := r.Group("/api", apiCORS(app.cfg.CORSOrigins))
	api.GET("/projects", projects.list)
	api.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"stats": app.stats.Snapshot()})
	})
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	app.admin.RegisterRoutes(r)
	return r
}

func (app *App) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"about":    app.about,
		"phrase":   firstPhrase(TypingPhrases),
		"stats":    app.stats.Snapshot(),
		"sections": NavSections,
		"filters":  Categories,
		"active":   FilterAll,
		"cards":    app.catalog.Cards(FilterAll),
		"errors":   map[string]string{},
		"note":     "",
	})
}

func firstPhrase(phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return phrases[0]
}
