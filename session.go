package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
)

// ClickRecorder counts outbound project clicks.
type ClickRecorder interface {
	RecordProjectClick(ctx context.Context, slug string) error
}

// SessionOptions configures the components of a page session.
type SessionOptions struct {
	Catalog        *Catalog
	Phrases        []string
	Pace           TypingPace
	ContactEmail   string
	ResetDelay     time.Duration
	ContactLimiter *IPRateLimiter
	Clicks         ClickRecorder
}

// Session owns the interactive state of one open page. Every component
// keeps its own state. The typing loop runs on its own goroutine and stops
// with the session; the particles are seeded here and animated by the
// browser.
type Session struct {
	opts SessionOptions
	ip   string

	nav      *NavController
	menu     Menu
	backTop  BackToTop
	sections *Revealer
	cards    *Revealer
	filters  *FilterBar
	contact  *ContactForm
	field    *ParticleField
	typer    *Typer

	out  chan []Patch
	done chan struct{}
}

// NewSession prepares a session for the visitor at ip.
func NewSession(opts SessionOptions, ip string) *Session {
	s := &Session{
		opts:     opts,
		ip:       ip,
		nav:      NewNavController(NavSections),
		sections: NewRevealer(sectionRevealThreshold),
		cards:    NewRevealer(cardRevealThreshold),
		filters:  NewFilterBar(opts.Catalog),
		field:    NewParticleField(Viewport{}, nil),
		typer:    NewTyper(opts.Phrases, opts.Pace),
		out:      make(chan []Patch, 32),
		done:     make(chan struct{}),
	}
	s.sections.Observe(RevealSections...)
	s.cards.Observe(opts.Catalog.CardIDs()...)
	s.contact = NewContactForm(opts.ContactEmail, opts.ResetDelay, s.emit)
	return s
}

// emit queues patches for the client; it gives up once the session ended.
func (s *Session) emit(patches []Patch) {
	select {
	case s.out <- patches:
	case <-s.done:
	}
}

// Handle applies one browser event and returns the resulting patches.
// Unknown events are ignored.
func (s *Session) Handle(ctx context.Context, ev Event) (patches []Patch) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("session: %s event: %v", ev.Type, r)
			patches = nil
		}
	}()

	switch ev.Type {
	case "hello", "resize":
		s.field.Resize(Viewport{W: ev.W, H: ev.H})
		if !s.field.Empty() {
			seed := s.field.Seed()
			patches = []Patch{{Op: "particles", Seed: &seed}}
		}
	case "scroll":
		patches = s.nav.Scroll(ev.Y, ev.Sections)
		patches = append(patches, s.backTop.Scroll(ev.Y))
	case "intersect":
		r := s.sections
		if ev.Kind == "card" {
			r = s.cards
		}
		if p, ok := r.Intersect(ev.ID, ev.Ratio); ok {
			patches = append(patches, p)
		}
	case "click":
		patches = s.click(ctx, ev)
	case "submit":
		if s.opts.ContactLimiter != nil && !s.opts.ContactLimiter.Allow(s.ip) {
			return []Patch{textPatch("#formNote", contactLimitedNote)}
		}
		patches = s.contact.Submit(NewContactSubmission(ev.Name, ev.Email, ev.Subject, ev.Message))
	}
	return patches
}

func (s *Session) click(ctx context.Context, ev Event) []Patch {
	switch ev.Target {
	case "hamburger":
		return s.menu.Toggle()
	case "nav-link":
		return s.menu.LinkClicked()
	case "filter":
		return s.filters.Activate(ev.Value)
	case "back-top":
		return []Patch{s.backTop.Click()}
	case "project":
		if _, ok := s.opts.Catalog.BySlug(ev.Value); ok && s.opts.Clicks != nil {
			if err := s.opts.Clicks.RecordProjectClick(ctx, ev.Value); err != nil {
				log.Printf("session: %v", err)
			}
		}
	}
	return nil
}

// Run serves the session over conn until the client goes away or ctx ends.
func (s *Session) Run(ctx context.Context, conn *websocket.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.contact.Stop()

	go func() {
		<-ctx.Done()
		close(s.done)
	}()

	go RunTyping(ctx, s.typer, func(text string) {
		s.emit([]Patch{textPatch("#typingTarget", text)})
	})

	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case patches := <-s.out:
				wctx, wcancel := context.WithTimeout(ctx, 5*time.Second)
				err := wsjson.Write(wctx, conn, patches)
				wcancel()
				if err != nil {
					return
				}
			}
		}
	}()

	for {
		var ev Event
		if err := wsjson.Read(ctx, conn, &ev); err != nil {
			if errors.Is(err, context.Canceled) || websocket.CloseStatus(err) != -1 {
				return nil
			}
			return err
		}
		if patches := s.Handle(ctx, ev); len(patches) > 0 {
			s.emit(patches)
		}
	}
}

// serveSession upgrades the request and runs a fresh session on it.
func serveSession(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := websocket.Accept(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("ws: accept error: %v", err)
			return
		}
		defer conn.CloseNow()

		if err := NewSession(opts, c.ClientIP()).Run(c.Request.Context(), conn); err != nil {
			log.Printf("ws: session ended: %v", err)
			return
		}
		conn.Close(websocket.StatusNormalClosure, "")
	}
}
