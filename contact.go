package main

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	submitLabel     = "Send Message"
	submitPending   = "✓ Opening your email client…"
	contactSentNote = "Your email client should open shortly. Thank you!"

	contactLimitedNote = "Too many messages, please try again in a minute."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error slots next to each contact field, in form order.
var contactErrorSlots = []string{"nameErr", "emailErr", "subjectErr", "msgErr"}

// ContactSubmission is one contact form submission. Nothing about it is kept
// once the mail link has been produced.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func NewContactSubmission(name, email, subject, message string) ContactSubmission {
	return ContactSubmission{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Subject: strings.TrimSpace(subject),
		Message: strings.TrimSpace(message),
	}
}

// Validate returns a message per failing field keyed by its error slot.
// A nil map means the submission is valid.
func (s ContactSubmission) Validate() map[string]string {
	errs := map[string]string{}
	if s.Name == "" {
		errs["nameErr"] = "Please enter your name."
	}
	if !emailPattern.MatchString(s.Email) {
		errs["emailErr"] = "Please enter a valid email."
	}
	if s.Subject == "" {
		errs["subjectErr"] = "Please enter a subject."
	}
	if s.Message == "" {
		errs["msgErr"] = "Please enter a message."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// MailtoLink builds the pre-filled draft handed to the visitor's mail client.
func MailtoLink(to string, s ContactSubmission) string {
	body := "Name: " + s.Name + "\nEmail: " + s.Email + "\n\n" + s.Message
	return "mailto:" + to +
		"?subject=" + encodeURIComponent(s.Subject) +
		"&body=" + encodeURIComponent(body)
}

// encodeURIComponent percent-encodes everything outside the URI component
// unreserved set, matching what browsers produce.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// ContactForm drives the contact form of one page. After a successful
// submission the form restores itself once the reset delay has passed,
// whether or not the mail client did anything.
type ContactForm struct {
	to    string
	delay time.Duration
	emit  func([]Patch)

	mu    sync.Mutex
	reset *time.Timer
}

func NewContactForm(to string, delay time.Duration, emit func([]Patch)) *ContactForm {
	return &ContactForm{to: to, delay: delay, emit: emit}
}

func (f *ContactForm) Submit(s ContactSubmission) []Patch {
	var patches []Patch
	for _, slot := range contactErrorSlots {
		patches = append(patches, textPatch("#"+slot, ""))
	}
	patches = append(patches, textPatch("#formNote", ""))

	if errs := s.Validate(); errs != nil {
		for _, slot := range contactErrorSlots {
			if msg, ok := errs[slot]; ok {
				patches = append(patches, textPatch("#"+slot, msg))
			}
		}
		return patches
	}

	patches = append(patches,
		Patch{Op: "navigate", Href: MailtoLink(f.to, s)},
		textPatch("#submitLabel", submitPending),
		Patch{Op: "prop", Target: "#submitBtn", Name: "disabled", On: true},
		textPatch("#formNote", contactSentNote),
	)

	f.mu.Lock()
	if f.reset != nil {
		f.reset.Stop()
	}
	f.reset = time.AfterFunc(f.delay, func() {
		f.emit([]Patch{
			{Op: "reset", Target: "#contactForm"},
			textPatch("#submitLabel", submitLabel),
			{Op: "prop", Target: "#submitBtn", Name: "disabled", On: false},
			textPatch("#formNote", ""),
		})
	})
	f.mu.Unlock()

	return patches
}

// Stop cancels a pending reset.
func (f *ContactForm) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reset != nil {
		f.reset.Stop()
		f.reset = nil
	}
}

type contactHandler struct {
	to         string
	resetDelay time.Duration
	limiter    *IPRateLimiter
}

func (h *contactHandler) form(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"errors": map[string]string{}, "note": ""})
}

// submit answers the HTMX contact form. Failures re-render the form with
// 200 so htmx swaps them in. On success the mail link travels in an
// HX-Trigger header and the returned fragment restores the form after the
// reset delay.
func (h *contactHandler) submit(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"errors": map[string]string{},
			"note":   contactLimitedNote,
		})
		return
	}

	s := NewContactSubmission(c.PostForm("name"), c.PostForm("email"), c.PostForm("subject"), c.PostForm("message"))
	if errs := s.Validate(); errs != nil {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"errors": errs,
			"values": s,
			"note":   "",
		})
		return
	}

	trigger, err := json.Marshal(map[string]any{
		"openMailto": map[string]string{"href": MailtoLink(h.to, s)},
	})
	if err != nil {
		log.Printf("contact: encode trigger: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("HX-Trigger", string(trigger))
	c.HTML(http.StatusOK, "contact-sent.html", gin.H{
		"label":      submitPending,
		"note":       contactSentNote,
		"resetAfter": h.resetDelay.Milliseconds(),
	})
}
