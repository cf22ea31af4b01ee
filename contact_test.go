package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecipient = "abdullahzunorain@gmail.com"

func TestContactSubmissionValidate(t *testing.T) {
	tests := []struct {
		name  string
		input ContactSubmission
		want  []string
	}{
		{"valid", NewContactSubmission("Jane", "jane@x.com", "Hi", "Hello"), nil},
		{"empty name and bad email", NewContactSubmission("", "not-an-email", "Hi", "Hello"), []string{"nameErr", "emailErr"}},
		{"whitespace only", NewContactSubmission("  ", " jane@x.com ", "\t", "\n"), []string{"nameErr", "subjectErr", "msgErr"}},
		{"everything missing", NewContactSubmission("", "", "", ""), []string{"nameErr", "emailErr", "subjectErr", "msgErr"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.input.Validate()
			if tt.want == nil {
				assert.Nil(t, errs)
				return
			}
			require.Len(t, errs, len(tt.want))
			for _, slot := range tt.want {
				assert.Contains(t, errs, slot)
			}
		})
	}
}

func TestEmailPattern(t *testing.T) {
	valid := []string{"jane@x.com", "a@b.c", "first.last@sub.domain.org", "a@b.c.d"}
	invalid := []string{"not-an-email", "@x.com", "jane@.com", "jane@x.", "jane@x", "ja ne@x.com", "jane@@x.com", "jane@x .com"}

	for _, e := range valid {
		assert.True(t, emailPattern.MatchString(e), e)
	}
	for _, e := range invalid {
		assert.False(t, emailPattern.MatchString(e), e)
	}
}

func TestMailtoLink(t *testing.T) {
	s := NewContactSubmission("Jane", "jane@x.com", "Hi", "Hello")
	assert.Equal(t,
		"mailto:abdullahzunorain@gmail.com?subject=Hi&body=Name%3A%20Jane%0AEmail%3A%20jane%40x.com%0A%0AHello",
		MailtoLink(testRecipient, s))
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "A-z_0.9!~*'()", encodeURIComponent("A-z_0.9!~*'()"))
	assert.Equal(t, "a%20b%26c%3Dd%2Fe%3F%23", encodeURIComponent("a b&c=d/e?#"))
	assert.Equal(t, "caf%C3%A9", encodeURIComponent("café"))
}

type patchRecorder struct {
	mu      sync.Mutex
	batches [][]Patch
}

func (r *patchRecorder) emit(p []Patch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, p)
}

func (r *patchRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

func errorTexts(patches []Patch) map[string]string {
	out := map[string]string{}
	for _, p := range patches {
		if p.Op == "text" && strings.HasSuffix(p.Target, "Err") && p.Text != "" {
			out[strings.TrimPrefix(p.Target, "#")] = p.Text
		}
	}
	return out
}

func hasOp(patches []Patch, op string) bool {
	for _, p := range patches {
		if p.Op == op {
			return true
		}
	}
	return false
}

func TestContactFormInvalidSubmission(t *testing.T) {
	rec := &patchRecorder{}
	form := NewContactForm(testRecipient, 10*time.Millisecond, rec.emit)
	defer form.Stop()

	patches := form.Submit(NewContactSubmission("", "not-an-email", "Hi", "Hello"))

	errs := errorTexts(patches)
	assert.Equal(t, map[string]string{
		"nameErr":  "Please enter your name.",
		"emailErr": "Please enter a valid email.",
	}, errs)
	assert.False(t, hasOp(patches, "navigate"), "no mail link on failure")
	assert.False(t, hasOp(patches, "reset"), "fields are kept")

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, rec.count(), "nothing is scheduled on failure")
}

func TestContactFormValidSubmissionResets(t *testing.T) {
	rec := &patchRecorder{}
	form := NewContactForm(testRecipient, 20*time.Millisecond, rec.emit)
	defer form.Stop()

	patches := form.Submit(NewContactSubmission("Jane", "jane@x.com", "Hi", "Hello"))

	assert.Empty(t, errorTexts(patches))
	assert.Contains(t, patches, Patch{Op: "navigate", Href: MailtoLink(testRecipient, NewContactSubmission("Jane", "jane@x.com", "Hi", "Hello"))})
	assert.Contains(t, patches, textPatch("#submitLabel", submitPending))
	assert.Contains(t, patches, Patch{Op: "prop", Target: "#submitBtn", Name: "disabled", On: true})
	assert.Contains(t, patches, textPatch("#formNote", contactSentNote))

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	rec.mu.Lock()
	reset := rec.batches[0]
	rec.mu.Unlock()
	assert.Contains(t, reset, Patch{Op: "reset", Target: "#contactForm"})
	assert.Contains(t, reset, textPatch("#submitLabel", submitLabel))
	assert.Contains(t, reset, Patch{Op: "prop", Target: "#submitBtn", Name: "disabled", On: false})
	assert.Contains(t, reset, textPatch("#formNote", ""))
}

func TestContactFormStopCancelsReset(t *testing.T) {
	rec := &patchRecorder{}
	form := NewContactForm(testRecipient, 20*time.Millisecond, rec.emit)

	form.Submit(NewContactSubmission("Jane", "jane@x.com", "Hi", "Hello"))
	form.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, rec.count())
}

func newContactRouter(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("templates/*")
	h := &contactHandler{to: testRecipient, resetDelay: 4 * time.Second, limiter: NewIPRateLimiter(perMin)}
	r.GET("/contact-form", h.form)
	r.POST("/contact", h.submit)
	return r
}

func postContact(r http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "1.2.3.4:5678"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestContactHandlerValidation(t *testing.T) {
	r := newContactRouter(5)

	rec := postContact(r, url.Values{"name": {""}, "email": {"not-an-email"}, "subject": {"Hi"}, "message": {"Hello"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
	body := rec.Body.String()
	assert.Contains(t, body, "Please enter your name.")
	assert.Contains(t, body, "Please enter a valid email.")
	assert.NotContains(t, body, "Please enter a subject.")
	assert.Contains(t, body, `value="Hi"`, "fields are kept")
}

func TestContactHandlerSuccess(t *testing.T) {
	r := newContactRouter(5)

	rec := postContact(r, url.Values{"name": {"Jane"}, "email": {"jane@x.com"}, "subject": {"Hi"}, "message": {"Hello"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	var trigger map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &trigger))
	assert.Equal(t,
		"mailto:abdullahzunorain@gmail.com?subject=Hi&body=Name%3A%20Jane%0AEmail%3A%20jane%40x.com%0A%0AHello",
		trigger["openMailto"]["href"])

	body := rec.Body.String()
	assert.Contains(t, body, contactSentNote)
	assert.Contains(t, body, "delay:4000ms")
	assert.Contains(t, body, "disabled")
}

func TestContactHandlerRateLimited(t *testing.T) {
	r := newContactRouter(1)
	valid := url.Values{"name": {"Jane"}, "email": {"jane@x.com"}, "subject": {"Hi"}, "message": {"Hello"}}

	assert.NotEmpty(t, postContact(r, valid).Header().Get("HX-Trigger"))
	rec := postContact(r, valid)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
	assert.Contains(t, rec.Body.String(), "Too many messages")
}

func TestContactFormFragment(t *testing.T) {
	r := newContactRouter(5)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact-form", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	for _, id := range []string{"nameErr", "emailErr", "subjectErr", "msgErr", "formNote", "submitBtn"} {
		assert.Contains(t, rec.Body.String(), `id="`+id+`"`)
	}
}
