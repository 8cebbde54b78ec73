package site

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/folio/internal/analysis"
	"github.com/folio-dev/folio/internal/anim"
	"github.com/folio-dev/folio/internal/blog"
	"github.com/folio-dev/folio/internal/catalog"
	"github.com/folio-dev/folio/internal/contact"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

type fakeSubmitter struct {
	mu     sync.Mutex
	forms  []contact.Form
	result contact.Result
	err    error
}

func (f *fakeSubmitter) Submit(_ context.Context, form contact.Form) (contact.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forms = append(f.forms, form)
	return f.result, f.err
}

// gatedSubmitter holds the first submit until gate is closed. Later calls
// return at once.
type gatedSubmitter struct {
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	gate    chan struct{}
}

func (g *gatedSubmitter) Submit(ctx context.Context, _ contact.Form) (contact.Result, error) {
	g.mu.Lock()
	g.calls++
	first := g.calls == 1
	g.mu.Unlock()
	if first {
		close(g.entered)
		select {
		case <-g.gate:
		case <-ctx.Done():
		}
	}
	return contact.Result{Success: false, Message: contact.MsgMissingFields}, nil
}

// recordingClock fires at once and records every requested delay.
type recordingClock struct {
	anim.InstantClock
	mu     sync.Mutex
	delays []time.Duration
}

func (c *recordingClock) AfterFunc(d time.Duration, f func()) anim.Timer {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.mu.Unlock()
	return c.InstantClock.AfterFunc(d, f)
}

type fixture struct {
	site      *Site
	router    chi.Router
	staticDir string
	blogsDir  string
}

func setupSite(t *testing.T, sub contact.Submitter) *fixture {
	t.Helper()
	staticDir := t.TempDir()
	blogsDir := t.TempDir()

	s, err := New(Options{
		Sessions:  sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!")),
		Clock:     anim.InstantClock{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Blogs:     blog.NewIndex(blogsDir),
		Contact:   sub,
		StaticDir: staticDir,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	s.RegisterRoutes(r)
	return &fixture{site: s, router: r, staticDir: staticDir, blogsDir: blogsDir}
}

// do sends signals as a Datastar client would: in the query for GET and as
// a JSON body otherwise.
func (f *fixture) do(t *testing.T, method, target string, signals any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if signals != nil {
		raw, err := json.Marshal(signals)
		require.NoError(t, err)
		if method == http.MethodGet {
			target += "?datastar=" + url.QueryEscape(string(raw))
		} else {
			body = strings.NewReader(string(raw))
		}
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Datastar-Request", "true")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func assertNoPatch(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.NotContains(t, rec.Body.String(), "event:")
}

// =============================================================================
// Pages
// =============================================================================

func TestHomePage(t *testing.T) {
	f := setupSite(t, nil)
	rec := f.do(t, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, `id="theme-style"`)
	assert.Contains(t, body, "/static/css/main_blue_theme.css")
	assert.Contains(t, body, "experiences")
	assert.Contains(t, body, "Full Stack Development")
	assert.Contains(t, body, "91%")
	assert.Contains(t, body, "/static/models/robot.glb")
	assert.Contains(t, body, "data-signals=")
}

func TestProjectsPage(t *testing.T) {
	f := setupSite(t, nil)
	rec := f.do(t, http.MethodGet, "/projects", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 6, strings.Count(body, `class="project-card`))
	assert.Contains(t, body, "Page 1 of 2")
	assert.Contains(t, body, "LeetCode Platform")
	assert.Contains(t, body, "animation-delay: 150ms")
	assert.Contains(t, body, `id="card-0-details"`)
	assert.Contains(t, body, `id="card-0-details-ripple"`)
	assert.Contains(t, body, `id="card-0-repo-ripple"`)
	assert.Contains(t, body, "@get('/ui/projects/0')")
}

func TestDownloadButtonsRipple(t *testing.T) {
	f := setupSite(t, nil)

	resume := f.do(t, http.MethodGet, "/resume", nil).Body.String()
	assert.Contains(t, resume, `id="resume-web-developer-ripple"`)
	assert.Contains(t, resume, `id="resume-software-developer-ripple"`)

	certs := f.do(t, http.MethodGet, "/certificates", nil).Body.String()
	assert.Contains(t, certs, `id="certificate-1-ripple"`)
	assert.Contains(t, certs, `id="certificate-2-ripple"`)
	assert.Equal(t, 2, strings.Count(certs, "@post('/ui/ripple')"))
}

func TestNotFoundPage(t *testing.T) {
	f := setupSite(t, nil)
	rec := f.do(t, http.MethodGet, "/no-such-page", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}

func TestDemoPages(t *testing.T) {
	f := setupSite(t, nil)

	rec := f.do(t, http.MethodGet, "/demo/mood-detector", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mood Detector")
	assert.Contains(t, rec.Body.String(), "/api/mood-analysis")

	rec = f.do(t, http.MethodGet, "/demo/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlogPages(t *testing.T) {
	f := setupSite(t, nil)
	require.NoError(t, os.WriteFile(filepath.Join(f.blogsDir, "hello.md"), []byte("# Hello There\n\nFirst post."), 0o644))

	rec := f.do(t, http.MethodGet, "/blogs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello There")
	assert.Contains(t, rec.Body.String(), `href="/blogs/hello.md"`)

	rec = f.do(t, http.MethodGet, "/blogs/hello.md", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<p>First post.</p>")

	rec = f.do(t, http.MethodGet, "/blogs/missing.md", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactFormFlashes(t *testing.T) {
	sub := &fakeSubmitter{result: contact.Result{Success: true, Message: "Thanks, got it"}}
	f := setupSite(t, sub)

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		return rec
	}

	rec := post(url.Values{"name": {"Ada"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact", rec.Header().Get("Location"))
	page := f.do(t, http.MethodGet, "/contact", nil, rec.Result().Cookies()...)
	assert.Contains(t, page.Body.String(), "Please fill all fields!")
	assert.Empty(t, sub.forms)

	rec = post(url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "subject": {"Hi"}, "message": {"Hello"}})
	page = f.do(t, http.MethodGet, "/contact", nil, rec.Result().Cookies()...)
	assert.Contains(t, page.Body.String(), "Thanks, got it")
	require.Len(t, sub.forms, 1)
	assert.Equal(t, "ada@example.com", sub.forms[0].Email)
}

func TestDownloads(t *testing.T) {
	f := setupSite(t, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(f.staticDir, "resumes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.staticDir, "resumes", "web_developer_resume.pdf"), []byte("%PDF-1.4"), 0o644))

	rec := f.do(t, http.MethodGet, "/download/resume/web-developer", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "%PDF-1.4", rec.Body.String())

	rec = f.do(t, http.MethodGet, "/download/resume/software-developer", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/resume", rec.Header().Get("Location"))
	page := f.do(t, http.MethodGet, "/resume", nil, rec.Result().Cookies()...)
	assert.Contains(t, page.Body.String(), "Resume file not found")

	rec = f.do(t, http.MethodGet, "/download/certificate/7", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/certificates", rec.Header().Get("Location"))

	rec = f.do(t, http.MethodGet, "/download/resume/astronaut", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// Gallery and overlays
// =============================================================================

func TestGalleryPaging(t *testing.T) {
	f := setupSite(t, nil)

	rec := f.do(t, http.MethodPost, "/ui/gallery/next", map[string]any{"page": 1})
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "Page 2 of 2")
	assert.Contains(t, body, `"page":2`)
	assert.Equal(t, 2, strings.Count(body, `class="project-card`))

	// Out of range: nothing changes.
	assertNoPatch(t, f.do(t, http.MethodPost, "/ui/gallery/next", map[string]any{"page": 2}))
	assertNoPatch(t, f.do(t, http.MethodPost, "/ui/gallery/prev", map[string]any{"page": 1}))
	assertNoPatch(t, f.do(t, http.MethodGet, "/ui/gallery/page/9", nil))

	rec = f.do(t, http.MethodGet, "/ui/gallery/page/1", map[string]any{"page": 2})
	assert.Contains(t, rec.Body.String(), "Page 1 of 2")
}

func TestProjectModal(t *testing.T) {
	f := setupSite(t, nil)

	rec := f.do(t, http.MethodGet, "/ui/projects/0", map[string]any{"overlay": "tag"})
	body := rec.Body.String()
	assert.Contains(t, body, "project-modal-content")
	assert.Contains(t, body, "LeetCode Platform")
	assert.Contains(t, body, "Leaderboard with ranking system")
	assert.Contains(t, body, `"overlay":"project"`)
	assert.Contains(t, body, `"scrollLocked":true`)
	assert.Contains(t, body, "/ui/tags/Flask")
	assert.Contains(t, body, "data-on:click__stop=")

	assertNoPatch(t, f.do(t, http.MethodGet, "/ui/projects/99", nil))
	assertNoPatch(t, f.do(t, http.MethodGet, "/ui/projects/abc", nil))
}

func TestOverlayOpenAndClose(t *testing.T) {
	f := setupSite(t, nil)

	rec := f.do(t, http.MethodPost, "/ui/overlays/contact/open", map[string]any{"overlay": "tag"})
	assert.Contains(t, rec.Body.String(), `"overlay":"contact"`)

	rec = f.do(t, http.MethodPost, "/ui/overlays/email/open", map[string]any{})
	assert.Contains(t, rec.Body.String(), `"overlay":"email"`)
	assert.Contains(t, rec.Body.String(), contact.LabelIdle)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPost, "/ui/overlays/project/open", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPost, "/ui/overlays/bogus/close", nil).Code)

	// Closing an overlay that is not the open one leaves scroll locked.
	assertNoPatch(t, f.do(t, http.MethodPost, "/ui/overlays/tag/close", map[string]any{"overlay": "contact"}))

	rec = f.do(t, http.MethodPost, "/ui/overlays/contact/close", map[string]any{"overlay": "contact"})
	assert.Contains(t, rec.Body.String(), `"overlay":""`)
	assert.Contains(t, rec.Body.String(), `"scrollLocked":false`)
}

func TestOverlayDismiss(t *testing.T) {
	f := setupSite(t, nil)

	rec := f.do(t, http.MethodPost, "/ui/overlays/dismiss", map[string]any{"overlay": "highlight"})
	assert.Contains(t, rec.Body.String(), `"overlay":""`)

	assertNoPatch(t, f.do(t, http.MethodPost, "/ui/overlays/dismiss", map[string]any{"overlay": ""}))
}

func TestTagTooltip(t *testing.T) {
	f := setupSite(t, nil)

	first := f.do(t, http.MethodGet, "/ui/tags/Flask", nil).Body.String()
	second := f.do(t, http.MethodGet, "/ui/tags/Flask", nil).Body.String()
	assert.Equal(t, first, second)

	assert.Contains(t, first, "tag-tooltip-content")
	assert.Contains(t, first, "Lightweight Python web framework")
	assert.Equal(t, 5, strings.Count(first, `class="skill-segment`))
	assert.Equal(t, 5, strings.Count(first, `class="skill-segment active"`))
	assert.Contains(t, first, `"overlay":"tag"`)

	assertNoPatch(t, f.do(t, http.MethodGet, "/ui/tags/"+url.PathEscape("No Such Tag"), nil))
}

func TestSkillStreamsCounters(t *testing.T) {
	f := setupSite(t, nil)

	body := f.do(t, http.MethodGet, "/ui/skills/Python", nil).Body.String()
	assert.Contains(t, body, "skill-modal-content")
	assert.Contains(t, body, "Advanced")
	assert.Contains(t, body, "Strong proficiency with 92% success rate.")
	assert.Contains(t, body, `"overlay":"skill"`)

	// Circles start empty and end on the exact scores.
	assert.Contains(t, body, "0%")
	last := body[strings.LastIndex(body, `id="skill-circles"`):]
	assert.Contains(t, last, "95%")
	assert.Contains(t, last, "70%")
	assert.Contains(t, last, "var(--primary) 342deg")

	escaped := f.do(t, http.MethodGet, "/ui/skills/"+url.PathEscape("HTML/CSS/JS"), nil).Body.String()
	assert.Contains(t, escaped, "Core web technologies")

	assertNoPatch(t, f.do(t, http.MethodGet, "/ui/skills/Cobol", nil))
}

func TestSkillCounterPacesEveryFrame(t *testing.T) {
	f := setupSite(t, nil)
	clock := &recordingClock{}
	f.site.clock = clock

	f.do(t, http.MethodGet, "/ui/skills/Python", nil)

	info, err := catalog.Skill("Python")
	require.NoError(t, err)
	frames := len(analysis.CirclesFor(info).Frames())

	clock.mu.Lock()
	defer clock.mu.Unlock()
	require.Len(t, clock.delays, frames+1)
	assert.Equal(t, analysis.CounterDelay, clock.delays[0])
	for _, d := range clock.delays[1:] {
		assert.Equal(t, analysis.CounterStep, d)
	}
}

func TestSkillCloseResetsCircles(t *testing.T) {
	f := setupSite(t, nil)

	body := f.do(t, http.MethodPost, "/ui/overlays/skill/close", map[string]any{"overlay": "skill"}).Body.String()
	assert.Contains(t, body, `"overlay":""`)
	assert.Contains(t, body, `id="skill-circles"`)
	assert.Equal(t, 3, strings.Count(body, ">0%<"))
}

func TestHighlightModal(t *testing.T) {
	f := setupSite(t, nil)

	body := f.do(t, http.MethodGet, "/ui/highlights/fullstack", nil).Body.String()
	assert.Contains(t, body, "Full Stack Development")
	assert.Contains(t, body, "91%")
	assert.Contains(t, body, `"overlay":"highlight"`)

	assertNoPatch(t, f.do(t, http.MethodGet, "/ui/highlights/quantum", nil))
}

func TestInfoToggle(t *testing.T) {
	f := setupSite(t, nil)

	rec := f.do(t, http.MethodPost, "/ui/highlights/info", map[string]any{"infoActive": false})
	assert.Contains(t, rec.Body.String(), `"infoActive":true`)

	rec = f.do(t, http.MethodPost, "/ui/highlights/info", map[string]any{"infoActive": true})
	assert.Contains(t, rec.Body.String(), `"infoActive":false`)

	rec = f.do(t, http.MethodPost, "/ui/highlights/info/dismiss", map[string]any{"infoActive": true})
	assert.Contains(t, rec.Body.String(), `"infoActive":false`)
}

// =============================================================================
// Theme
// =============================================================================

func TestThemeToggle(t *testing.T) {
	f := setupSite(t, nil)

	rec := f.do(t, http.MethodPost, "/ui/theme/toggle", map[string]any{"viewportWidth": 1280})
	assert.Contains(t, rec.Body.String(), `href="/static/css/main.css"`)
	assert.Contains(t, rec.Body.String(), "theme-red")
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// A second toggle inside the guard window is ignored.
	assertNoPatch(t, f.do(t, http.MethodPost, "/ui/theme/toggle", map[string]any{"viewportWidth": 1280}, cookies...))

	// The preference survives into later pages.
	page := f.do(t, http.MethodGet, "/", nil, cookies...)
	assert.Contains(t, page.Body.String(), `href="/static/css/main.css"`)

	rec = f.do(t, http.MethodPost, "/ui/theme/init", map[string]any{"viewportWidth": 1280}, cookies...)
	assert.Contains(t, rec.Body.String(), `href="/static/css/main.css"`)
}

func TestThemeMobileLocked(t *testing.T) {
	f := setupSite(t, nil)

	rec := f.do(t, http.MethodPost, "/ui/theme/toggle", map[string]any{"viewportWidth": 500})
	assertNoPatch(t, rec)
	assert.Empty(t, rec.Result().Cookies())

	rec = f.do(t, http.MethodPost, "/ui/theme/init", map[string]any{"viewportWidth": 500})
	assert.Contains(t, rec.Body.String(), "main_blue_theme.css")
	assert.Contains(t, rec.Body.String(), "disabled")
	assert.Empty(t, rec.Result().Cookies())
}

// =============================================================================
// Email dialog
// =============================================================================

func emailSignals() map[string]any {
	return map[string]any{
		"overlay": "email",
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hello",
		"message": "Nice site",
	}
}

func TestEmailSubmitSuccess(t *testing.T) {
	sub := &fakeSubmitter{result: contact.Result{Success: true, Message: "Sent!"}}
	f := setupSite(t, sub)

	rec := f.do(t, http.MethodPost, "/ui/email/submit", emailSignals())
	body := rec.Body.String()

	sending := strings.Index(body, contact.LabelSending)
	sent := strings.Index(body, "Sent!")
	require.GreaterOrEqual(t, sending, 0)
	require.Greater(t, sent, sending)
	assert.Contains(t, body, `email-notice success`)
	assert.Contains(t, body, `"name":""`)
	assert.Contains(t, body, `"overlay":""`)

	require.Len(t, sub.forms, 1)
	assert.Equal(t, contact.Form{Name: "Ada", Email: "ada@example.com", Subject: "Hello", Message: "Nice site"}, sub.forms[0])
	assert.Zero(t, f.site.dialogs.len())
}

func TestEmailSubmitNetworkError(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	f := setupSite(t, sub)

	body := f.do(t, http.MethodPost, "/ui/email/submit", emailSignals()).Body.String()
	assert.Contains(t, body, contact.MsgNetworkError)
	assert.Contains(t, body, `email-notice error`)
	assert.NotContains(t, body, `"overlay"`)

	// The button is re-enabled with its idle label.
	last := body[strings.LastIndex(body, `id="email-send"`):]
	assert.Contains(t, last, contact.LabelIdle)
	assert.NotContains(t, last, "disabled")
}

func TestEmailSubmitRejected(t *testing.T) {
	sub := &fakeSubmitter{result: contact.Result{Success: false, Message: contact.MsgMissingFields}}
	f := setupSite(t, sub)

	body := f.do(t, http.MethodPost, "/ui/email/submit", map[string]any{"overlay": "email"}).Body.String()
	assert.Contains(t, body, contact.MsgMissingFields)
	assert.Contains(t, body, `email-notice error`)
	assert.NotContains(t, body, `"name":""`)
}

func TestEmailSubmitSingleFlightPerVisitor(t *testing.T) {
	sub := &gatedSubmitter{entered: make(chan struct{}), gate: make(chan struct{})}
	f := setupSite(t, sub)

	rec := httptest.NewRecorder()
	_, err := f.site.ensureVisitor(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	const n = 16
	done := make(chan struct{}, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.do(t, http.MethodPost, "/ui/email/submit", emailSignals(), cookies...)
			done <- struct{}{}
		}()
	}

	// Every request but the one holding the submit returns while it is held.
	<-sub.entered
	for range n - 1 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("duplicate submit did not return")
		}
	}
	sub.mu.Lock()
	assert.Equal(t, 1, sub.calls)
	sub.mu.Unlock()

	close(sub.gate)
	wg.Wait()
	assert.Zero(t, f.site.dialogs.len())
}

// =============================================================================
// Cosmetic effects
// =============================================================================

func TestRipple(t *testing.T) {
	f := setupSite(t, nil)

	body := f.do(t, http.MethodPost, "/ui/ripple", map[string]any{
		"ripple": map[string]any{
			"target": "cta-projects",
			"click":  map[string]float64{"x": 150, "y": 120},
			"rect":   map[string]float64{"left": 100, "top": 100, "width": 120, "height": 40},
			"cta":    true,
		},
	}).Body.String()

	assert.Contains(t, body, `id="cta-projects-ripple"`)
	assert.Contains(t, body, "width:120px;height:120px;left:-10px;top:-40px")
	assert.Contains(t, body, `"bounce":"cta-projects"`)
	assert.Contains(t, body, `"bounce":""`)
	// The ripple is inserted, then the layer is emptied.
	assert.Equal(t, 2, strings.Count(body, `id="cta-projects-ripple"`))

	// Plain buttons ripple without the icon bounce.
	body = f.do(t, http.MethodPost, "/ui/ripple", map[string]any{
		"ripple": map[string]any{
			"target": "card-0-details",
			"click":  map[string]float64{"x": 150, "y": 120},
			"rect":   map[string]float64{"left": 100, "top": 100, "width": 120, "height": 40},
		},
	}).Body.String()
	assert.Equal(t, 2, strings.Count(body, `id="card-0-details-ripple"`))
	assert.NotContains(t, body, `"bounce"`)

	rec := f.do(t, http.MethodPost, "/ui/ripple", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReveal(t *testing.T) {
	f := setupSite(t, nil)

	body := f.do(t, http.MethodPost, "/ui/reveal", map[string]any{
		"viewportHeight": 1000,
		"cardTops":       []float64{100, 500, 2000},
		"revealed":       []int{},
	}).Body.String()
	assert.Contains(t, body, `"revealed":[0]`)
	assert.Contains(t, body, `"revealed":[0,1]`)
	assert.NotContains(t, body, `"revealed":[0,1,2]`)

	body = f.do(t, http.MethodPost, "/ui/reveal", map[string]any{
		"viewportHeight": 1000,
		"cardTops":       []float64{-400, 0, 300},
		"revealed":       []int{0, 1},
	}).Body.String()
	assert.Contains(t, body, `"revealed":[0,1,2]`)
}

func TestLoopingStreamsStopWithClient(t *testing.T) {
	f := setupSite(t, nil)

	for _, target := range []string{"/ui/model", "/ui/headline"} {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assertNoPatch(t, rec)
	}
}

func TestProfileHover(t *testing.T) {
	f := setupSite(t, nil)

	rec := f.do(t, http.MethodGet, "/ui/profile/enter", nil)
	body := rec.Body.String()
	assert.Contains(t, body, ".currentTime = 0")
	assert.Contains(t, body, ".play()")
	assert.Contains(t, body, ".pause()")
	assert.Less(t, strings.Index(body, ".play()"), strings.Index(body, ".pause()"))
	assert.Zero(t, f.site.hovers.len())

	leave := f.do(t, http.MethodPost, "/ui/profile/leave", nil, rec.Result().Cookies()...)
	assert.Equal(t, http.StatusNoContent, leave.Code)
}
