package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/folio-dev/folio/internal/anim"
	"github.com/folio-dev/folio/internal/blog"
	"github.com/folio-dev/folio/internal/catalog"
	"github.com/folio-dev/folio/internal/contact"
	"github.com/folio-dev/folio/internal/gallery"
	"github.com/folio-dev/folio/internal/theme"
)

// pageData feeds the layout and every page body. Pages fill only the
// fields they render.
type pageData struct {
	Title   string
	Nav     string
	Theme   themeView
	Signals string
	Flashes []Flash
	Email   contact.State

	Headline   anim.Frame
	Models     string
	ModelSrc   string
	Preloads   []string
	Highlights []highlightView
	Skills     []string

	Gallery      gallery.Page
	Certificates []certificate
	Posts        []blog.Post
	PostHTML     template.HTML
	Demo         *demoPage

	initial initialSignals
}

type themeView struct {
	Link   theme.Link
	Theme  theme.Theme
	Mobile bool
}

func newThemeView(t theme.Theme, mobile bool) themeView {
	return themeView{Link: theme.Link{ID: theme.LinkID, Href: theme.Stylesheet(t)}, Theme: t, Mobile: mobile}
}

type highlightView struct {
	Key     string
	Info    catalog.HighlightInfo
	Overall int
}

// initialSignals seeds the client store. Field names match Signals.
type initialSignals struct {
	Page          int        `json:"page"`
	Overlay       string     `json:"overlay"`
	ScrollLocked  bool       `json:"scrollLocked"`
	InfoActive    bool       `json:"infoActive"`
	ViewportWidth int        `json:"viewportWidth"`
	ViewportH     float64    `json:"viewportHeight"`
	CardTops      []float64  `json:"cardTops"`
	Revealed      []int      `json:"revealed"`
	Ripple        RippleHint `json:"ripple"`
	Bounce        string     `json:"bounce"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Subject       string     `json:"subject"`
	Message       string     `json:"message"`
	HeadlineWord  string     `json:"headlineWord"`
	HeadlinePhase string     `json:"headlinePhase"`
	ModelSrc      string     `json:"modelSrc"`
}

// renderPage executes a page into a buffer so a template failure can
// still produce the error page.
func (s *Site) renderPage(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	s.renderStatus(w, r, http.StatusOK, name, data)
}

func (s *Site) renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	t, ok := s.pages[name]
	if !ok {
		http.Error(w, "unknown page "+name, http.StatusInternalServerError)
		return
	}

	sess := s.session(r)
	data.Theme = newThemeView(preferredTheme(sess), false)
	data.Flashes = takeFlashes(w, r, sess)
	data.Email = contact.State{Label: contact.LabelIdle}

	seed := data.initial
	seed.Page = max(seed.Page, 1)
	seed.CardTops = []float64{}
	seed.Revealed = []int{}
	seed.HeadlineWord = data.Headline.Word
	seed.HeadlinePhase = string(data.Headline.Phase)
	seed.ModelSrc = data.ModelSrc
	sig, err := json.Marshal(seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data.Signals = string(sig)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		if status == http.StatusInternalServerError {
			http.Error(w, http.StatusText(status), status)
			return
		}
		s.serverError(w, r, fmt.Errorf("rendering %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// fragment renders a named fragment to a string for an SSE patch.
func (s *Site) fragment(name string, data any) (string, error) {
	var sb strings.Builder
	if err := s.pages[""].ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return sb.String(), nil
}
