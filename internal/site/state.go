package site

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/folio-dev/folio/internal/anim"
	"github.com/folio-dev/folio/internal/contact"
	"github.com/folio-dev/folio/internal/overlay"
	"github.com/folio-dev/folio/internal/theme"
)

// SessionName is the cookie holding persisted visitor preferences.
const SessionName = "folio"

const (
	keyVisitor = "visitor"
	keyGuard   = "theme_guard"
)

// Signals are the client-side values sent with every widget request.
// Everything that only matters while a page is open lives here rather
// than in the session.
type Signals struct {
	Page           int        `json:"page"`
	Overlay        string     `json:"overlay"`
	InfoActive     bool       `json:"infoActive"`
	ViewportWidth  int        `json:"viewportWidth"`
	ViewportHeight float64    `json:"viewportHeight"`
	CardTops       []float64  `json:"cardTops"`
	Revealed       []int      `json:"revealed"`
	Ripple         RippleHint `json:"ripple"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// RippleHint describes the click that triggered a ripple.
type RippleHint struct {
	Target string     `json:"target"`
	Click  anim.Point `json:"click"`
	Rect   anim.Rect  `json:"rect"`
	CTA    bool       `json:"cta"`
}

func (sig Signals) form() contact.Form {
	return contact.Form{Name: sig.Name, Email: sig.Email, Subject: sig.Subject, Message: sig.Message}
}

func readSignals(r *http.Request) (Signals, error) {
	var sig Signals
	if r.Method == http.MethodGet && r.URL.Query().Get("datastar") == "" {
		return sig, nil
	}
	if r.Method != http.MethodGet && r.ContentLength == 0 {
		return sig, nil
	}
	err := datastar.ReadSignals(r, &sig)
	return sig, err
}

// overlaySignals is the patch sent whenever the active overlay changes.
type overlaySignals struct {
	Overlay      string `json:"overlay"`
	ScrollLocked bool   `json:"scrollLocked"`
}

func overlayPatch(c *overlay.Coordinator) overlaySignals {
	return overlaySignals{Overlay: c.String(), ScrollLocked: c.ScrollLocked()}
}

func (s *Site) session(r *http.Request) *sessions.Session {
	sess, err := s.sessions.Get(r, SessionName)
	if err != nil {
		// A stale or tampered cookie yields a fresh session.
		s.logger.Debug("discarding session", "error", err)
	}
	return sess
}

// visitorID returns the stable id of the visitor, minting one on first use.
func visitorID(sess *sessions.Session) (string, bool) {
	if id, ok := sess.Values[keyVisitor].(string); ok && id != "" {
		return id, false
	}
	id := uuid.NewString()
	sess.Values[keyVisitor] = id
	return id, true
}

// knownVisitor returns the visitor id without minting one.
func (s *Site) knownVisitor(r *http.Request) (string, bool) {
	id, ok := s.session(r).Values[keyVisitor].(string)
	return id, ok && id != ""
}

// ensureVisitor returns the visitor id, saving the session when it had to
// mint one. It must run before any SSE stream starts writing.
func (s *Site) ensureVisitor(w http.ResponseWriter, r *http.Request) (string, error) {
	sess := s.session(r)
	id, minted := visitorID(sess)
	if minted {
		if err := sess.Save(r, w); err != nil {
			return "", err
		}
	}
	return id, nil
}

// switcher restores the visitor's theme switcher for a viewport width.
func (s *Site) switcher(sess *sessions.Session, width int) *theme.Switcher {
	sw := theme.New(width, theme.SessionStore{Session: sess}, s.clock)
	if nanos, ok := sess.Values[keyGuard].(int64); ok {
		sw.Guard(time.Unix(0, nanos))
	}
	return sw
}

func storeGuard(sess *sessions.Session, sw *theme.Switcher) {
	if until := sw.AnimatingUntil(); !until.IsZero() {
		sess.Values[keyGuard] = until.UnixNano()
	}
}

// preferredTheme is the theme rendered with a full page, before the
// client reports its viewport.
func preferredTheme(sess *sessions.Session) theme.Theme {
	if t, ok := (theme.SessionStore{Session: sess}).Load(); ok {
		return t
	}
	return theme.Default
}

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Text  string
	Style contact.NoticeStyle
}

func addFlash(sess *sessions.Session, style contact.NoticeStyle, text string) {
	sess.AddFlash(text, string(style))
}

// takeFlashes pops pending flashes and saves the session if any existed.
func takeFlashes(w http.ResponseWriter, r *http.Request, sess *sessions.Session) []Flash {
	var out []Flash
	for _, style := range []contact.NoticeStyle{contact.StyleError, contact.StyleSuccess} {
		for _, f := range sess.Flashes(string(style)) {
			if text, ok := f.(string); ok {
				out = append(out, Flash{Text: text, Style: style})
			}
		}
	}
	if len(out) > 0 {
		_ = sess.Save(r, w)
	}
	return out
}
