package site

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/folio-dev/folio/internal/analysis"
	"github.com/folio-dev/folio/internal/anim"
	"github.com/folio-dev/folio/internal/catalog"
	"github.com/folio-dev/folio/internal/contact"
	"github.com/folio-dev/folio/internal/gallery"
	"github.com/folio-dev/folio/internal/overlay"
	"github.com/folio-dev/folio/internal/theme"
)

// desktopWidth stands in for a viewport the client did not report.
const desktopWidth = 1280

var circleLabels = [3]string{"Practical", "Theoretical", "Problem Solving"}

type circleItem struct {
	Label string
	Style string
	Value int
}

func circleItems(c analysis.Circles, values [3]int) [3]circleItem {
	arcs := [3]analysis.Arc{c.Practical, c.Theoretical, c.ProblemSolving}
	var out [3]circleItem
	for i, arc := range arcs {
		out[i] = circleItem{Label: circleLabels[i], Style: arc.Style(), Value: values[i]}
	}
	return out
}

var emptyCircles = analysis.Circles{
	Practical:      analysis.EmptyArc,
	Theoretical:    analysis.EmptyArc,
	ProblemSolving: analysis.EmptyArc,
}

type tagView struct {
	Name string
	Info catalog.TagInfo
}

type skillView struct {
	Name    string
	Info    catalog.SkillInfo
	Tier    analysis.Tier
	Circles [3]circleItem
}

func (s *Site) patch(sse *datastar.ServerSentEventGenerator, name string, data any) error {
	html, err := s.fragment(name, data)
	if err != nil {
		return err
	}
	return sse.PatchElements(html)
}

func (s *Site) streamError(sse *datastar.ServerSentEventGenerator, err error) {
	s.logger.Warn("sse stream failed", "error", err)
	_ = sse.ConsoleError(err)
}

func badSignals(w http.ResponseWriter, err error) {
	http.Error(w, "invalid signals: "+err.Error(), http.StatusBadRequest)
}

// pathParam returns an unescaped URL parameter.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// --- gallery ---

func (s *Site) handleGalleryPage(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		n = 0
	}
	s.changePage(w, r, sig, n)
}

func (s *Site) handleGalleryStep(delta int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sig, err := readSignals(r)
		if err != nil {
			badSignals(w, err)
			return
		}
		s.changePage(w, r, sig, max(sig.Page, 1)+delta)
	}
}

// changePage re-renders the grid only when the target page exists.
func (s *Site) changePage(w http.ResponseWriter, r *http.Request, sig Signals, target int) {
	p := gallery.New(len(s.projects), gallery.PerPage)
	p.ChangePage(sig.Page)

	sse := datastar.NewSSE(w, r)
	if !p.ChangePage(target) {
		return
	}
	if err := s.patch(sse, "gallery", gallery.Render(s.projects, p)); err != nil {
		s.streamError(sse, err)
		return
	}
	_ = sse.MarshalAndPatchSignals(map[string]any{"page": p.Current(), "revealed": []int{}})
}

// --- overlays ---

// openOverlay activates k on the restored coordinator and patches the
// overlay signals.
func openOverlay(sse *datastar.ServerSentEventGenerator, sig Signals, k overlay.Kind) error {
	c := overlay.Restore(sig.Overlay)
	c.Open(k)
	return sse.MarshalAndPatchSignals(overlayPatch(c))
}

func (s *Site) handleProjectModal(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	sse := datastar.NewSSE(w, r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return
	}
	proj, err := catalog.ProjectAt(index)
	if err != nil {
		return
	}
	if err := s.patch(sse, "project-modal", proj); err != nil {
		s.streamError(sse, err)
		return
	}
	_ = openOverlay(sse, sig, overlay.Project)
}

func (s *Site) handleOverlayOpen(w http.ResponseWriter, r *http.Request) {
	k, err := overlay.ParseKind(chi.URLParam(r, "kind"))
	if err != nil || (k != overlay.Contact && k != overlay.Email) {
		// Content overlays open through their own endpoints.
		s.NotFound(w, r)
		return
	}
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	sse := datastar.NewSSE(w, r)
	if k == overlay.Email {
		if err := s.patch(sse, "email-controls", contact.State{Label: contact.LabelIdle}); err != nil {
			s.streamError(sse, err)
			return
		}
	}
	_ = openOverlay(sse, sig, k)
}

func (s *Site) handleOverlayClose(w http.ResponseWriter, r *http.Request) {
	k, err := overlay.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.NotFound(w, r)
		return
	}
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	c := overlay.Restore(sig.Overlay)
	if !c.Close(k) {
		datastar.NewSSE(w, r)
		return
	}
	s.closed(w, r, c, k)
}

func (s *Site) handleOverlayDismiss(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	c := overlay.Restore(sig.Overlay)
	k := c.Dismiss()
	if k == overlay.None {
		datastar.NewSSE(w, r)
		return
	}
	s.closed(w, r, c, k)
}

// closed patches the overlay signals after k was closed and runs the
// overlay's own teardown.
func (s *Site) closed(w http.ResponseWriter, r *http.Request, c *overlay.Coordinator, k overlay.Kind) {
	if k == overlay.Email {
		if id, ok := s.knownVisitor(r); ok {
			if e, ok := s.dialogs.get(id); ok {
				e.dialog.Close()
			}
		}
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(overlayPatch(c)); err != nil {
		return
	}
	if k != overlay.Skill {
		return
	}
	if err := anim.Sleep(r.Context(), s.clock, analysis.ResetDelay); err != nil {
		return
	}
	if err := s.patch(sse, "skill-circles", circleItems(emptyCircles, [3]int{})); err != nil {
		s.streamError(sse, err)
	}
}

// --- tag tooltip ---

func (s *Site) handleTagTooltip(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	sse := datastar.NewSSE(w, r)

	name := pathParam(r, "name")
	info, err := catalog.Tag(name)
	if errors.Is(err, catalog.ErrUnknownKey) {
		return
	}
	if err := s.patch(sse, "tag-tooltip", tagView{Name: name, Info: info}); err != nil {
		s.streamError(sse, err)
		return
	}
	_ = openOverlay(sse, sig, overlay.Tag)
}

// --- skill analysis ---

// handleSkill opens the popup with empty circles, then counts them up.
func (s *Site) handleSkill(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	sse := datastar.NewSSE(w, r)

	name := pathParam(r, "name")
	info, err := catalog.Skill(name)
	if errors.Is(err, catalog.ErrUnknownKey) {
		return
	}
	view := skillView{
		Name:    name,
		Info:    info,
		Tier:    analysis.LevelData(info.Level, info.SuccessPercentage),
		Circles: circleItems(emptyCircles, [3]int{}),
	}
	if err := s.patch(sse, "skill-modal", view); err != nil {
		s.streamError(sse, err)
		return
	}
	if err := openOverlay(sse, sig, overlay.Skill); err != nil {
		return
	}

	ctx := r.Context()
	if err := anim.Sleep(ctx, s.clock, analysis.CounterDelay); err != nil {
		return
	}
	circles := analysis.CirclesFor(info)
	for _, frame := range circles.Frames() {
		if err := anim.Sleep(ctx, s.clock, analysis.CounterStep); err != nil {
			return
		}
		if err := s.patch(sse, "skill-circles", circleItems(circles, frame)); err != nil {
			return
		}
	}
}

// --- highlights ---

func (s *Site) handleHighlight(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	sse := datastar.NewSSE(w, r)

	key := chi.URLParam(r, "key")
	info, err := catalog.Highlight(key)
	if errors.Is(err, catalog.ErrUnknownKey) {
		return
	}
	if err := s.patch(sse, "highlight-modal", highlightView{Key: key, Info: info, Overall: info.Overall()}); err != nil {
		s.streamError(sse, err)
		return
	}
	_ = openOverlay(sse, sig, overlay.Highlight)
}

func (s *Site) handleInfoToggle(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	t := overlay.InfoToggle{Active: sig.InfoActive}
	t.Toggle()
	sse := datastar.NewSSE(w, r)
	_ = sse.MarshalAndPatchSignals(map[string]bool{"infoActive": t.Active})
}

func (s *Site) handleInfoDismiss(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	t := overlay.InfoToggle{Active: sig.InfoActive}
	t.Dismiss()
	sse := datastar.NewSSE(w, r)
	_ = sse.MarshalAndPatchSignals(map[string]bool{"infoActive": t.Active})
}

// --- theme ---

func viewportWidth(sig Signals) int {
	if sig.ViewportWidth <= 0 {
		return desktopWidth
	}
	return sig.ViewportWidth
}

// handleThemeInit applies the stored preference once the client has
// reported its viewport, forcing blue on mobile.
func (s *Site) handleThemeInit(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	sess := s.session(r)
	sw := s.switcher(sess, viewportWidth(sig))
	link, err := sw.Apply(sw.Current())
	if err != nil {
		s.logger.Warn("persisting theme", "error", err)
	}
	if !sw.Mobile() {
		if err := sess.Save(r, w); err != nil {
			s.logger.Warn("saving session", "error", err)
		}
	}
	s.patchTheme(w, r, link, sw)
}

func (s *Site) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	sess := s.session(r)
	sw := s.switcher(sess, viewportWidth(sig))
	current, changed, err := sw.Toggle()
	if err != nil {
		s.logger.Warn("persisting theme", "error", err)
	}
	if !changed {
		datastar.NewSSE(w, r)
		return
	}
	storeGuard(sess, sw)
	if err := sess.Save(r, w); err != nil {
		s.logger.Warn("saving session", "error", err)
	}
	s.patchTheme(w, r, theme.Link{ID: theme.LinkID, Href: theme.Stylesheet(current)}, sw)
}

func (s *Site) patchTheme(w http.ResponseWriter, r *http.Request, link theme.Link, sw *theme.Switcher) {
	sse := datastar.NewSSE(w, r)
	if err := s.patch(sse, "theme-link", link); err != nil {
		s.streamError(sse, err)
		return
	}
	if err := s.patch(sse, "theme-toggle", newThemeView(sw.Current(), sw.Mobile())); err != nil {
		s.streamError(sse, err)
	}
}

// --- email dialog ---

// handleEmailSubmit runs one submit of the email dialog. On success the
// stream stays open until the dialog auto-closes or is closed by hand.
func (s *Site) handleEmailSubmit(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	id, err := s.ensureVisitor(w, r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	closed := make(chan struct{})
	var once sync.Once
	sched := anim.NewScheduler(s.clock)
	defer sched.CancelAll()
	dlg := contact.NewDialog(sched, func() { once.Do(func() { close(closed) }) })
	dlg.Open()
	dlg.SetForm(sig.form())

	entry := &emailEntry{dialog: dlg}
	entry.sending.Store(true)
	if !s.dialogs.putUnless(id, entry, (*emailEntry).busy) {
		datastar.NewSSE(w, r)
		return
	}
	defer s.dialogs.remove(id, entry)

	sse := datastar.NewSSE(w, r)
	if s.contact == nil {
		entry.sending.Store(false)
		s.streamError(sse, errors.New("contact submissions are not configured"))
		return
	}
	dlg.Submit(r.Context(), s.contact, func(st contact.State) {
		if err := s.patch(sse, "email-controls", st); err != nil {
			s.streamError(sse, err)
		}
	})
	entry.sending.Store(false)

	st := dlg.State()
	if st.Notice == nil || st.Notice.Style != contact.StyleSuccess {
		return
	}
	_ = sse.MarshalAndPatchSignals(map[string]string{"name": "", "email": "", "subject": "", "message": ""})

	select {
	case <-closed:
		c := overlay.Restore(sig.Overlay)
		c.Close(overlay.Email)
		_ = sse.MarshalAndPatchSignals(overlayPatch(c))
	case <-r.Context().Done():
	}
}
