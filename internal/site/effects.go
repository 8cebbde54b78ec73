package site

import (
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/folio-dev/folio/internal/anim"
)

type rippleView struct {
	ID    string
	Style string
}

// handleRipple inserts a ripple into the clicked button and removes it
// after its lifetime. CTA buttons also bounce their icon.
func (s *Site) handleRipple(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	hint := sig.Ripple
	if hint.Target == "" {
		http.Error(w, "missing ripple target", http.StatusBadRequest)
		return
	}
	spec := anim.Ripple(hint.Click, hint.Rect, hint.CTA)
	layer := hint.Target + "-ripple"

	sse := datastar.NewSSE(w, r)
	if err := s.patch(sse, "ripple", rippleView{ID: layer, Style: spec.Style()}); err != nil {
		s.streamError(sse, err)
		return
	}
	if spec.Bounce > 0 {
		_ = sse.MarshalAndPatchSignals(map[string]string{"bounce": hint.Target})
	}

	ctx := r.Context()
	if err := anim.Sleep(ctx, s.clock, spec.Lifetime); err != nil {
		return
	}
	if err := s.patch(sse, "ripple", rippleView{ID: layer}); err != nil {
		return
	}
	if spec.Bounce > spec.Lifetime {
		if err := anim.Sleep(ctx, s.clock, spec.Bounce-spec.Lifetime); err != nil {
			return
		}
	}
	if spec.Bounce > 0 {
		_ = sse.MarshalAndPatchSignals(map[string]string{"bounce": ""})
	}
}

// handleReveal runs one scroll pass and streams each newly revealed card
// at its staggered delay.
func (s *Site) handleReveal(w http.ResponseWriter, r *http.Request) {
	sig, err := readSignals(r)
	if err != nil {
		badSignals(w, err)
		return
	}
	rv := anim.NewReveal()
	rv.MarkVisible(sig.Revealed...)
	pass := rv.Pass(sig.CardTops, sig.ViewportHeight)

	sse := datastar.NewSSE(w, r)
	revealed := append([]int{}, sig.Revealed...)
	var elapsed time.Duration
	for _, card := range pass {
		if wait := card.Delay - elapsed; wait > 0 {
			if err := anim.Sleep(r.Context(), s.clock, wait); err != nil {
				return
			}
			elapsed = card.Delay
		}
		revealed = append(revealed, card.Index)
		if err := sse.MarshalAndPatchSignals(map[string][]int{"revealed": revealed}); err != nil {
			return
		}
	}
}

// handleModel rotates the hero model until the client goes away.
func (s *Site) handleModel(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	c, ok := anim.NewCarousel(HeroModels)
	if !ok {
		return
	}
	err := c.Run(r.Context(), s.clock, func(src string) error {
		return sse.MarshalAndPatchSignals(map[string]string{"modelSrc": src})
	})
	s.logger.Debug("model carousel stopped", "error", err)
}

// handleHeadline streams the rotating headline word.
func (s *Site) handleHeadline(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	err := anim.NewCrossFade().Run(r.Context(), s.clock, func(f anim.Frame) error {
		return sse.MarshalAndPatchSignals(map[string]string{"headlineWord": f.Word, "headlinePhase": string(f.Phase)})
	})
	s.logger.Debug("headline stopped", "error", err)
}

// handleProfileEnter plays the profile clip over this stream. A new hover
// from the same visitor stops the previous one.
func (s *Site) handleProfileEnter(w http.ResponseWriter, r *http.Request) {
	id, err := s.ensureVisitor(w, r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	sse := datastar.NewSSE(w, r)
	player := newStreamPlayer(sse)
	sched := anim.NewScheduler(s.clock)
	entry := &hoverEntry{hover: anim.NewVideoHover(sched, player, s.logger), sched: sched}

	if prev, ok := s.hovers.put(id, entry); ok {
		prev.hover.Leave()
	}
	defer s.hovers.remove(id, entry)

	entry.hover.Enter()
	select {
	case <-player.done:
	case <-r.Context().Done():
	}
	sched.CancelAll()
	player.close()
}

func (s *Site) handleProfileLeave(w http.ResponseWriter, r *http.Request) {
	if id, ok := s.knownVisitor(r); ok {
		if entry, ok := s.hovers.get(id); ok {
			entry.hover.Leave()
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
