package anim

import (
	"sync"
	"time"
)

const (
	// RevealThreshold is the fraction of the viewport height a card's top
	// edge must rise above before it is revealed.
	RevealThreshold = 0.92
	// RevealStagger separates cards revealed in the same pass.
	RevealStagger = 120 * time.Millisecond
)

// Revealed is a card scheduled to become visible after Delay.
type Revealed struct {
	Index int           `json:"index"`
	Delay time.Duration `json:"delay"`
}

// Reveal remembers which cards have already been revealed.
type Reveal struct {
	mu   sync.Mutex
	seen map[int]bool
}

// NewReveal returns a tracker with nothing revealed.
func NewReveal() *Reveal {
	return &Reveal{seen: make(map[int]bool)}
}

// Pass checks every card top against the viewport and returns the newly
// revealed cards with staggered delays. Cards revealed earlier are skipped.
func (r *Reveal) Pass(tops []float64, viewportHeight float64) []Revealed {
	r.mu.Lock()
	defer r.mu.Unlock()

	trigger := viewportHeight * RevealThreshold
	var out []Revealed
	var delay time.Duration
	for i, top := range tops {
		if top < trigger && !r.seen[i] {
			r.seen[i] = true
			out = append(out, Revealed{Index: i, Delay: delay})
			delay += RevealStagger
		}
	}
	return out
}

// Visible reports whether card i has been revealed.
func (r *Reveal) Visible(i int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seen[i]
}

// MarkVisible records cards revealed in an earlier request.
func (r *Reveal) MarkVisible(indexes ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range indexes {
		r.seen[i] = true
	}
}
