package anim

import (
	"context"
	"time"
)

const (
	// CrossFadeInterval separates word swaps.
	CrossFadeInterval = 3 * time.Second
	// FadeDuration matches the CSS fade-out transition.
	FadeDuration = 500 * time.Millisecond
)

// DefaultHeadlineWords rotate through the hero headline.
var DefaultHeadlineWords = []string{"experiences", "applications"}

// FadePhase is the CSS class applied to the rotating label.
type FadePhase string

const (
	FadeIn  FadePhase = "fade-in"
	FadeOut FadePhase = "fade-out"
)

// Frame is one visible state of the rotating label.
type Frame struct {
	Word  string
	Phase FadePhase
}

// CrossFade swaps a label between words with a fade-out/fade-in pair.
type CrossFade struct {
	words []string
	index int
}

// NewCrossFade starts on the first word.
func NewCrossFade(words ...string) *CrossFade {
	if len(words) == 0 {
		words = DefaultHeadlineWords
	}
	return &CrossFade{words: words}
}

// Initial is the frame rendered with the page.
func (c *CrossFade) Initial() Frame {
	return Frame{Word: c.words[c.index], Phase: FadeIn}
}

// Run emits the fade-out frame every CrossFadeInterval and, FadeDuration
// later, the next word fading in. The swap never precedes the fade-out.
func (c *CrossFade) Run(ctx context.Context, clock Clock, emit func(Frame) error) error {
	for {
		if err := Sleep(ctx, clock, CrossFadeInterval); err != nil {
			return err
		}
		if err := emit(Frame{Word: c.words[c.index], Phase: FadeOut}); err != nil {
			return err
		}
		if err := Sleep(ctx, clock, FadeDuration); err != nil {
			return err
		}
		c.index = (c.index + 1) % len(c.words)
		if err := emit(Frame{Word: c.words[c.index], Phase: FadeIn}); err != nil {
			return err
		}
	}
}
