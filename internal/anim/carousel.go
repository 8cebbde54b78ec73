package anim

import (
	"context"
	"strings"
	"time"
)

// CarouselInterval is how long each model source stays active.
const CarouselInterval = 3 * time.Second

// ParseSources splits a pipe-delimited source list, dropping blanks.
func ParseSources(attr string) []string {
	var out []string
	for _, src := range strings.Split(attr, "|") {
		if src = strings.TrimSpace(src); src != "" {
			out = append(out, src)
		}
	}
	return out
}

// Carousel rotates a model viewer through its sources.
type Carousel struct {
	sources []string
	index   int
}

// NewCarousel builds a carousel from a data-models attribute. It returns
// false when there is nothing to rotate.
func NewCarousel(attr string) (*Carousel, bool) {
	sources := ParseSources(attr)
	if len(sources) <= 1 {
		return nil, false
	}
	return &Carousel{sources: sources}, true
}

// Current is the active source.
func (c *Carousel) Current() string { return c.sources[c.index] }

// Preloads are the sources to fetch ahead of time: all but the first.
func (c *Carousel) Preloads() []string { return c.sources[1:] }

// Next advances to the following source, wrapping at the end.
func (c *Carousel) Next() string {
	c.index = (c.index + 1) % len(c.sources)
	return c.sources[c.index]
}

// Run emits a new source every CarouselInterval until ctx ends or emit fails.
func (c *Carousel) Run(ctx context.Context, clock Clock, emit func(src string) error) error {
	for {
		if err := Sleep(ctx, clock, CarouselInterval); err != nil {
			return err
		}
		if err := emit(c.Next()); err != nil {
			return err
		}
	}
}
