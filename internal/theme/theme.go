// Package theme implements the red/blue colour scheme switcher.
package theme

import (
	"sync"
	"time"

	"github.com/folio-dev/folio/internal/anim"
)

// Theme is a colour scheme.
type Theme string

const (
	Red  Theme = "red"
	Blue Theme = "blue"

	Default = Blue
)

const (
	// LinkID is the id of the stylesheet link element.
	LinkID = "theme-style"
	// MobileWidth is the widest viewport treated as mobile.
	MobileWidth = 768
	// ToggleGuard is the re-entrancy window after a toggle.
	ToggleGuard = 400 * time.Millisecond
)

// Parse returns the theme named s, or false.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Red, Blue:
		return Theme(s), true
	}
	return "", false
}

// Other is the theme a toggle switches to.
func (t Theme) Other() Theme {
	if t == Red {
		return Blue
	}
	return Red
}

// Stylesheet is the CSS file for t.
func Stylesheet(t Theme) string {
	if t == Blue {
		return "/static/css/main_blue_theme.css"
	}
	return "/static/css/main.css"
}

// Link is the stylesheet element replacing the previous one.
type Link struct {
	ID   string
	Href string
}

// Store persists the visitor's preference.
type Store interface {
	Load() (Theme, bool)
	Save(Theme) error
}

// Switcher holds the active theme for one viewport.
type Switcher struct {
	mu             sync.Mutex
	mobile         bool
	current        Theme
	animatingUntil time.Time
	store          Store
	clock          anim.Clock
}

// New builds a switcher for a viewport width. Mobile viewports are
// locked to Blue and never touch the store.
func New(width int, store Store, clock anim.Clock) *Switcher {
	if clock == nil {
		clock = anim.RealClock{}
	}
	s := &Switcher{mobile: width <= MobileWidth, current: Default, store: store, clock: clock}
	if !s.mobile && store != nil {
		if t, ok := store.Load(); ok {
			s.current = t
		}
	}
	return s
}

// Mobile reports whether the viewport is mobile-locked.
func (s *Switcher) Mobile() bool { return s.mobile }

// Current is the active theme.
func (s *Switcher) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Guard restores a toggle window carried over from an earlier request.
func (s *Switcher) Guard(until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animatingUntil = until
}

// AnimatingUntil is the end of the current toggle window.
func (s *Switcher) AnimatingUntil() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.animatingUntil
}

// Apply activates t and returns the stylesheet link to install.
func (s *Switcher) Apply(t Theme) (Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(t)
}

func (s *Switcher) apply(t Theme) (Link, error) {
	if s.mobile {
		t = Blue
	}
	s.current = t
	link := Link{ID: LinkID, Href: Stylesheet(t)}
	if !s.mobile && s.store != nil {
		if err := s.store.Save(t); err != nil {
			return link, err
		}
	}
	return link, nil
}

// Toggle flips the theme. It reports false, changing nothing, on mobile
// or while a previous toggle is still animating.
func (s *Switcher) Toggle() (Theme, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if s.mobile || now.Before(s.animatingUntil) {
		return s.current, false, nil
	}
	s.animatingUntil = now.Add(ToggleGuard)
	if _, err := s.apply(s.current.Other()); err != nil {
		return s.current, true, err
	}
	return s.current, true, nil
}

// MemoryStore keeps the preference in memory.
type MemoryStore struct {
	mu    sync.Mutex
	theme Theme
	Saves int
}

func (m *MemoryStore) Load() (Theme, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme, m.theme != ""
}

func (m *MemoryStore) Save(t Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = t
	m.Saves++
	return nil
}
