// Package overlay coordinates the page's modal overlays. Only one primary
// overlay is open at a time and page scroll is locked while it is.
package overlay

import "fmt"

// Kind names an overlay.
type Kind string

const (
	None      Kind = ""
	Contact   Kind = "contact"
	Email     Kind = "email"
	Project   Kind = "project"
	Tag       Kind = "tag"
	Skill     Kind = "skill"
	Highlight Kind = "highlight"
)

// Kinds lists every overlay.
var Kinds = []Kind{Contact, Email, Project, Tag, Skill, Highlight}

// ParseKind validates an overlay name from a URL.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown overlay %q", s)
}

// ElementID is the DOM id of the overlay's container.
func (k Kind) ElementID() string {
	return string(k) + "-overlay"
}

// Coordinator tracks the active overlay.
type Coordinator struct {
	active Kind
}

// Restore builds a coordinator from persisted state. Unknown values
// restore to no overlay.
func Restore(s string) *Coordinator {
	k, err := ParseKind(s)
	if err != nil {
		k = None
	}
	return &Coordinator{active: k}
}

// Active returns the open overlay, or None.
func (c *Coordinator) Active() Kind { return c.active }

// Open activates k and returns the overlay it displaced, if any.
func (c *Coordinator) Open(k Kind) (closed Kind) {
	if c.active == k {
		return None
	}
	closed = c.active
	c.active = k
	return closed
}

// Close deactivates k if it is the open overlay.
func (c *Coordinator) Close(k Kind) bool {
	if c.active != k || k == None {
		return false
	}
	c.active = None
	return true
}

// Dismiss closes whichever overlay is open.
func (c *Coordinator) Dismiss() Kind {
	k := c.active
	c.active = None
	return k
}

// ScrollLocked reports whether page scroll is disabled.
func (c *Coordinator) ScrollLocked() bool { return c.active != None }

// String is the persisted form.
func (c *Coordinator) String() string { return string(c.active) }

// InfoToggle is the highlight info icon. It is independent of overlays.
type InfoToggle struct {
	Active bool
}

// Toggle flips the icon and returns the new state.
func (t *InfoToggle) Toggle() bool {
	t.Active = !t.Active
	return t.Active
}

// Dismiss clears the icon, as any outside click does.
func (t *InfoToggle) Dismiss() { t.Active = false }
