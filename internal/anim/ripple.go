package anim

import (
	"fmt"
	"math"
	"time"
)

const (
	// RippleLifetime is how long a ripple circle stays in the button.
	RippleLifetime = 600 * time.Millisecond
	// IconBounce is the length of the CTA icon bounce animation.
	IconBounce = 700 * time.Millisecond
)

// Point is a position in client coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a button's bounding box in client coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RippleSpec positions one ripple circle inside a button.
type RippleSpec struct {
	Size     float64
	Left     float64
	Top      float64
	Lifetime time.Duration
	// Bounce is zero for buttons without the CTA class.
	Bounce time.Duration
}

// Ripple centres a circle as large as the button's longer side on the
// click point.
func Ripple(click Point, rect Rect, cta bool) RippleSpec {
	size := math.Max(rect.Width, rect.Height)
	spec := RippleSpec{
		Size:     size,
		Left:     click.X - rect.Left - size/2,
		Top:      click.Y - rect.Top - size/2,
		Lifetime: RippleLifetime,
	}
	if cta {
		spec.Bounce = IconBounce
	}
	return spec
}

// Style renders the inline CSS for the ripple span.
func (r RippleSpec) Style() string {
	return fmt.Sprintf("width:%gpx;height:%gpx;left:%gpx;top:%gpx", r.Size, r.Size, r.Left, r.Top)
}
