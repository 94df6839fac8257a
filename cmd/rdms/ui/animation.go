package ui

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultFadeSteps is the number of steps a color fade takes.
const DefaultFadeSteps = 10

// rgb16 holds 16-bit channels, the precision fades interpolate in.
type rgb16 struct{ r, g, b int }

func parseColor(hex string) (rgb16, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return rgb16{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	// #ab expands to 0xabab, matching how an 8-bit channel widens to 16 bits.
	return rgb16{int(r) * 257, int(g) * 257, int(b) * 257}, nil
}

// ColorFade steps linearly from one color to another. Step 0 is the start
// color, step Max is the end color, and the fade is done once the step
// passes Max. A ColorFade is a value: Next returns the following state.
type ColorFade struct {
	start, end rgb16
	Step       int
	Max        int
}

// NewColorFade returns a fade between two #rgb or #rrggbb colors.
func NewColorFade(from, to string, steps int) (ColorFade, error) {
	if steps <= 0 {
		steps = DefaultFadeSteps
	}
	start, err := parseColor(from)
	if err != nil {
		return ColorFade{}, err
	}
	end, err := parseColor(to)
	if err != nil {
		return ColorFade{}, err
	}
	return ColorFade{start: start, end: end, Max: steps}, nil
}

func lerp(a, b, step, max int) int {
	return int(float64(a) + float64(b-a)*float64(step)/float64(max))
}

// Current renders the color for the current step as #rrggbb.
func (f ColorFade) Current() string {
	step := f.Step
	if step > f.Max {
		step = f.Max
	}
	r := lerp(f.start.r, f.end.r, step, f.Max)
	g := lerp(f.start.g, f.end.g, step, f.Max)
	b := lerp(f.start.b, f.end.b, step, f.Max)
	return fmt.Sprintf("#%02x%02x%02x", r/256, g/256, b/256)
}

// Next returns the fade advanced by one step.
func (f ColorFade) Next() ColorFade {
	f.Step++
	return f
}

// Done reports whether the fade has run past its last step.
func (f ColorFade) Done() bool {
	return f.Step > f.Max
}

// Ripple radii, in cells. The ring grows from RippleStart by RippleStep
// while it stays below RippleEnd.
const (
	RippleStart = 10
	RippleEnd   = 60
	RippleStep  = 2
)

// Ripple is an expanding ring centred on a pressed button.
type Ripple struct {
	CX, CY int
	Radius int
}

// NewRipple starts a ripple at the given centre.
func NewRipple(cx, cy int) Ripple {
	return Ripple{CX: cx, CY: cy, Radius: RippleStart}
}

// Next returns the ripple grown by one step.
func (r Ripple) Next() Ripple {
	r.Radius += RippleStep
	return r
}

// Done reports whether the ring has grown past its last radius.
func (r Ripple) Done() bool {
	return r.Radius >= RippleEnd
}

// Bounds returns the ring's bounding box as x0, y0, x1, y1.
func (r Ripple) Bounds() (int, int, int, int) {
	return r.CX - r.Radius, r.CY - r.Radius, r.CX + r.Radius, r.CY + r.Radius
}

// RippleFrames is the number of radii a ripple passes through.
func RippleFrames() int {
	return (RippleEnd - RippleStart + RippleStep - 1) / RippleStep
}

// Progress reports how far the ripple has grown, from 0 to 1.
func (r Ripple) Progress() float64 {
	p := float64(r.Radius-RippleStart) / float64(RippleEnd-RippleStep-RippleStart)
	if p > 1 {
		return 1
	}
	return p
}
