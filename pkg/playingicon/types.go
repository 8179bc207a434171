package playingicon

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Default widget configuration
const (
	DefaultColor      = "#FF0000"
	DefaultBarCount   = 4
	DefaultFrameDelay = 16 * time.Millisecond
	DefaultSpaceRatio = 0.4
)

// Options holds the widget configuration set at construction time.
type Options struct {
	Color      string        // Fill color, any value lipgloss.Color accepts
	BarCount   int           // Number of bars, at least 1
	FrameDelay time.Duration // Delay between two animation ticks
	SpaceRatio float64       // Gap width divided by bar width
}

// DefaultOptions returns the default widget configuration.
func DefaultOptions() Options {
	return Options{
		Color:      DefaultColor,
		BarCount:   DefaultBarCount,
		FrameDelay: DefaultFrameDelay,
		SpaceRatio: DefaultSpaceRatio,
	}
}

// Normalize clamps invalid values to safe defaults.
func (o Options) Normalize() Options {
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.BarCount < 1 {
		o.BarCount = DefaultBarCount
	}
	if o.FrameDelay <= 0 {
		o.FrameDelay = DefaultFrameDelay
	}
	if o.SpaceRatio < 0 || math.IsNaN(o.SpaceRatio) || math.IsInf(o.SpaceRatio, 0) {
		o.SpaceRatio = DefaultSpaceRatio
	}
	return o
}

// Validate reports every field Normalize would change.
// A non-nil error is informational: the widget always runs on the normalized options.
func (o Options) Validate() error {
	var errs []error
	if o.Color == "" {
		errs = append(errs, errors.New("color is empty"))
	}
	if o.BarCount < 1 {
		errs = append(errs, fmt.Errorf("bar count %d is not positive", o.BarCount))
	}
	if o.FrameDelay <= 0 {
		errs = append(errs, fmt.Errorf("frame delay %v is not positive", o.FrameDelay))
	}
	if o.SpaceRatio < 0 || math.IsNaN(o.SpaceRatio) || math.IsInf(o.SpaceRatio, 0) {
		errs = append(errs, fmt.Errorf("space ratio %v is invalid", o.SpaceRatio))
	}
	return errors.Join(errs...)
}

// Padding is the inset on each side of the widget's drawable area.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// Geometry is the size the host negotiated for the widget.
type Geometry struct {
	Width   float64
	Height  float64
	Padding Padding
}

// ContentWidth returns the width available for bars, never negative.
func (g Geometry) ContentWidth() float64 {
	return nonNegative(g.Width - g.Padding.Left - g.Padding.Right)
}

// ContentHeight returns the height available for bars, never negative.
func (g Geometry) ContentHeight() float64 {
	return nonNegative(g.Height - g.Padding.Top - g.Padding.Bottom)
}

// Rect is an axis-aligned rectangle in the widget's local coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Bar is one animated column.
type Bar struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
	Phase  float64
}

// Width returns the horizontal extent of the bar.
func (b Bar) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the bar.
func (b Bar) Height() float64 {
	return nonNegative(b.Bottom - b.Top)
}

// Rect returns the rectangle to paint for the bar.
func (b Bar) Rect() Rect {
	return Rect{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
