package playingicon

import (
	"math/rand"
)

// Canvas is the paint primitive the host provides.
type Canvas interface {
	FillRect(r Rect, color string)
}

// Host receives redraw requests from the widget.
type Host interface {
	Invalidate()
}

// HostFunc adapts a plain function to Host.
type HostFunc func()

// Invalidate calls f.
func (f HostFunc) Invalidate() {
	if f != nil {
		f()
	}
}

// Option customizes an Icon.
type Option func(*Icon)

// WithPhaseSource makes phase sampling read from src, for reproducible layouts.
func WithPhaseSource(src rand.Source) Option {
	return func(i *Icon) {
		i.sampler = NewPhaseSampler(src)
	}
}

// Icon is the playing indicator: a row of bars bouncing on a sine curve.
//
// An Icon is owned by a single thread, the one its Scheduler runs callbacks
// on. The host calls SetGeometry whenever it lays the widget out, Paint on
// every render pass, and Attach/Detach as the widget becomes visible or not.
type Icon struct {
	opts    Options
	geom    Geometry
	bars    []Bar
	laidOut bool
	sampler *PhaseSampler
	anim    *Animator
	host    Host
}

// New creates a detached Icon. A nil host is allowed.
func New(opts Options, host Host, sched Scheduler, options ...Option) *Icon {
	if host == nil {
		host = HostFunc(nil)
	}

	i := &Icon{
		opts: opts.Normalize(),
		host: host,
	}
	for _, o := range options {
		o(i)
	}
	if i.sampler == nil {
		i.sampler = NewPhaseSampler(nil)
	}

	i.bars = make([]Bar, i.opts.BarCount)
	i.anim = NewAnimator(sched, i.opts.FrameDelay, i.frame)
	return i
}

func (i *Icon) frame() {
	i.Tick()
	i.host.Invalidate()
}

// SetGeometry lays the bars out for a new size and requests a redraw.
func (i *Icon) SetGeometry(g Geometry) {
	i.geom = g
	i.layout()
	i.host.Invalidate()
}

// SetColor changes the fill color. Geometry is left alone.
func (i *Icon) SetColor(color string) {
	if color == "" {
		color = DefaultColor
	}
	i.opts.Color = color
	i.host.Invalidate()
}

// SetBarCount recreates the bars. They are laid out again if the icon
// already has a geometry.
func (i *Icon) SetBarCount(n int) {
	if n < 1 {
		n = DefaultBarCount
	}
	if n == len(i.bars) {
		return
	}
	i.opts.BarCount = n
	i.bars = make([]Bar, n)
	if i.laidOut {
		i.layout()
	}
	i.host.Invalidate()
}

func (i *Icon) layout() {
	i.bars = Layout(i.geom, i.opts.BarCount, i.opts.SpaceRatio, i.sampler)
	i.laidOut = true
}

// Tick advances every bar by one animation step.
func (i *Icon) Tick() {
	Advance(i.bars, i.geom)
}

// Paint fills one rectangle per visible bar.
func (i *Icon) Paint(c Canvas) {
	for _, b := range i.bars {
		r := b.Rect()
		if r.Empty() {
			continue
		}
		c.FillRect(r, i.opts.Color)
	}
}

// Attach starts the animation loop.
func (i *Icon) Attach() {
	i.anim.Start()
}

// Detach stops the animation loop. No tick runs after Detach returns.
func (i *Icon) Detach() {
	i.anim.Stop()
}

// Running reports whether the animation loop is active.
func (i *Icon) Running() bool {
	return i.anim.Running()
}

// Frames returns the number of animation ticks run so far.
func (i *Icon) Frames() uint64 {
	return i.anim.Frames()
}

// Bars returns a copy of the current bars.
func (i *Icon) Bars() []Bar {
	out := make([]Bar, len(i.bars))
	copy(out, i.bars)
	return out
}

// Options returns the normalized options in effect.
func (i *Icon) Options() Options {
	return i.opts
}

// Geometry returns the last geometry set by the host.
func (i *Icon) Geometry() Geometry {
	return i.geom
}
