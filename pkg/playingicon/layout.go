package playingicon

import (
	"math"
	"math/rand"
	"time"
)

// Phase sampling constants
const (
	PhaseSteps      = 10   // Initial phases are drawn from {0.0, 0.1, ..., 0.9}
	PhaseStep       = 0.1  // Phase grid spacing, also the per-tick increment
	MinPhaseGap     = 0.25 // Adjacent initial phases differ by more than this
	MaxPhaseGap     = 0.75 // and by less than this
	MaxPhaseRetries = 1000
)

// Dimensions splits width into n bars separated by n-1 gaps, each gap
// being ratio times the bar width.
// Degenerate input yields zero-width bars.
func Dimensions(width float64, n int, ratio float64) (barWidth, spaceWidth float64) {
	if n <= 0 || !(width > 0) || math.IsInf(width, 0) {
		return 0, 0
	}
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}

	barWidth = width / ((ratio+1)*float64(n) - ratio)
	spaceWidth = barWidth * ratio
	if math.IsNaN(barWidth) || math.IsInf(barWidth, 0) || math.IsNaN(spaceWidth) || math.IsInf(spaceWidth, 0) {
		return 0, 0
	}
	return barWidth, spaceWidth
}

// Offset returns the distance of a bar's top edge below the content top
// for the given phase. The result is always within [0, availableHeight].
func Offset(phase, availableHeight float64) float64 {
	if !(availableHeight > 0) {
		return 0
	}
	return math.Abs(math.Sin(phase)) * availableHeight
}

// PhaseSampler draws initial bar phases so that neighbouring bars start out
// of step with each other.
type PhaseSampler struct {
	rng        *rand.Rand
	maxRetries int
	prevStep   int
}

// NewPhaseSampler creates a sampler reading from src.
// A nil src seeds from the current time.
func NewPhaseSampler(src rand.Source) *PhaseSampler {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &PhaseSampler{
		rng:        rand.New(src),
		maxRetries: MaxPhaseRetries,
		prevStep:   -1,
	}
}

// Reset forgets the previous phase so the next draw is accepted unconditionally.
func (s *PhaseSampler) Reset() {
	s.prevStep = -1
}

// Next returns the next phase. The first draw after Reset is accepted as is;
// later draws are redrawn until they are between MinPhaseGap and MaxPhaseGap
// away from the previous phase. After maxRetries redraws the last candidate wins.
func (s *PhaseSampler) Next() float64 {
	step := s.rng.Intn(PhaseSteps)
	if s.prevStep >= 0 {
		for i := 0; i < s.maxRetries && !stepGapOK(step, s.prevStep); i++ {
			step = s.rng.Intn(PhaseSteps)
		}
	}
	s.prevStep = step
	return float64(step) * PhaseStep
}

// Phases returns n phases drawn in left-to-right order.
func (s *PhaseSampler) Phases(n int) []float64 {
	s.Reset()
	phases := make([]float64, max(n, 0))
	for i := range phases {
		phases[i] = s.Next()
	}
	return phases
}

// stepGapOK compares on grid indices: a gap of k steps is k*PhaseStep in phase units.
func stepGapOK(step, prev int) bool {
	gap := float64(absInt(step-prev)) * PhaseStep
	return gap > MinPhaseGap && gap < MaxPhaseGap
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Layout positions n bars inside g and gives each a fresh phase.
// Bar geometry depends only on g, n and ratio; phases come from s.
func Layout(g Geometry, n int, ratio float64, s *PhaseSampler) []Bar {
	if n < 0 {
		n = 0
	}
	bars := make([]Bar, n)

	barWidth, spaceWidth := Dimensions(g.ContentWidth(), n, ratio)
	height := g.ContentHeight()
	// Same as Height - Padding.Bottom, except it never rises above the top padding.
	bottom := g.Padding.Top + height
	cursor := g.Padding.Left

	s.Reset()
	for i := range bars {
		phase := s.Next()
		bars[i] = Bar{
			Left:   cursor,
			Right:  cursor + barWidth,
			Top:    g.Padding.Top + Offset(phase, height),
			Bottom: bottom,
			Phase:  phase,
		}
		cursor += barWidth + spaceWidth
	}
	return bars
}

// Advance moves every bar one tick forward and recomputes its top edge.
func Advance(bars []Bar, g Geometry) {
	height := g.ContentHeight()
	for i := range bars {
		bars[i].Phase += PhaseStep
		bars[i].Top = g.Padding.Top + Offset(bars[i].Phase, height)
	}
}
