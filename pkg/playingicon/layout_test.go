package playingicon

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

// constSource always yields the same value, so every draw lands on step 0.
type constSource struct{}

func (constSource) Int63() int64 { return 0 }
func (constSource) Seed(int64) {}

func TestDimensions_FillsWidth(t *testing.T) {
	for _, width := range []float64{1, 17, 100, 333.3, 1920} {
		for n := 1; n <= 12; n++ {
			for _, ratio := range []float64{0, 0.1, 0.4, 1, 2.5} {
				bar, space := Dimensions(width, n, ratio)

				total := float64(n)*bar + float64(n-1)*space
				assert.InDelta(t, width, total, 1e-6, "W=%v n=%d r=%v", width, n, ratio)
				assert.InDelta(t, ratio*bar, space, tolerance, "W=%v n=%d r=%v", width, n, ratio)
			}
		}
	}
}

func TestDimensions_Scenario(t *testing.T) {
	bar, space := Dimensions(100, 4, 0.4)

	assert.InDelta(t, 100/5.2, bar, tolerance)
	assert.InDelta(t, 19.23, bar, 0.01)
	assert.InDelta(t, 7.69, space, 0.01)
}

func TestDimensions_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		n     int
		ratio float64
	}{
		{"zero width", 0, 4, 0.4},
		{"negative width", -10, 4, 0.4},
		{"zero bars", 100, 0, 0.4},
		{"negative bars", 100, -3, 0.4},
		{"nan width", math.NaN(), 4, 0.4},
		{"infinite width", math.Inf(1), 4, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar, space := Dimensions(tt.width, tt.n, tt.ratio)
			assert.Zero(t, bar)
			assert.Zero(t, space)
		})
	}
}

func TestDimensions_NegativeRatioTreatedAsZero(t *testing.T) {
	bar, space := Dimensions(100, 4, -1)

	assert.InDelta(t, 25, bar, tolerance)
	assert.Zero(t, space)
}

func TestOffset_WithinAvailableHeight(t *testing.T) {
	for phase := -20.0; phase <= 20; phase += 0.05 {
		off := Offset(phase, 37)
		assert.GreaterOrEqual(t, off, 0.0)
		assert.LessOrEqual(t, off, 37.0)
	}
	assert.Zero(t, Offset(1, 0))
	assert.Zero(t, Offset(1, -5))
}

func TestPhaseSampler_AdjacentGap(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		s := NewPhaseSampler(rand.NewSource(seed))
		for n := 2; n <= 12; n++ {
			phases := s.Phases(n)
			require.Len(t, phases, n)
			for i := 1; i < n; i++ {
				gap := math.Abs(phases[i] - phases[i-1])
				assert.Greater(t, gap, MinPhaseGap, "seed=%d n=%d i=%d", seed, n, i)
				assert.Less(t, gap, MaxPhaseGap, "seed=%d n=%d i=%d", seed, n, i)
			}
		}
	}
}

func TestPhaseSampler_ValuesOnGrid(t *testing.T) {
	s := NewPhaseSampler(rand.NewSource(42))
	for _, p := range s.Phases(500) {
		step := math.Round(p * 10)
		assert.InDelta(t, step/10, p, tolerance)
		assert.GreaterOrEqual(t, step, 0.0)
		assert.LessOrEqual(t, step, 9.0)
	}
}

func TestPhaseSampler_FirstDrawUnconstrained(t *testing.T) {
	s := NewPhaseSampler(constSource{})

	phases := s.Phases(1)
	assert.Equal(t, []float64{0}, phases)
}

func TestPhaseSampler_RetryCapFallsBackToLastCandidate(t *testing.T) {
	s := NewPhaseSampler(constSource{})

	// Every candidate is 0.0, so the gap constraint can never hold.
	phases := s.Phases(3)
	assert.Equal(t, []float64{0, 0, 0}, phases)
}

func TestLayout_Scenario(t *testing.T) {
	g := Geometry{Width: 100, Height: 40}
	bars := Layout(g, 4, 0.4, NewPhaseSampler(rand.NewSource(1)))

	require.Len(t, bars, 4)
	wantLefts := []float64{0, 26.92, 53.85, 80.77}
	for i, b := range bars {
		assert.InDelta(t, wantLefts[i], b.Left, 0.01, "bar %d", i)
		assert.InDelta(t, 100/5.2, b.Width(), tolerance, "bar %d", i)
		assert.Equal(t, 40.0, b.Bottom)
		assert.InDelta(t, Offset(b.Phase, 40), b.Top, tolerance)
	}
	assert.InDelta(t, 100, bars[3].Right, 1e-6)
}

func TestLayout_SingleBarSpansContent(t *testing.T) {
	g := Geometry{Width: 50, Height: 20, Padding: Padding{Left: 3, Top: 2, Right: 7, Bottom: 4}}
	bars := Layout(g, 1, 0.4, NewPhaseSampler(rand.NewSource(7)))

	require.Len(t, bars, 1)
	assert.Equal(t, 3.0, bars[0].Left)
	assert.InDelta(t, 43, bars[0].Right, tolerance)
	assert.Equal(t, 16.0, bars[0].Bottom)
	assert.GreaterOrEqual(t, bars[0].Top, 2.0)
	assert.LessOrEqual(t, bars[0].Top, 16.0)
}

func TestLayout_GeometryIsDeterministic(t *testing.T) {
	g := Geometry{Width: 80, Height: 10, Padding: Padding{Left: 2, Right: 2}}

	first := Layout(g, 5, 0.4, NewPhaseSampler(rand.NewSource(1)))
	second := Layout(g, 5, 0.4, NewPhaseSampler(rand.NewSource(99)))

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Left, second[i].Left)
		assert.Equal(t, first[i].Right, second[i].Right)
		assert.Equal(t, first[i].Width(), second[i].Width())
		assert.Equal(t, first[i].Bottom, second[i].Bottom)
	}
}

func TestLayout_DegenerateGeometry(t *testing.T) {
	g := Geometry{Width: 4, Height: 3, Padding: Padding{Left: 3, Top: 2, Right: 3, Bottom: 2}}
	bars := Layout(g, 4, 0.4, NewPhaseSampler(rand.NewSource(1)))

	require.Len(t, bars, 4)
	for _, b := range bars {
		assert.Zero(t, b.Width())
		assert.Zero(t, b.Height())
		assert.False(t, math.IsNaN(b.Top))
		assert.True(t, b.Rect().Empty())
	}
}

func TestAdvance_AccumulatesPhase(t *testing.T) {
	g := Geometry{Width: 100, Height: 30, Padding: Padding{Top: 5}}
	bars := Layout(g, 4, 0.4, NewPhaseSampler(rand.NewSource(3)))
	initial := make([]float64, len(bars))
	for i, b := range bars {
		initial[i] = b.Phase
	}

	const ticks = 250
	for k := 0; k < ticks; k++ {
		Advance(bars, g)
	}

	for i, b := range bars {
		assert.InDelta(t, initial[i]+PhaseStep*ticks, b.Phase, 1e-9)
		assert.InDelta(t, 5+Offset(b.Phase, 25), b.Top, tolerance)
		assert.GreaterOrEqual(t, b.Top, 5.0)
		assert.LessOrEqual(t, b.Top, 30.0)
	}
}
