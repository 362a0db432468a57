package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// Stochastic is the stochastic oscillator: %K places the close inside the
// high/low range of the lookback window, %D is an SMA of %K. When the range
// is zero, %K is pinned to 50.
type Stochastic struct {
	extrema   *rollingExtrema
	dSum      *rollingSum
	lastClose float64
}

// NewStochastic creates a stochastic stream with the given %K window and %D
// smoothing.
func NewStochastic(kPeriod, dPeriod int) *Stochastic {
	return &Stochastic{
		extrema:   newRollingExtrema(kPeriod),
		dSum:      newRollingSum(dPeriod),
		lastClose: 0,
	}
}

// Update implements Stream.
func (s *Stochastic) Update(bar types.PriceBar) {
	s.extrema.Add(bar.High, bar.Low)
	s.lastClose = bar.Close

	if k, err := s.kValue().Take(); err == nil {
		s.dSum.Add(k)
	}
}

func (s *Stochastic) kValue() optional.Option[float64] {
	if !s.extrema.Full() {
		return optional.None[float64]()
	}

	highest := s.extrema.Max()
	lowest := s.extrema.Min()

	if highest == lowest {
		return optional.Some(50.0)
	}

	return optional.Some((s.lastClose - lowest) / (highest - lowest) * 100)
}

// Value implements Stream, reporting %K.
func (s *Stochastic) Value() optional.Option[float64] {
	return s.kValue()
}

// Snapshot returns the %K and %D lines.
func (s *Stochastic) Snapshot() types.StochasticValue {
	value := types.StochasticValue{
		K: s.kValue(),
		D: optional.None[float64](),
	}

	if s.dSum.Full() {
		value.D = optional.Some(s.dSum.Mean())
	}

	return value
}
