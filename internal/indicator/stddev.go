package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// StdDev is the sample standard deviation of the close price.
type StdDev struct {
	stats *rollingStats
}

// NewStdDev creates a standard deviation stream over the given window.
func NewStdDev(period int) *StdDev {
	return &StdDev{
		stats: newRollingStats(period),
	}
}

// Update implements Stream.
func (s *StdDev) Update(bar types.PriceBar) {
	s.stats.Add(bar.Close)
}

// Value implements Stream.
func (s *StdDev) Value() optional.Option[float64] {
	if !s.stats.Full() {
		return optional.None[float64]()
	}

	return optional.Some(s.stats.SampleStdDev())
}
