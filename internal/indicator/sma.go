package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// SMA is the simple moving average of the close price.
type SMA struct {
	sum *rollingSum
}

// NewSMA creates an SMA stream over the given window.
func NewSMA(period int) *SMA {
	return &SMA{
		sum: newRollingSum(period),
	}
}

// Update implements Stream.
func (s *SMA) Update(bar types.PriceBar) {
	s.sum.Add(bar.Close)
}

// Value implements Stream.
func (s *SMA) Value() optional.Option[float64] {
	if !s.sum.Full() {
		return optional.None[float64]()
	}

	return optional.Some(s.sum.Mean())
}
