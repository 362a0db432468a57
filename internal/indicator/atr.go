package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// ATR is the average true range: a rolling mean of the true range, which
// needs the previous close and therefore period+1 bars.
type ATR struct {
	sum     *rollingSum
	prev    types.PriceBar
	hasPrev bool
}

// NewATR creates an ATR stream over the given window.
func NewATR(period int) *ATR {
	return &ATR{
		sum:     newRollingSum(period),
		prev:    types.PriceBar{},
		hasPrev: false,
	}
}

// Update implements Stream.
func (a *ATR) Update(bar types.PriceBar) {
	if a.hasPrev {
		a.sum.Add(trueRange(bar, a.prev))
	}

	a.prev = bar
	a.hasPrev = true
}

// Value implements Stream.
func (a *ATR) Value() optional.Option[float64] {
	if !a.sum.Full() {
		return optional.None[float64]()
	}

	return optional.Some(a.sum.Mean())
}
