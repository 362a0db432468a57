package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// ROC is the rate of change: the percent change of the close versus the
// close `period` bars earlier. A zero reference close resolves to 0.
type ROC struct {
	lag  *delayLine
	last float64
}

// NewROC creates a ROC stream over the given lookback.
func NewROC(period int) *ROC {
	return &ROC{
		lag:  newDelayLine(period),
		last: 0,
	}
}

// Update implements Stream.
func (r *ROC) Update(bar types.PriceBar) {
	r.last = bar.Close
	r.lag.Add(bar.Close)
}

// Value implements Stream.
func (r *ROC) Value() optional.Option[float64] {
	if !r.lag.Ready() {
		return optional.None[float64]()
	}

	previous := r.lag.Lagged()
	if previous == 0 {
		return optional.Some(0.0)
	}

	return optional.Some((r.last - previous) / previous * 100)
}
