package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// RSI is the relative strength index over close-to-close deltas, using
// Wilder's smoothing for the average gain and loss. Requires period+1 bars.
type RSI struct {
	gains     *wilderAccumulator
	losses    *wilderAccumulator
	prevClose float64
	hasPrev   bool
}

// NewRSI creates an RSI stream over the given window.
func NewRSI(period int) *RSI {
	return &RSI{
		gains:     newWilderAccumulator(period),
		losses:    newWilderAccumulator(period),
		prevClose: 0,
		hasPrev:   false,
	}
}

// Update implements Stream.
func (r *RSI) Update(bar types.PriceBar) {
	if r.hasPrev {
		change := bar.Close - r.prevClose

		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		r.gains.Add(gain)
		r.losses.Add(loss)
	}

	r.prevClose = bar.Close
	r.hasPrev = true
}

// Value implements Stream. When the average loss is exactly zero the RSI is
// 100, not undefined.
func (r *RSI) Value() optional.Option[float64] {
	if !r.gains.Ready() {
		return optional.None[float64]()
	}

	avgLoss := r.losses.Value()
	if avgLoss == 0 {
		return optional.Some(100.0)
	}

	rs := r.gains.Value() / avgLoss

	return optional.Some(100 - (100 / (1 + rs)))
}
