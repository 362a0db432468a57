package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// Stream is a stateful indicator advanced one bar at a time. Update must be
// called exactly once per bar in series order; Value reports the indicator
// at the most recently observed bar, or None while the warm-up window has
// not elapsed.
//
// Composite indicators (MACD, Bollinger Bands, Stochastic) additionally
// expose a Snapshot method returning their multi-line value.
type Stream interface {
	Update(bar types.PriceBar)
	Value() optional.Option[float64]
}

// trueRange is max(high-low, |high-prevClose|, |low-prevClose|).
func trueRange(bar, prev types.PriceBar) float64 {
	tr := bar.High - bar.Low

	if hc := abs(bar.High - prev.Close); hc > tr {
		tr = hc
	}

	if lc := abs(bar.Low - prev.Close); lc > tr {
		tr = lc
	}

	return tr
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
