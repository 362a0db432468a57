package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// CCI is the commodity channel index of the typical price:
// (tp - SMA(tp)) / (0.015 * mean absolute deviation). A zero deviation
// resolves to 0 rather than a numeric fault.
type CCI struct {
	sum    *rollingSum
	lastTP float64
}

// NewCCI creates a CCI stream over the given window.
func NewCCI(period int) *CCI {
	return &CCI{
		sum:    newRollingSum(period),
		lastTP: 0,
	}
}

// Update implements Stream.
func (c *CCI) Update(bar types.PriceBar) {
	c.lastTP = bar.TypicalPrice()
	c.sum.Add(c.lastTP)
}

// Value implements Stream.
func (c *CCI) Value() optional.Option[float64] {
	if !c.sum.Full() {
		return optional.None[float64]()
	}

	mean := c.sum.Mean()

	// Mean absolute deviation about a moving mean cannot be maintained as a
	// running aggregate; the scan is bounded by the fixed window size.
	mad := 0.0
	for _, tp := range c.sum.Window() {
		mad += abs(tp - mean)
	}

	mad /= float64(len(c.sum.Window()))
	if mad == 0 {
		return optional.Some(0.0)
	}

	return optional.Some((c.lastTP - mean) / (0.015 * mad))
}
