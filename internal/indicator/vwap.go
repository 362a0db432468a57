package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// VWAP is the volume-weighted average price, anchored to the calendar day.
// It is only meaningful on intraday bars; on daily data the stream reports
// None rather than a misleading value.
type VWAP struct {
	intraday  bool
	cumTPV    float64
	cumVolume float64
	anchorDay int
	hasAnchor bool
}

// NewVWAP creates a VWAP stream. intraday tells the stream whether the
// series has intraday granularity; when false every Value is None.
func NewVWAP(intraday bool) *VWAP {
	return &VWAP{
		intraday:  intraday,
		cumTPV:    0,
		cumVolume: 0,
		anchorDay: 0,
		hasAnchor: false,
	}
}

// Update implements Stream.
func (v *VWAP) Update(bar types.PriceBar) {
	if !v.intraday {
		return
	}

	day := bar.Date.YearDay() + bar.Date.Year()*1000
	if !v.hasAnchor || day != v.anchorDay {
		v.cumTPV = 0
		v.cumVolume = 0
		v.anchorDay = day
		v.hasAnchor = true
	}

	volume := float64(bar.Volume)
	v.cumTPV += bar.TypicalPrice() * volume
	v.cumVolume += volume
}

// Value implements Stream.
func (v *VWAP) Value() optional.Option[float64] {
	if !v.intraday || v.cumVolume == 0 {
		return optional.None[float64]()
	}

	return optional.Some(v.cumTPV / v.cumVolume)
}
