package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// OBV is on-balance volume: a cumulative sum of signed volume, seeded with
// the first bar's volume. Volume is added when the close rose, subtracted
// when it fell, and left unchanged on a flat close.
type OBV struct {
	value     float64
	prevClose float64
	count     int
}

// NewOBV creates an OBV stream.
func NewOBV() *OBV {
	return &OBV{
		value:     0,
		prevClose: 0,
		count:     0,
	}
}

// Update implements Stream.
func (o *OBV) Update(bar types.PriceBar) {
	volume := float64(bar.Volume)

	switch {
	case o.count == 0:
		o.value = volume
	case bar.Close > o.prevClose:
		o.value += volume
	case bar.Close < o.prevClose:
		o.value -= volume
	}

	o.prevClose = bar.Close
	o.count++
}

// Value implements Stream. Two bars are required before the signed sum is
// meaningful.
func (o *OBV) Value() optional.Option[float64] {
	if o.count < 2 {
		return optional.None[float64]()
	}

	return optional.Some(o.value)
}
