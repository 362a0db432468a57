package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// BollingerBands computes middle = SMA(window) of the close, with upper and
// lower bands k sample standard deviations away, plus the bandwidth
// percentage (upper-lower)/middle.
type BollingerBands struct {
	k     float64
	stats *rollingStats
}

// NewBollingerBands creates a Bollinger Bands stream.
func NewBollingerBands(period int, k float64) *BollingerBands {
	return &BollingerBands{
		k:     k,
		stats: newRollingStats(period),
	}
}

// Update implements Stream.
func (b *BollingerBands) Update(bar types.PriceBar) {
	b.stats.Add(bar.Close)
}

// Value implements Stream, reporting the middle band.
func (b *BollingerBands) Value() optional.Option[float64] {
	return b.Snapshot().Middle
}

// Snapshot returns all three bands and the bandwidth.
func (b *BollingerBands) Snapshot() types.BollingerBands {
	bands := types.BollingerBands{
		Upper:     optional.None[float64](),
		Middle:    optional.None[float64](),
		Lower:     optional.None[float64](),
		Bandwidth: optional.None[float64](),
	}

	if !b.stats.Full() {
		return bands
	}

	middle := b.stats.Mean()
	offset := b.k * b.stats.SampleStdDev()
	upper := middle + offset
	lower := middle - offset

	bands.Upper = optional.Some(upper)
	bands.Middle = optional.Some(middle)
	bands.Lower = optional.Some(lower)
	bands.Bandwidth = optional.Some((upper - lower) / middle * 100)

	return bands
}
