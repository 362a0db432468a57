package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// EMA is the exponential moving average of the close price, smoothing factor
// 2/(span+1), seeded by the first close. It is defined from the first bar
// and stabilizes over time.
type EMA struct {
	acc *emaAccumulator
}

// NewEMA creates an EMA stream over the given span.
func NewEMA(span int) *EMA {
	return &EMA{
		acc: newEMAAccumulator(span),
	}
}

// Update implements Stream.
func (e *EMA) Update(bar types.PriceBar) {
	e.acc.Add(bar.Close)
}

// Value implements Stream.
func (e *EMA) Value() optional.Option[float64] {
	if !e.acc.Seeded() {
		return optional.None[float64]()
	}

	return optional.Some(e.acc.Value())
}
