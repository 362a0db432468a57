package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// ADX is the average directional index: Wilder-smoothed true range and
// directional movement feed the +DI/-DI lines, and the ADX is a Wilder
// average of the resulting DX. Requires roughly 2x the window in bars.
type ADX struct {
	tr      *wilderAccumulator
	plusDM  *wilderAccumulator
	minusDM *wilderAccumulator
	dx      *wilderAccumulator
	prev    types.PriceBar
	hasPrev bool
}

// NewADX creates an ADX stream over the given window.
func NewADX(period int) *ADX {
	return &ADX{
		tr:      newWilderAccumulator(period),
		plusDM:  newWilderAccumulator(period),
		minusDM: newWilderAccumulator(period),
		dx:      newWilderAccumulator(period),
		prev:    types.PriceBar{},
		hasPrev: false,
	}
}

// Update implements Stream.
func (a *ADX) Update(bar types.PriceBar) {
	if a.hasPrev {
		upMove := bar.High - a.prev.High
		downMove := a.prev.Low - bar.Low

		plus, minus := 0.0, 0.0
		if upMove > downMove && upMove > 0 {
			plus = upMove
		}

		if downMove > upMove && downMove > 0 {
			minus = downMove
		}

		a.tr.Add(trueRange(bar, a.prev))
		a.plusDM.Add(plus)
		a.minusDM.Add(minus)

		if a.tr.Ready() {
			a.dx.Add(a.directionalIndex())
		}
	}

	a.prev = bar
	a.hasPrev = true
}

func (a *ADX) directionalIndex() float64 {
	atr := a.tr.Value()
	if atr == 0 {
		return 0
	}

	plusDI := 100 * a.plusDM.Value() / atr
	minusDI := 100 * a.minusDM.Value() / atr

	sum := plusDI + minusDI
	if sum == 0 {
		return 0
	}

	return 100 * abs(plusDI-minusDI) / sum
}

// Value implements Stream.
func (a *ADX) Value() optional.Option[float64] {
	if !a.dx.Ready() {
		return optional.None[float64]()
	}

	return optional.Some(a.dx.Value())
}
