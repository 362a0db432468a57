package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// MACD is the moving average convergence/divergence: EMA(fast) - EMA(slow),
// with a signal line that is an EMA of the MACD line. The MACD line is
// reported once the slow EMA has seen a full span of bars; the signal line
// and histogram are withheld until the signal EMA has stabilized on top of
// that, so early unstable values never surface.
type MACD struct {
	fast       *emaAccumulator
	slow       *emaAccumulator
	signal     *emaAccumulator
	slowSpan   int
	signalSpan int
	count      int
}

// NewMACD creates a MACD stream with the given fast/slow/signal spans.
func NewMACD(fast, slow, signal int) *MACD {
	return &MACD{
		fast:       newEMAAccumulator(fast),
		slow:       newEMAAccumulator(slow),
		signal:     newEMAAccumulator(signal),
		slowSpan:   slow,
		signalSpan: signal,
		count:      0,
	}
}

// Update implements Stream.
func (m *MACD) Update(bar types.PriceBar) {
	m.count++
	m.fast.Add(bar.Close)
	m.slow.Add(bar.Close)
	m.signal.Add(m.fast.Value() - m.slow.Value())
}

// Value implements Stream, reporting the MACD line.
func (m *MACD) Value() optional.Option[float64] {
	return m.Snapshot().MACD
}

// Snapshot returns the MACD line, signal line and histogram. The MACD line
// first surfaces after slow bars (26 for 12/26/9); the signal line and
// histogram after slow+signal-1 bars (34), since the first defined MACD
// value seeds the signal EMA.
func (m *MACD) Snapshot() types.MACDValue {
	value := types.MACDValue{
		MACD:      optional.None[float64](),
		Signal:    optional.None[float64](),
		Histogram: optional.None[float64](),
	}

	if m.count < m.slowSpan {
		return value
	}

	macd := m.fast.Value() - m.slow.Value()
	value.MACD = optional.Some(macd)

	if m.count < m.slowSpan+m.signalSpan-1 {
		return value
	}

	signal := m.signal.Value()
	value.Signal = optional.Some(signal)
	value.Histogram = optional.Some(macd - signal)

	return value
}
