package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/logger"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"go.uber.org/zap"
)

// Default parameters for the full indicator set.
const (
	DefaultSMAShortPeriod  = 20
	DefaultSMAMediumPeriod = 50
	DefaultSMALongPeriod   = 200
	DefaultEMAFastSpan     = 12
	DefaultEMASlowSpan     = 26
	DefaultMACDSignalSpan  = 9
	DefaultRSIPeriod       = 14
	DefaultStochasticK     = 14
	DefaultStochasticD     = 3
	DefaultCCIPeriod       = 20
	DefaultROCPeriod       = 12
	DefaultBollingerPeriod = 20
	DefaultBollingerK      = 2.0
	DefaultADXPeriod       = 14
	DefaultATRPeriod       = 14
	DefaultStdDevPeriod    = 20
	DefaultVolumePeriod    = 20
)

// Engine computes indicator snapshots from a price series. All computations
// are pure functions of the series up to and including the evaluation index;
// the engine holds no state across calls.
type Engine struct {
	logger *logger.Logger
}

// NewEngine creates an indicator engine. A nil logger disables logging.
func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Engine{
		logger: log,
	}
}

// ComputeAll returns the indicator snapshot for the last bar of the series.
func (e *Engine) ComputeAll(series *types.PriceSeries) types.IndicatorSnapshot {
	return e.ComputeAt(series, series.Len()-1)
}

// ComputeAt returns the indicator snapshot evaluated at bar index idx, using
// only bars 0..idx. An out-of-range index yields an all-None snapshot.
//
// All streams advance together over a single pass, so the full snapshot
// costs O(idx) regardless of how many indicators are enabled.
func (e *Engine) ComputeAt(series *types.PriceSeries, idx int) types.IndicatorSnapshot {
	snapshot := types.IndicatorSnapshot{}

	if series == nil || idx < 0 || idx >= series.Len() {
		return snapshot
	}

	sma20 := NewSMA(DefaultSMAShortPeriod)
	sma50 := NewSMA(DefaultSMAMediumPeriod)
	sma200 := NewSMA(DefaultSMALongPeriod)
	ema12 := NewEMA(DefaultEMAFastSpan)
	ema26 := NewEMA(DefaultEMASlowSpan)
	macd := NewMACD(DefaultEMAFastSpan, DefaultEMASlowSpan, DefaultMACDSignalSpan)
	adx := NewADX(DefaultADXPeriod)
	rsi := NewRSI(DefaultRSIPeriod)
	stochastic := NewStochastic(DefaultStochasticK, DefaultStochasticD)
	cci := NewCCI(DefaultCCIPeriod)
	roc := NewROC(DefaultROCPeriod)
	bollinger := NewBollingerBands(DefaultBollingerPeriod, DefaultBollingerK)
	atr := NewATR(DefaultATRPeriod)
	stdDev := NewStdDev(DefaultStdDevPeriod)
	obv := NewOBV()
	vwap := NewVWAP(series.IsIntraday())
	volumeSum := newRollingSum(DefaultVolumePeriod)

	streams := []Stream{sma20, sma50, sma200, ema12, ema26, macd, adx, rsi, stochastic, cci, roc, bollinger, atr, stdDev, obv, vwap}

	for i := 0; i <= idx; i++ {
		bar := series.At(i)
		for _, stream := range streams {
			stream.Update(bar)
		}

		volumeSum.Add(float64(bar.Volume))
	}

	snapshot.SMA20 = sma20.Value()
	snapshot.SMA50 = sma50.Value()
	snapshot.SMA200 = sma200.Value()
	snapshot.EMA12 = ema12.Value()
	snapshot.EMA26 = ema26.Value()
	snapshot.MACD = macd.Snapshot()
	snapshot.ADX = adx.Value()
	snapshot.RSI14 = rsi.Value()
	snapshot.Stochastic = stochastic.Snapshot()
	snapshot.CCI = cci.Value()
	snapshot.ROC = roc.Value()
	snapshot.Bollinger = bollinger.Snapshot()
	snapshot.ATR = atr.Value()
	snapshot.StdDev = stdDev.Value()
	snapshot.OBV = obv.Value()
	snapshot.VWAP = vwap.Value()
	snapshot.VolumeRatio = volumeRatio(volumeSum, series.At(idx))

	e.logger.Debug("computed indicator snapshot",
		zap.Int("bar_index", idx),
		zap.Time("bar_date", series.At(idx).Date),
	)

	return snapshot
}

func volumeRatio(volumeSum *rollingSum, bar types.PriceBar) optional.Option[float64] {
	if !volumeSum.Full() {
		return optional.None[float64]()
	}

	mean := volumeSum.Mean()
	if mean == 0 {
		return optional.None[float64]()
	}

	return optional.Some(float64(bar.Volume) / mean)
}

// PriceChange returns the close price change over the given number of bars,
// evaluated at the last bar. A zero reference close yields a zero percent
// change rather than a numeric fault.
func (e *Engine) PriceChange(series *types.PriceSeries, bars int) types.PriceChange {
	change := types.PriceChange{
		Change:    optional.None[float64](),
		ChangePct: optional.None[float64](),
	}

	if series == nil || bars < 1 || series.Len() < bars+1 {
		return change
	}

	current := series.Last().Close
	previous := series.At(series.Len() - 1 - bars).Close

	change.Change = optional.Some(current - previous)

	if previous == 0 {
		change.ChangePct = optional.Some(0.0)
	} else {
		change.ChangePct = optional.Some((current - previous) / previous * 100)
	}

	return change
}
