package types

import (
	"github.com/moznion/go-optional"
)

type IndicatorType string

const (
	IndicatorTypeSMA20         IndicatorType = "sma_20"
	IndicatorTypeSMA50         IndicatorType = "sma_50"
	IndicatorTypeSMA200        IndicatorType = "sma_200"
	IndicatorTypeEMA12         IndicatorType = "ema_12"
	IndicatorTypeEMA26         IndicatorType = "ema_26"
	IndicatorTypeMACD          IndicatorType = "macd"
	IndicatorTypeMACDSignal    IndicatorType = "macd_signal"
	IndicatorTypeMACDHistogram IndicatorType = "macd_histogram"
	IndicatorTypeADX           IndicatorType = "adx"
	IndicatorTypeRSI14         IndicatorType = "rsi_14"
	IndicatorTypeStochK        IndicatorType = "stoch_k"
	IndicatorTypeStochD        IndicatorType = "stoch_d"
	IndicatorTypeCCI           IndicatorType = "cci"
	IndicatorTypeROC           IndicatorType = "roc"
	IndicatorTypeBBUpper       IndicatorType = "bb_upper"
	IndicatorTypeBBMiddle      IndicatorType = "bb_middle"
	IndicatorTypeBBLower       IndicatorType = "bb_lower"
	IndicatorTypeBBBandwidth   IndicatorType = "bb_bandwidth"
	IndicatorTypeATR           IndicatorType = "atr"
	IndicatorTypeStdDev        IndicatorType = "stdev"
	IndicatorTypeOBV           IndicatorType = "obv"
	IndicatorTypeVWAP          IndicatorType = "vwap"
)

// MACDValue holds the MACD line, signal line and histogram. The signal and
// histogram stay absent until the signal line has stabilized.
type MACDValue struct {
	MACD      optional.Option[float64]
	Signal    optional.Option[float64]
	Histogram optional.Option[float64]
}

// BollingerBands holds the three bands plus the bandwidth percentage.
type BollingerBands struct {
	Upper     optional.Option[float64]
	Middle    optional.Option[float64]
	Lower     optional.Option[float64]
	Bandwidth optional.Option[float64]
}

// StochasticValue holds the %K and %D lines of the stochastic oscillator.
type StochasticValue struct {
	K optional.Option[float64]
	D optional.Option[float64]
}

// IndicatorSnapshot is the full set of indicator values evaluated at one bar.
// A field is None when the bar's history is shorter than the indicator's
// warm-up window.
type IndicatorSnapshot struct {
	// Trend
	SMA20  optional.Option[float64]
	SMA50  optional.Option[float64]
	SMA200 optional.Option[float64]
	EMA12  optional.Option[float64]
	EMA26  optional.Option[float64]
	MACD   MACDValue
	ADX    optional.Option[float64]

	// Momentum
	RSI14      optional.Option[float64]
	Stochastic StochasticValue
	CCI        optional.Option[float64]
	ROC        optional.Option[float64]

	// Volatility
	Bollinger BollingerBands
	ATR       optional.Option[float64]
	StdDev    optional.Option[float64]

	// Volume
	OBV  optional.Option[float64]
	VWAP optional.Option[float64]

	// VolumeRatio is the evaluation bar's volume divided by its 20-bar
	// rolling mean volume. Derived data, carried here so the signal
	// generator stays stateless over one snapshot.
	VolumeRatio optional.Option[float64]
}

// Value returns the named indicator from the snapshot, so callers can
// iterate the closed enumeration without reflection.
func (s IndicatorSnapshot) Value(name IndicatorType) optional.Option[float64] {
	switch name {
	case IndicatorTypeSMA20:
		return s.SMA20
	case IndicatorTypeSMA50:
		return s.SMA50
	case IndicatorTypeSMA200:
		return s.SMA200
	case IndicatorTypeEMA12:
		return s.EMA12
	case IndicatorTypeEMA26:
		return s.EMA26
	case IndicatorTypeMACD:
		return s.MACD.MACD
	case IndicatorTypeMACDSignal:
		return s.MACD.Signal
	case IndicatorTypeMACDHistogram:
		return s.MACD.Histogram
	case IndicatorTypeADX:
		return s.ADX
	case IndicatorTypeRSI14:
		return s.RSI14
	case IndicatorTypeStochK:
		return s.Stochastic.K
	case IndicatorTypeStochD:
		return s.Stochastic.D
	case IndicatorTypeCCI:
		return s.CCI
	case IndicatorTypeROC:
		return s.ROC
	case IndicatorTypeBBUpper:
		return s.Bollinger.Upper
	case IndicatorTypeBBMiddle:
		return s.Bollinger.Middle
	case IndicatorTypeBBLower:
		return s.Bollinger.Lower
	case IndicatorTypeBBBandwidth:
		return s.Bollinger.Bandwidth
	case IndicatorTypeATR:
		return s.ATR
	case IndicatorTypeStdDev:
		return s.StdDev
	case IndicatorTypeOBV:
		return s.OBV
	case IndicatorTypeVWAP:
		return s.VWAP
	default:
		return optional.None[float64]()
	}
}

// PriceChange is the absolute and percentage change of the close price over
// a lookback window.
type PriceChange struct {
	Change    optional.Option[float64]
	ChangePct optional.Option[float64]
}
