package types

// SignalCategory identifies one of the signal classifications produced from
// an indicator snapshot.
type SignalCategory string

const (
	SignalCategoryRSI        SignalCategory = "rsi"
	SignalCategoryMACD       SignalCategory = "macd"
	SignalCategoryBollinger  SignalCategory = "bollinger"
	SignalCategoryTrend      SignalCategory = "trend"
	SignalCategoryStochastic SignalCategory = "stochastic"
	SignalCategoryVolume     SignalCategory = "volume"
)

type RSISignal string

const (
	RSISignalOverbought RSISignal = "overbought"
	RSISignalOversold   RSISignal = "oversold"
	RSISignalNeutral    RSISignal = "neutral"
	RSISignalUnknown    RSISignal = "unknown"
)

type MACDSignal string

const (
	MACDSignalBullish MACDSignal = "bullish"
	MACDSignalBearish MACDSignal = "bearish"
	MACDSignalNeutral MACDSignal = "neutral"
	MACDSignalUnknown MACDSignal = "unknown"
)

type BollingerSignal string

const (
	BollingerSignalOverbought BollingerSignal = "overbought"
	BollingerSignalOversold   BollingerSignal = "oversold"
	BollingerSignalNormal     BollingerSignal = "normal"
	BollingerSignalUnknown    BollingerSignal = "unknown"
)

type TrendSignal string

const (
	TrendSignalStrongUptrend   TrendSignal = "strong_uptrend"
	TrendSignalUptrend         TrendSignal = "uptrend"
	TrendSignalSideways        TrendSignal = "sideways"
	TrendSignalDowntrend       TrendSignal = "downtrend"
	TrendSignalStrongDowntrend TrendSignal = "strong_downtrend"
)

type StochasticSignal string

const (
	StochasticSignalOverbought StochasticSignal = "overbought"
	StochasticSignalOversold   StochasticSignal = "oversold"
	StochasticSignalNeutral    StochasticSignal = "neutral"
	StochasticSignalUnknown    StochasticSignal = "unknown"
)

type VolumeSignal string

const (
	VolumeSignalHigh    VolumeSignal = "high"
	VolumeSignalLow     VolumeSignal = "low"
	VolumeSignalNormal  VolumeSignal = "normal"
	VolumeSignalUnknown VolumeSignal = "unknown"
)

// Recommendation is the overall label derived from the weighted signal vote.
type Recommendation string

const (
	RecommendationStrongBuy  Recommendation = "strong_buy"
	RecommendationBuy        Recommendation = "buy"
	RecommendationHold       Recommendation = "hold"
	RecommendationSell       Recommendation = "sell"
	RecommendationStrongSell Recommendation = "strong_sell"
)

// SignalSet is the classification of one indicator snapshot plus the
// evaluation bar's close price. It is stateless: no memory of prior bars.
type SignalSet struct {
	RSI            RSISignal        `json:"rsi_signal" yaml:"rsi_signal"`
	MACD           MACDSignal       `json:"macd_signal" yaml:"macd_signal"`
	Bollinger      BollingerSignal  `json:"bb_signal" yaml:"bb_signal"`
	Trend          TrendSignal      `json:"trend" yaml:"trend"`
	Stochastic     StochasticSignal `json:"stoch_signal" yaml:"stoch_signal"`
	Volume         VolumeSignal     `json:"volume_signal" yaml:"volume_signal"`
	Recommendation Recommendation   `json:"recommendation" yaml:"recommendation"`
}
