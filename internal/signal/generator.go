// Package signal classifies indicator snapshots into categorical trading
// signals and an overall recommendation. The generator is stateless: every
// call derives its labels from one snapshot and the evaluation bar's close
// price, with no memory of prior bars.
package signal

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

// Thresholds for the individual signal categories.
const (
	rsiOverbought        = 70.0
	rsiOversold          = 30.0
	stochasticOverbought = 80.0
	stochasticOversold   = 20.0
	volumeHighRatio      = 1.5
	volumeLowRatio       = 0.5
)

// Vote weights and ratio thresholds for the overall recommendation.
const (
	strongBuyRatio  = 0.75
	buyRatio        = 0.6
	sellRatio       = 0.4
	strongSellRatio = 0.25
)

// Generator maps indicator snapshots to trading signals.
type Generator struct{}

// NewGenerator creates a signal generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate classifies one snapshot plus the evaluation bar's close price.
// A category whose inputs are missing gets its unknown label.
func (g *Generator) Generate(snapshot types.IndicatorSnapshot, price float64) types.SignalSet {
	set := types.SignalSet{
		RSI:        rsiSignal(snapshot.RSI14),
		MACD:       macdSignal(snapshot.MACD),
		Bollinger:  bollingerSignal(price, snapshot.Bollinger),
		Trend:      trendSignal(price, snapshot.SMA50, snapshot.SMA200),
		Stochastic: stochasticSignal(snapshot.Stochastic),
		Volume:     volumeSignal(snapshot.VolumeRatio),
	}

	set.Recommendation = recommendation(set)

	return set
}

func rsiSignal(rsi optional.Option[float64]) types.RSISignal {
	value, err := rsi.Take()
	if err != nil {
		return types.RSISignalUnknown
	}

	switch {
	case value >= rsiOverbought:
		return types.RSISignalOverbought
	case value <= rsiOversold:
		return types.RSISignalOversold
	default:
		return types.RSISignalNeutral
	}
}

func macdSignal(macd types.MACDValue) types.MACDSignal {
	histogram, err := macd.Histogram.Take()
	if err != nil {
		return types.MACDSignalUnknown
	}

	switch {
	case histogram > 0:
		return types.MACDSignalBullish
	case histogram < 0:
		return types.MACDSignalBearish
	default:
		return types.MACDSignalNeutral
	}
}

func bollingerSignal(price float64, bands types.BollingerBands) types.BollingerSignal {
	upper, upperErr := bands.Upper.Take()
	lower, lowerErr := bands.Lower.Take()

	if upperErr != nil || lowerErr != nil {
		return types.BollingerSignalUnknown
	}

	switch {
	case price >= upper:
		return types.BollingerSignalOverbought
	case price <= lower:
		return types.BollingerSignalOversold
	default:
		return types.BollingerSignalNormal
	}
}

func trendSignal(price float64, sma50, sma200 optional.Option[float64]) types.TrendSignal {
	medium, mediumErr := sma50.Take()
	long, longErr := sma200.Take()

	// Golden cross / death cross when both averages exist.
	if mediumErr == nil && longErr == nil {
		if price > medium && medium > long {
			return types.TrendSignalStrongUptrend
		}

		if price < medium && medium < long {
			return types.TrendSignalStrongDowntrend
		}
	}

	if mediumErr == nil {
		if price > medium {
			return types.TrendSignalUptrend
		}

		if price < medium {
			return types.TrendSignalDowntrend
		}
	}

	return types.TrendSignalSideways
}

func stochasticSignal(value types.StochasticValue) types.StochasticSignal {
	k, kErr := value.K.Take()
	d, dErr := value.D.Take()

	if kErr != nil || dErr != nil {
		return types.StochasticSignalUnknown
	}

	switch {
	case k >= stochasticOverbought && d >= stochasticOverbought:
		return types.StochasticSignalOverbought
	case k <= stochasticOversold && d <= stochasticOversold:
		return types.StochasticSignalOversold
	default:
		return types.StochasticSignalNeutral
	}
}

func volumeSignal(ratio optional.Option[float64]) types.VolumeSignal {
	value, err := ratio.Take()
	if err != nil {
		return types.VolumeSignalUnknown
	}

	switch {
	case value > volumeHighRatio:
		return types.VolumeSignalHigh
	case value < volumeLowRatio:
		return types.VolumeSignalLow
	default:
		return types.VolumeSignalNormal
	}
}

// recommendation tallies a weighted vote over the categorical signals. The
// trend carries double weight when strong; boundaries between labels resolve
// to the lower-confidence label.
func recommendation(set types.SignalSet) types.Recommendation {
	bullish, bearish := 0, 0

	if set.RSI == types.RSISignalOversold {
		bullish++
	} else if set.RSI == types.RSISignalOverbought {
		bearish++
	}

	if set.MACD == types.MACDSignalBullish {
		bullish++
	} else if set.MACD == types.MACDSignalBearish {
		bearish++
	}

	if set.Bollinger == types.BollingerSignalOversold {
		bullish++
	} else if set.Bollinger == types.BollingerSignalOverbought {
		bearish++
	}

	switch set.Trend {
	case types.TrendSignalStrongUptrend:
		bullish += 2
	case types.TrendSignalUptrend:
		bullish++
	case types.TrendSignalStrongDowntrend:
		bearish += 2
	case types.TrendSignalDowntrend:
		bearish++
	case types.TrendSignalSideways:
	}

	if set.Stochastic == types.StochasticSignalOversold {
		bullish++
	} else if set.Stochastic == types.StochasticSignalOverbought {
		bearish++
	}

	total := bullish + bearish
	if total == 0 {
		return types.RecommendationHold
	}

	ratio := float64(bullish) / float64(total)

	switch {
	case ratio >= strongBuyRatio:
		return types.RecommendationStrongBuy
	case ratio >= buyRatio:
		return types.RecommendationBuy
	case ratio <= strongSellRatio:
		return types.RecommendationStrongSell
	case ratio <= sellRatio:
		return types.RecommendationSell
	default:
		return types.RecommendationHold
	}
}
