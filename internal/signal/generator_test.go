package signal

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"github.com/stretchr/testify/suite"
)

type GeneratorTestSuite struct {
	suite.Suite
	generator *Generator
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (suite *GeneratorTestSuite) SetupTest() {
	suite.generator = NewGenerator()
}

func (suite *GeneratorTestSuite) TestEmptySnapshot() {
	set := suite.generator.Generate(types.IndicatorSnapshot{}, 100)

	suite.Equal(types.RSISignalUnknown, set.RSI)
	suite.Equal(types.MACDSignalUnknown, set.MACD)
	suite.Equal(types.BollingerSignalUnknown, set.Bollinger)
	suite.Equal(types.TrendSignalSideways, set.Trend)
	suite.Equal(types.StochasticSignalUnknown, set.Stochastic)
	suite.Equal(types.VolumeSignalUnknown, set.Volume)
	suite.Equal(types.RecommendationHold, set.Recommendation)
}

func (suite *GeneratorTestSuite) TestRSIThresholds() {
	cases := []struct {
		value    float64
		expected types.RSISignal
	}{
		{75, types.RSISignalOverbought},
		{70, types.RSISignalOverbought},
		{50, types.RSISignalNeutral},
		{30, types.RSISignalOversold},
		{20, types.RSISignalOversold},
	}

	for _, tc := range cases {
		snapshot := types.IndicatorSnapshot{RSI14: optional.Some(tc.value)}
		set := suite.generator.Generate(snapshot, 100)
		suite.Equal(tc.expected, set.RSI, "rsi %v", tc.value)
	}
}

func (suite *GeneratorTestSuite) TestMACDHistogramSign() {
	bullish := types.IndicatorSnapshot{
		MACD: types.MACDValue{Histogram: optional.Some(0.5)},
	}
	suite.Equal(types.MACDSignalBullish, suite.generator.Generate(bullish, 100).MACD)

	bearish := types.IndicatorSnapshot{
		MACD: types.MACDValue{Histogram: optional.Some(-0.5)},
	}
	suite.Equal(types.MACDSignalBearish, suite.generator.Generate(bearish, 100).MACD)

	flat := types.IndicatorSnapshot{
		MACD: types.MACDValue{Histogram: optional.Some(0.0)},
	}
	suite.Equal(types.MACDSignalNeutral, suite.generator.Generate(flat, 100).MACD)
}

func (suite *GeneratorTestSuite) TestBollingerPricePosition() {
	snapshot := types.IndicatorSnapshot{
		Bollinger: types.BollingerBands{
			Upper: optional.Some(110.0),
			Lower: optional.Some(90.0),
		},
	}

	suite.Equal(types.BollingerSignalOverbought, suite.generator.Generate(snapshot, 112).Bollinger)
	suite.Equal(types.BollingerSignalOverbought, suite.generator.Generate(snapshot, 110).Bollinger)
	suite.Equal(types.BollingerSignalNormal, suite.generator.Generate(snapshot, 100).Bollinger)
	suite.Equal(types.BollingerSignalOversold, suite.generator.Generate(snapshot, 90).Bollinger)
	suite.Equal(types.BollingerSignalOversold, suite.generator.Generate(snapshot, 85).Bollinger)
}

func (suite *GeneratorTestSuite) TestTrendClassification() {
	both := types.IndicatorSnapshot{
		SMA50:  optional.Some(100.0),
		SMA200: optional.Some(95.0),
	}
	suite.Equal(types.TrendSignalStrongUptrend, suite.generator.Generate(both, 105).Trend)

	inverted := types.IndicatorSnapshot{
		SMA50:  optional.Some(100.0),
		SMA200: optional.Some(105.0),
	}
	suite.Equal(types.TrendSignalStrongDowntrend, suite.generator.Generate(inverted, 95).Trend)

	// Price between the averages falls back to the medium average alone.
	suite.Equal(types.TrendSignalUptrend, suite.generator.Generate(inverted, 102).Trend)

	mediumOnly := types.IndicatorSnapshot{
		SMA50: optional.Some(100.0),
	}
	suite.Equal(types.TrendSignalUptrend, suite.generator.Generate(mediumOnly, 105).Trend)
	suite.Equal(types.TrendSignalDowntrend, suite.generator.Generate(mediumOnly, 95).Trend)
	suite.Equal(types.TrendSignalSideways, suite.generator.Generate(mediumOnly, 100).Trend)
}

func (suite *GeneratorTestSuite) TestStochasticBothLines() {
	overbought := types.IndicatorSnapshot{
		Stochastic: types.StochasticValue{
			K: optional.Some(85.0),
			D: optional.Some(82.0),
		},
	}
	suite.Equal(types.StochasticSignalOverbought, suite.generator.Generate(overbought, 100).Stochastic)

	oversold := types.IndicatorSnapshot{
		Stochastic: types.StochasticValue{
			K: optional.Some(15.0),
			D: optional.Some(18.0),
		},
	}
	suite.Equal(types.StochasticSignalOversold, suite.generator.Generate(oversold, 100).Stochastic)

	// One line outside the zone is not enough.
	split := types.IndicatorSnapshot{
		Stochastic: types.StochasticValue{
			K: optional.Some(85.0),
			D: optional.Some(60.0),
		},
	}
	suite.Equal(types.StochasticSignalNeutral, suite.generator.Generate(split, 100).Stochastic)
}

func (suite *GeneratorTestSuite) TestVolumeRatioThresholds() {
	cases := []struct {
		ratio    float64
		expected types.VolumeSignal
	}{
		{2.0, types.VolumeSignalHigh},
		{1.5, types.VolumeSignalNormal},
		{1.0, types.VolumeSignalNormal},
		{0.5, types.VolumeSignalNormal},
		{0.3, types.VolumeSignalLow},
	}

	for _, tc := range cases {
		snapshot := types.IndicatorSnapshot{VolumeRatio: optional.Some(tc.ratio)}
		set := suite.generator.Generate(snapshot, 100)
		suite.Equal(tc.expected, set.Volume, "ratio %v", tc.ratio)
	}
}

func (suite *GeneratorTestSuite) TestRecommendationStrongBuy() {
	// Four bullish votes, zero bearish: ratio 1.0.
	snapshot := types.IndicatorSnapshot{
		RSI14: optional.Some(25.0),
		MACD:  types.MACDValue{Histogram: optional.Some(1.0)},
		Bollinger: types.BollingerBands{
			Upper: optional.Some(110.0),
			Lower: optional.Some(90.0),
		},
		SMA50:  optional.Some(80.0),
		SMA200: optional.Some(75.0),
	}

	set := suite.generator.Generate(snapshot, 85)
	suite.Equal(types.RecommendationStrongBuy, set.Recommendation)
}

func (suite *GeneratorTestSuite) TestRecommendationBuyBoundary() {
	// Strong uptrend (+2) against one bearish RSI vote: ratio 2/3.
	snapshot := types.IndicatorSnapshot{
		RSI14:  optional.Some(75.0),
		SMA50:  optional.Some(100.0),
		SMA200: optional.Some(95.0),
	}

	set := suite.generator.Generate(snapshot, 105)
	suite.Equal(types.RecommendationBuy, set.Recommendation)
}

func (suite *GeneratorTestSuite) TestRecommendationStrongSell() {
	snapshot := types.IndicatorSnapshot{
		RSI14: optional.Some(80.0),
		MACD:  types.MACDValue{Histogram: optional.Some(-1.0)},
		Stochastic: types.StochasticValue{
			K: optional.Some(90.0),
			D: optional.Some(88.0),
		},
		SMA50:  optional.Some(110.0),
		SMA200: optional.Some(115.0),
	}

	set := suite.generator.Generate(snapshot, 100)
	suite.Equal(types.RecommendationStrongSell, set.Recommendation)
}

func (suite *GeneratorTestSuite) TestRecommendationSellBoundary() {
	// Strong downtrend (-2) against one bullish RSI vote: ratio 1/3.
	snapshot := types.IndicatorSnapshot{
		RSI14:  optional.Some(25.0),
		SMA50:  optional.Some(110.0),
		SMA200: optional.Some(115.0),
	}

	set := suite.generator.Generate(snapshot, 100)
	suite.Equal(types.RecommendationSell, set.Recommendation)
}

func (suite *GeneratorTestSuite) TestRecommendationBalancedVotesHold() {
	snapshot := types.IndicatorSnapshot{
		RSI14: optional.Some(25.0),
		MACD:  types.MACDValue{Histogram: optional.Some(-1.0)},
	}

	set := suite.generator.Generate(snapshot, 100)
	suite.Equal(types.RecommendationHold, set.Recommendation)
}
