package types

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func dailyBars(closes ...float64) []PriceBar {
	bars := make([]PriceBar, len(closes))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, close := range closes {
		bars[i] = PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   close,
			High:   close + 1,
			Low:    close - 1,
			Close:  close,
			Volume: 1000,
		}
	}

	return bars
}

func (suite *MarketTestSuite) TestNewPriceSeries() {
	series, err := NewPriceSeries(dailyBars(10, 11, 12))
	suite.Require().NoError(err)
	suite.Equal(3, series.Len())
	suite.Equal(10.0, series.At(0).Close)
	suite.Equal(12.0, series.Last().Close)
}

func (suite *MarketTestSuite) TestEmptySeriesRejected() {
	_, err := NewPriceSeries(nil)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestUnorderedDatesRejected() {
	bars := dailyBars(10, 11, 12)
	bars[2].Date = bars[0].Date

	_, err := NewPriceSeries(bars)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestDuplicateDatesRejected() {
	bars := dailyBars(10, 11)
	bars[1].Date = bars[0].Date

	_, err := NewPriceSeries(bars)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestInvalidBarRejected() {
	bars := dailyBars(10, 11)
	bars[1].Close = -5

	_, err := NewPriceSeries(bars)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidBar))
}

func (suite *MarketTestSuite) TestSeriesIsImmutable() {
	bars := dailyBars(10, 11)
	series, err := NewPriceSeries(bars)
	suite.Require().NoError(err)

	bars[0].Close = 999
	suite.Equal(10.0, series.At(0).Close)

	copied := series.Bars()
	copied[1].Close = 888
	suite.Equal(11.0, series.At(1).Close)
}

func (suite *MarketTestSuite) TestIsIntraday() {
	daily, err := NewPriceSeries(dailyBars(10, 11))
	suite.Require().NoError(err)
	suite.False(daily.IsIntraday())

	bars := dailyBars(10, 11)
	bars[1].Date = bars[0].Date.Add(time.Minute)

	intraday, err := NewPriceSeries(bars)
	suite.Require().NoError(err)
	suite.True(intraday.IsIntraday())
}

func (suite *MarketTestSuite) TestIsIntradayAcrossSessionBreak() {
	// Minute bars whose first gap is an overnight session break.
	bars := dailyBars(10, 11, 12, 13)
	bars[0].Date = time.Date(2024, 1, 2, 15, 59, 0, 0, time.UTC)
	bars[1].Date = time.Date(2024, 1, 3, 9, 30, 0, 0, time.UTC)
	bars[2].Date = bars[1].Date.Add(time.Minute)
	bars[3].Date = bars[1].Date.Add(2 * time.Minute)

	series, err := NewPriceSeries(bars)
	suite.Require().NoError(err)
	suite.True(series.IsIntraday())
}

func (suite *MarketTestSuite) TestSingleBarSeriesIsDaily() {
	series, err := NewPriceSeries(dailyBars(10))
	suite.Require().NoError(err)
	suite.False(series.IsIntraday())
}

func (suite *MarketTestSuite) TestTypicalPrice() {
	bar := PriceBar{High: 12, Low: 9, Close: 12}
	suite.InDelta(11.0, bar.TypicalPrice(), 1e-9)
}
