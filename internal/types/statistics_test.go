package types

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"
)

type StatisticsTestSuite struct {
	suite.Suite
	tempDir string
}

func TestStatisticsSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

func (suite *StatisticsTestSuite) SetupSuite() {
	tempDir, err := os.MkdirTemp("", "statistics-test")
	suite.Require().NoError(err)
	suite.tempDir = tempDir
}

func (suite *StatisticsTestSuite) TearDownSuite() {
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func (suite *StatisticsTestSuite) sampleResult() BacktestResult {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return BacktestResult{
		FinalEquity: 12000,
		Trades: []Trade{
			{
				ID:     "buy-1",
				Kind:   TradeKindBuy,
				Date:   date,
				Price:  100,
				Shares: 100,
				Value:  10000,
				Profit: optional.None[float64](),
			},
			{
				ID:     "sell-1",
				Kind:   TradeKindSell,
				Date:   date.AddDate(0, 0, 10),
				Price:  120,
				Shares: 100,
				Value:  12000,
				Profit: optional.Some(2000.0),
			},
		},
		EquityCurve: []float64{10000, 11000, 10500, 12000},
	}
}

func (suite *StatisticsTestSuite) TestComputeBacktestStats() {
	series, err := NewPriceSeries(dailyBars(100, 110, 120))
	suite.Require().NoError(err)

	stats := ComputeBacktestStats("AAPL", "sma_crossover", 10000, series, suite.sampleResult())

	suite.NotEmpty(stats.ID)
	suite.Equal("AAPL", stats.Ticker)
	suite.Equal("sma_crossover", stats.Strategy)
	suite.Equal(10000.0, stats.InitialCapital)
	suite.Equal(12000.0, stats.FinalEquity)
	suite.InDelta(2000.0, stats.TotalReturn, 1e-9)
	suite.InDelta(20.0, stats.TotalReturnPct, 1e-9)
	suite.Equal(2, stats.TotalTrades)
	suite.Equal(1, stats.WinningTrades)
	suite.InDelta(100.0, stats.WinRate, 1e-9)
	// Peak 11000 down to 10500.
	suite.InDelta(500.0/11000.0, stats.MaxDrawdown, 1e-9)
	// 100 shares at 100, held to 120.
	suite.InDelta(2000.0, stats.BuyAndHoldReturn, 1e-9)
}

func (suite *StatisticsTestSuite) TestNoSellsMeansZeroWinRate() {
	result := suite.sampleResult()
	result.Trades = result.Trades[:1]

	stats := ComputeBacktestStats("AAPL", "sma_crossover", 10000, nil, result)

	suite.Equal(1, stats.TotalTrades)
	suite.Equal(0, stats.WinningTrades)
	suite.Equal(0.0, stats.WinRate)
}

func (suite *StatisticsTestSuite) TestMaxDrawdownEmptyCurve() {
	suite.Equal(0.0, maxDrawdown(nil))
	suite.Equal(0.0, maxDrawdown([]float64{100, 110, 120}))
}

func (suite *StatisticsTestSuite) TestWriteBacktestStats() {
	stats := ComputeBacktestStats("MSFT", "rsi_reversal", 5000, nil, suite.sampleResult())
	path := filepath.Join(suite.tempDir, "stats.yaml")

	suite.Require().NoError(WriteBacktestStats(path, stats))

	raw, err := os.ReadFile(path)
	suite.Require().NoError(err)

	var loaded BacktestStats
	suite.Require().NoError(yaml.Unmarshal(raw, &loaded))
	suite.Equal(stats.ID, loaded.ID)
	suite.Equal("MSFT", loaded.Ticker)
	suite.Equal("rsi_reversal", loaded.Strategy)
	suite.InDelta(stats.MaxDrawdown, loaded.MaxDrawdown, 1e-9)
}
