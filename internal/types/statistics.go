package types

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// BacktestStats summarizes one backtest run. It is computed by the caller
// from a BacktestResult; the simulator itself only produces trades and the
// equity curve.
type BacktestStats struct {
	// ID is the unique identifier for this backtest run.
	ID string `yaml:"id" json:"id"`
	// Timestamp is when this backtest run was executed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// Ticker of the simulated instrument.
	Ticker string `yaml:"ticker" json:"ticker"`
	// Strategy identifier used for the run.
	Strategy string `yaml:"strategy" json:"strategy"`
	// InitialCapital the run started with.
	InitialCapital float64 `yaml:"initial_capital" json:"initial_capital"`
	// FinalEquity after the last evaluated bar.
	FinalEquity float64 `yaml:"final_equity" json:"final_equity"`
	// TotalReturn is FinalEquity - InitialCapital.
	TotalReturn float64 `yaml:"total_return" json:"total_return"`
	// TotalReturnPct is TotalReturn relative to InitialCapital, in percent.
	TotalReturnPct float64 `yaml:"total_return_pct" json:"total_return_pct"`
	// TotalTrades counts buys and sells.
	TotalTrades int `yaml:"total_trades" json:"total_trades"`
	// WinningTrades counts sells with positive profit.
	WinningTrades int `yaml:"winning_trades" json:"winning_trades"`
	// WinRate is WinningTrades / sells, in percent. Zero when no sell
	// occurred.
	WinRate float64 `yaml:"win_rate" json:"win_rate"`
	// MaxDrawdown is the largest peak-to-trough decline of the equity
	// curve, as a fraction of the peak.
	MaxDrawdown float64 `yaml:"max_drawdown" json:"max_drawdown"`
	// BuyAndHoldReturn is the return of converting all capital into whole
	// shares at the first close and holding until the last close.
	BuyAndHoldReturn float64 `yaml:"buy_and_hold_return" json:"buy_and_hold_return"`
}

// ComputeBacktestStats derives the summary metrics for one run.
func ComputeBacktestStats(ticker, strategy string, initialCapital float64, series *PriceSeries, result BacktestResult) BacktestStats {
	stats := BacktestStats{
		ID:             uuid.New().String(),
		Timestamp:      time.Now().UTC(),
		Ticker:         ticker,
		Strategy:       strategy,
		InitialCapital: initialCapital,
		FinalEquity:    result.FinalEquity,
		TotalReturn:    result.FinalEquity - initialCapital,
		TotalTrades:    len(result.Trades),
	}

	if initialCapital > 0 {
		stats.TotalReturnPct = stats.TotalReturn / initialCapital * 100
	}

	sells := 0

	for _, trade := range result.Trades {
		if trade.Kind != TradeKindSell {
			continue
		}

		sells++

		profit, err := trade.Profit.Take()
		if err == nil && profit > 0 {
			stats.WinningTrades++
		}
	}

	if sells > 0 {
		stats.WinRate = float64(stats.WinningTrades) / float64(sells) * 100
	}

	stats.MaxDrawdown = maxDrawdown(result.EquityCurve)

	if series != nil && series.Len() > 0 {
		firstClose := series.At(0).Close
		shares := math.Floor(initialCapital / firstClose)
		cash := initialCapital - shares*firstClose
		stats.BuyAndHoldReturn = cash + shares*series.Last().Close - initialCapital
	}

	return stats
}

func maxDrawdown(equityCurve []float64) float64 {
	peak := math.Inf(-1)
	drawdown := 0.0

	for _, equity := range equityCurve {
		if equity > peak {
			peak = equity
		}

		if peak > 0 {
			if dd := (peak - equity) / peak; dd > drawdown {
				drawdown = dd
			}
		}
	}

	return drawdown
}

// WriteBacktestStats writes the stats to a YAML file.
func WriteBacktestStats(path string, stats BacktestStats) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal backtest stats to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backtest stats to file: %w", err)
	}

	return nil
}
