// Package format shapes analysis and backtest results into JSON documents.
// Rounding happens only here, at the output boundary; absent indicator
// values marshal as explicit JSON nulls, never as zero.
package format

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
)

// Rounding precision at the output boundary. MACD components, standard
// deviation and band width carry small magnitudes, so they keep two extra
// decimal places.
const (
	pricePlaces = 2
	finePlaces  = 4
)

// TrendReport groups the trend-following indicator values.
type TrendReport struct {
	SMA20         *float64 `json:"sma_20"`
	SMA50         *float64 `json:"sma_50"`
	SMA200        *float64 `json:"sma_200"`
	EMA12         *float64 `json:"ema_12"`
	EMA26         *float64 `json:"ema_26"`
	MACD          *float64 `json:"macd"`
	MACDSignal    *float64 `json:"macd_signal"`
	MACDHistogram *float64 `json:"macd_histogram"`
	ADX           *float64 `json:"adx"`
}

// MomentumReport groups the momentum oscillator values.
type MomentumReport struct {
	RSI14  *float64 `json:"rsi_14"`
	StochK *float64 `json:"stoch_k"`
	StochD *float64 `json:"stoch_d"`
	CCI    *float64 `json:"cci"`
	ROC    *float64 `json:"roc"`
}

// VolatilityReport groups the volatility indicator values.
type VolatilityReport struct {
	BBUpper     *float64 `json:"bb_upper"`
	BBMiddle    *float64 `json:"bb_middle"`
	BBLower     *float64 `json:"bb_lower"`
	BBBandwidth *float64 `json:"bb_bandwidth"`
	ATR         *float64 `json:"atr"`
	StdDev      *float64 `json:"stdev"`
}

// VolumeReport groups the volume indicator values.
type VolumeReport struct {
	OBV         *float64 `json:"obv"`
	VWAP        *float64 `json:"vwap"`
	VolumeRatio *float64 `json:"volume_ratio"`
}

// IndicatorReport is the rounded, grouped rendering of one snapshot.
type IndicatorReport struct {
	Trend      TrendReport      `json:"trend"`
	Momentum   MomentumReport   `json:"momentum"`
	Volatility VolatilityReport `json:"volatility"`
	Volume     VolumeReport     `json:"volume"`
}

// AnalysisReport is the JSON document produced by the analyze command.
type AnalysisReport struct {
	Ticker     string          `json:"ticker"`
	Date       string          `json:"date"`
	Price      float64         `json:"price"`
	Change     *float64        `json:"change"`
	ChangePct  *float64        `json:"change_pct"`
	Indicators IndicatorReport `json:"indicators"`
	Signals    types.SignalSet `json:"signals"`
}

// NewAnalysisReport assembles the analyze output from the engine and signal
// generator results for the series' last bar.
func NewAnalysisReport(ticker string, bar types.PriceBar, change types.PriceChange, snapshot types.IndicatorSnapshot, signals types.SignalSet) AnalysisReport {
	return AnalysisReport{
		Ticker:    ticker,
		Date:      bar.Date.Format(time.RFC3339),
		Price:     round(bar.Close, pricePlaces),
		Change:    rounded(change.Change, pricePlaces),
		ChangePct: rounded(change.ChangePct, pricePlaces),
		Indicators: IndicatorReport{
			Trend: TrendReport{
				SMA20:         rounded(snapshot.SMA20, pricePlaces),
				SMA50:         rounded(snapshot.SMA50, pricePlaces),
				SMA200:        rounded(snapshot.SMA200, pricePlaces),
				EMA12:         rounded(snapshot.EMA12, pricePlaces),
				EMA26:         rounded(snapshot.EMA26, pricePlaces),
				MACD:          rounded(snapshot.MACD.MACD, finePlaces),
				MACDSignal:    rounded(snapshot.MACD.Signal, finePlaces),
				MACDHistogram: rounded(snapshot.MACD.Histogram, finePlaces),
				ADX:           rounded(snapshot.ADX, pricePlaces),
			},
			Momentum: MomentumReport{
				RSI14:  rounded(snapshot.RSI14, pricePlaces),
				StochK: rounded(snapshot.Stochastic.K, pricePlaces),
				StochD: rounded(snapshot.Stochastic.D, pricePlaces),
				CCI:    rounded(snapshot.CCI, pricePlaces),
				ROC:    rounded(snapshot.ROC, pricePlaces),
			},
			Volatility: VolatilityReport{
				BBUpper:     rounded(snapshot.Bollinger.Upper, pricePlaces),
				BBMiddle:    rounded(snapshot.Bollinger.Middle, pricePlaces),
				BBLower:     rounded(snapshot.Bollinger.Lower, pricePlaces),
				BBBandwidth: rounded(snapshot.Bollinger.Bandwidth, finePlaces),
				ATR:         rounded(snapshot.ATR, pricePlaces),
				StdDev:      rounded(snapshot.StdDev, finePlaces),
			},
			Volume: VolumeReport{
				OBV:         rounded(snapshot.OBV, pricePlaces),
				VWAP:        rounded(snapshot.VWAP, pricePlaces),
				VolumeRatio: rounded(snapshot.VolumeRatio, pricePlaces),
			},
		},
		Signals: signals,
	}
}

// TradeReport is one trade rendered for output.
type TradeReport struct {
	ID     string   `json:"id"`
	Kind   string   `json:"type"`
	Date   string   `json:"date"`
	Price  float64  `json:"price"`
	Shares int64    `json:"shares"`
	Value  float64  `json:"value"`
	Profit *float64 `json:"profit"`
}

// BacktestReport is the JSON document produced by the backtest command.
// Trade and equity ordering is preserved exactly as the simulator produced
// it.
type BacktestReport struct {
	Stats       types.BacktestStats `json:"stats"`
	Trades      []TradeReport       `json:"trades"`
	EquityCurve []float64           `json:"equity_curve"`
}

// NewBacktestReport assembles the backtest output from the simulator result
// and its derived stats.
func NewBacktestReport(stats types.BacktestStats, result types.BacktestResult) BacktestReport {
	report := BacktestReport{
		Stats:       stats,
		Trades:      make([]TradeReport, 0, len(result.Trades)),
		EquityCurve: make([]float64, 0, len(result.EquityCurve)),
	}

	for _, trade := range result.Trades {
		report.Trades = append(report.Trades, TradeReport{
			ID:     trade.ID,
			Kind:   string(trade.Kind),
			Date:   trade.Date.Format(time.RFC3339),
			Price:  round(trade.Price, pricePlaces),
			Shares: trade.Shares,
			Value:  round(trade.Value, pricePlaces),
			Profit: rounded(trade.Profit, pricePlaces),
		})
	}

	for _, equity := range result.EquityCurve {
		report.EquityCurve = append(report.EquityCurve, round(equity, pricePlaces))
	}

	return report
}

// ErrorReport is the JSON error object written on command failure.
type ErrorReport struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewErrorReport wraps an error into the output error object.
func NewErrorReport(err error) ErrorReport {
	var report ErrorReport
	report.Error.Code = int(errors.GetCode(err))
	report.Error.Message = err.Error()

	return report
}

// WriteJSON renders any report as indented JSON.
func WriteJSON(w io.Writer, report any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(report)
}

func round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))

	return math.Round(value*factor) / factor
}

func rounded(value optional.Option[float64], places int) *float64 {
	v, err := value.Take()
	if err != nil {
		return nil
	}

	r := round(v, places)

	return &r
}
