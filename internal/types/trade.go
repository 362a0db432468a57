package types

import (
	"time"

	"github.com/moznion/go-optional"
)

type TradeKind string

const (
	TradeKindBuy  TradeKind = "buy"
	TradeKindSell TradeKind = "sell"
)

// Trade is one executed buy or sell. Trades in a BacktestResult strictly
// alternate buy, sell, buy, ... starting with a buy.
type Trade struct {
	// ID is the unique identifier for this trade.
	ID string `json:"id"`
	// Kind is buy or sell.
	Kind TradeKind `json:"type"`
	// Date is the date of the bar the trade executed on.
	Date time.Time `json:"date"`
	// Price is the bar's close price the trade executed at.
	Price float64 `json:"price"`
	// Shares is the integer number of shares bought or sold.
	Shares int64 `json:"shares"`
	// Value is Price * Shares.
	Value float64 `json:"value"`
	// Profit is proceeds minus the matching buy's value. Present only on
	// sells.
	Profit optional.Option[float64] `json:"profit,omitempty"`
}

// BacktestResult is the output of one simulation run.
type BacktestResult struct {
	// FinalEquity is cash plus the mark-to-market position after the last
	// evaluated bar. Equals the initial capital when no bar was evaluated.
	FinalEquity float64
	// Trades in execution order.
	Trades []Trade
	// EquityCurve has one entry per evaluated bar, cash + position*close.
	EquityCurve []float64
}
