package backtest

import (
	"github.com/rxtech-lab/argo-analyzer/internal/indicator"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

const (
	rsiReversalPeriod     = 14
	rsiReversalOversold   = 30.0
	rsiReversalOverbought = 70.0
)

// RSIReversal buys when the RSI turns upward from inside the oversold zone
// and sells when it turns downward from inside the overbought zone. A bar
// that satisfies both rules resolves to buy: the rules are evaluated in
// order and only one action is returned per bar.
type RSIReversal struct {
	rsi *indicator.RSI

	prevRSI, currRSI float64
	prevDefined      bool
	currDefined      bool
}

// NewRSIReversal creates the RSI(14) reversal strategy.
func NewRSIReversal() *RSIReversal {
	return &RSIReversal{
		rsi: indicator.NewRSI(rsiReversalPeriod),
	}
}

// ID implements Strategy.
func (r *RSIReversal) ID() StrategyID {
	return StrategyRSIReversal
}

// WarmupBars implements Strategy.
func (r *RSIReversal) WarmupBars() int {
	return rsiReversalPeriod + 1
}

// Observe implements Strategy.
func (r *RSIReversal) Observe(bar types.PriceBar) {
	r.prevRSI, r.prevDefined = r.currRSI, r.currDefined

	r.rsi.Update(bar)

	value, err := r.rsi.Value().Take()
	r.currDefined = err == nil
	r.currRSI = value
}

// Decide implements Strategy.
func (r *RSIReversal) Decide() Action {
	if !r.prevDefined || !r.currDefined {
		return ActionHold
	}

	if r.prevRSI < rsiReversalOversold && r.currRSI > r.prevRSI {
		return ActionBuy
	}

	if r.prevRSI > rsiReversalOverbought && r.currRSI < r.prevRSI {
		return ActionSell
	}

	return ActionHold
}
