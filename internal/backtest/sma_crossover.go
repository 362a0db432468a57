package backtest

import (
	"github.com/rxtech-lab/argo-analyzer/internal/indicator"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
)

const (
	smaCrossoverFastPeriod = 50
	smaCrossoverSlowPeriod = 200
)

// SMACrossover buys when the fast SMA crosses from at-or-below to above the
// slow SMA between the previous and current bar, and sells on the opposite
// crossing. Only a crossover event triggers an action, never the mere state
// of being above or below.
type SMACrossover struct {
	fast *indicator.SMA
	slow *indicator.SMA

	prevFast, prevSlow float64
	currFast, currSlow float64
	prevDefined        bool
	currDefined        bool
}

// NewSMACrossover creates the 50/200 crossover strategy.
func NewSMACrossover() *SMACrossover {
	return &SMACrossover{
		fast: indicator.NewSMA(smaCrossoverFastPeriod),
		slow: indicator.NewSMA(smaCrossoverSlowPeriod),
	}
}

// ID implements Strategy.
func (s *SMACrossover) ID() StrategyID {
	return StrategySMACrossover
}

// WarmupBars implements Strategy.
func (s *SMACrossover) WarmupBars() int {
	return smaCrossoverSlowPeriod
}

// Observe implements Strategy.
func (s *SMACrossover) Observe(bar types.PriceBar) {
	s.prevFast, s.prevSlow, s.prevDefined = s.currFast, s.currSlow, s.currDefined

	s.fast.Update(bar)
	s.slow.Update(bar)

	fast, fastErr := s.fast.Value().Take()
	slow, slowErr := s.slow.Value().Take()

	s.currDefined = fastErr == nil && slowErr == nil
	s.currFast, s.currSlow = fast, slow
}

// Decide implements Strategy.
func (s *SMACrossover) Decide() Action {
	if !s.prevDefined || !s.currDefined {
		return ActionHold
	}

	if s.prevFast <= s.prevSlow && s.currFast > s.currSlow {
		return ActionBuy
	}

	if s.prevFast >= s.prevSlow && s.currFast < s.currSlow {
		return ActionSell
	}

	return ActionHold
}
