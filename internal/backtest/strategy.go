package backtest

import (
	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
)

// Action is the decision a strategy makes for one bar.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

// StrategyID identifies one of the built-in strategies.
type StrategyID string

const (
	StrategySMACrossover StrategyID = "sma_crossover"
	StrategyRSIReversal  StrategyID = "rsi_reversal"
)

// Strategy is one rule set replayed by the simulator. Observe must be called
// once per bar in series order; Decide returns the action for the most
// recently observed bar. Implementations keep only their own indicator
// state, never position state, so the simulator stays the single owner of
// the flat/long machine.
type Strategy interface {
	// ID returns the strategy identifier.
	ID() StrategyID
	// WarmupBars is the number of leading bars that are observed but never
	// acted on.
	WarmupBars() int
	// Observe feeds the next bar.
	Observe(bar types.PriceBar)
	// Decide returns the action for the bar most recently observed.
	Decide() Action
}

// NewStrategy constructs the strategy for the given identifier. An unknown
// identifier is a configuration error.
func NewStrategy(id StrategyID) (Strategy, error) {
	switch id {
	case StrategySMACrossover:
		return NewSMACrossover(), nil
	case StrategyRSIReversal:
		return NewRSIReversal(), nil
	default:
		return nil, errors.Newf(errors.ErrCodeUnknownStrategy, "unknown strategy: %s", id)
	}
}

// StrategyIDs lists the available strategy identifiers.
func StrategyIDs() []StrategyID {
	return []StrategyID{StrategySMACrossover, StrategyRSIReversal}
}

// ValidateSeriesLength checks that the series carries more bars than the
// strategy's warm-up, so at least one bar is acted on. Run treats a shorter
// series as an empty result; callers use this check to fail loudly instead.
func ValidateSeriesLength(series *types.PriceSeries, id StrategyID) error {
	strategy, err := NewStrategy(id)
	if err != nil {
		return err
	}

	required := strategy.WarmupBars() + 1

	actual := 0
	if series != nil {
		actual = series.Len()
	}

	if actual < required {
		cause := errors.NewInsufficientDataErrorf(required, actual, "",
			"strategy %s needs at least %d bars, got %d", id, required, actual)

		return errors.Wrap(errors.ErrCodeInsufficientData, "not enough bars for strategy warm-up", cause)
	}

	return nil
}
