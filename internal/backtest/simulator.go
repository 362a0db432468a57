package backtest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-analyzer/internal/logger"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Simulator replays one strategy over a price series in a single
// deterministic pass. Position state is a two-state machine, flat or long:
// a buy signal while flat converts all cash into the maximum whole number
// of shares at the bar's close, a sell signal while long liquidates the
// entire position, and any signal that does not match the current state is
// a no-op.
type Simulator struct {
	logger *logger.Logger
}

// NewSimulator creates a simulator. A nil logger disables logging.
func NewSimulator(log *logger.Logger) *Simulator {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Simulator{
		logger: log,
	}
}

// tradeID derives a name-based UUID from the run inputs and the trade's
// position in the run, so repeated runs over the same series produce
// bit-identical results.
func tradeID(id StrategyID, index int, date time.Time) string {
	name := fmt.Sprintf("%s/%d/%s", id, index, date.Format(time.RFC3339Nano))

	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// Run simulates the strategy over the series starting with initialCapital
// in cash. Configuration problems (unknown strategy, non-positive capital,
// nil series) fail before any simulation step; a series shorter than the
// strategy's warm-up window yields empty trades and an empty equity curve,
// not an error.
func (s *Simulator) Run(series *types.PriceSeries, id StrategyID, initialCapital float64) (types.BacktestResult, error) {
	result := types.BacktestResult{
		FinalEquity: initialCapital,
		Trades:      []types.Trade{},
		EquityCurve: []float64{},
	}

	if series == nil {
		return result, errors.New(errors.ErrCodeInvalidSeries, "price series is required")
	}

	if initialCapital <= 0 {
		return result, errors.Newf(errors.ErrCodeInvalidCapital, "initial capital must be positive, got %f", initialCapital)
	}

	strategy, err := NewStrategy(id)
	if err != nil {
		return result, err
	}

	warmup := strategy.WarmupBars()

	cash := decimal.NewFromFloat(initialCapital)
	lastBuyValue := decimal.Zero

	var position int64

	for i := 0; i < series.Len(); i++ {
		bar := series.At(i)
		strategy.Observe(bar)

		if i < warmup {
			continue
		}

		price := decimal.NewFromFloat(bar.Close)

		switch strategy.Decide() {
		case ActionBuy:
			if position == 0 {
				shares := cash.Div(price).IntPart()
				if shares > 0 {
					cost := price.Mul(decimal.NewFromInt(shares))
					cash = cash.Sub(cost)
					position = shares
					lastBuyValue = cost

					result.Trades = append(result.Trades, types.Trade{
						ID:     tradeID(id, len(result.Trades), bar.Date),
						Kind:   types.TradeKindBuy,
						Date:   bar.Date,
						Price:  bar.Close,
						Shares: shares,
						Value:  cost.InexactFloat64(),
						Profit: optional.None[float64](),
					})

					s.logger.Debug("executed buy",
						zap.Time("date", bar.Date),
						zap.Int64("shares", shares),
						zap.Float64("price", bar.Close),
					)
				}
			}
		case ActionSell:
			if position > 0 {
				proceeds := price.Mul(decimal.NewFromInt(position))
				cash = cash.Add(proceeds)

				result.Trades = append(result.Trades, types.Trade{
					ID:     tradeID(id, len(result.Trades), bar.Date),
					Kind:   types.TradeKindSell,
					Date:   bar.Date,
					Price:  bar.Close,
					Shares: position,
					Value:  proceeds.InexactFloat64(),
					Profit: optional.Some(proceeds.Sub(lastBuyValue).InexactFloat64()),
				})

				s.logger.Debug("executed sell",
					zap.Time("date", bar.Date),
					zap.Int64("shares", position),
					zap.Float64("price", bar.Close),
				)

				position = 0
			}
		case ActionHold:
		}

		equity := cash.Add(price.Mul(decimal.NewFromInt(position)))
		result.EquityCurve = append(result.EquityCurve, equity.InexactFloat64())
	}

	if len(result.EquityCurve) > 0 {
		result.FinalEquity = result.EquityCurve[len(result.EquityCurve)-1]
	}

	s.logger.Debug("backtest finished",
		zap.String("strategy", string(id)),
		zap.Int("trades", len(result.Trades)),
		zap.Int("evaluated_bars", len(result.EquityCurve)),
		zap.Float64("final_equity", result.FinalEquity),
	)

	return result, nil
}
