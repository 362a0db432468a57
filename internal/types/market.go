package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
)

// PriceBar is one OHLCV trading period.
type PriceBar struct {
	Date   time.Time `json:"date" csv:"date" validate:"required"`
	Open   float64   `json:"open" csv:"open" validate:"gt=0"`
	High   float64   `json:"high" csv:"high" validate:"gt=0"`
	Low    float64   `json:"low" csv:"low" validate:"gt=0"`
	Close  float64   `json:"close" csv:"close" validate:"gt=0"`
	Volume int64     `json:"volume" csv:"volume" validate:"gte=0"`
}

// TypicalPrice returns (high + low + close) / 3.
func (b PriceBar) TypicalPrice() float64 {
	return (b.High + b.Low + b.Close) / 3
}

// PriceSeries is an ordered sequence of price bars with strictly increasing
// dates. It is immutable once constructed; all indicator and backtest
// computations are pure functions over it.
type PriceSeries struct {
	bars []PriceBar
}

var barValidator = validator.New()

// NewPriceSeries validates the bars and constructs a series. The input slice
// is copied so later mutation by the caller cannot be observed.
func NewPriceSeries(bars []PriceBar) (*PriceSeries, error) {
	if len(bars) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSeries, "price series must contain at least one bar")
	}

	for i, bar := range bars {
		if err := barValidator.Struct(bar); err != nil {
			return nil, errors.Wrapf(errors.ErrCodeInvalidBar, err, "invalid bar at index %d", i)
		}

		if i > 0 && !bars[i-1].Date.Before(bar.Date) {
			return nil, errors.Newf(errors.ErrCodeInvalidSeries,
				"bar dates must be strictly increasing: %s followed by %s",
				bars[i-1].Date.Format(time.RFC3339), bar.Date.Format(time.RFC3339))
		}
	}

	copied := make([]PriceBar, len(bars))
	copy(copied, bars)

	return &PriceSeries{bars: copied}, nil
}

// Len returns the number of bars in the series.
func (s *PriceSeries) Len() int {
	return len(s.bars)
}

// At returns the bar at index i. Panics on out-of-range access, matching
// slice semantics.
func (s *PriceSeries) At(i int) PriceBar {
	return s.bars[i]
}

// Last returns the most recent bar.
func (s *PriceSeries) Last() PriceBar {
	return s.bars[len(s.bars)-1]
}

// Bars returns a copy of the underlying bars.
func (s *PriceSeries) Bars() []PriceBar {
	copied := make([]PriceBar, len(s.bars))
	copy(copied, s.bars)

	return copied
}

// intradayProbeGaps is how many leading bar gaps IsIntraday samples.
const intradayProbeGaps = 5

// IsIntraday reports whether the series has intraday granularity. The
// smallest gap over the leading bars decides, so a session break between
// the first two bars cannot misclassify a minute series as daily.
// Single-bar series are treated as daily.
func (s *PriceSeries) IsIntraday() bool {
	if len(s.bars) < 2 {
		return false
	}

	gaps := len(s.bars) - 1
	if gaps > intradayProbeGaps {
		gaps = intradayProbeGaps
	}

	smallest := s.bars[1].Date.Sub(s.bars[0].Date)
	for i := 2; i <= gaps; i++ {
		if gap := s.bars[i].Date.Sub(s.bars[i-1].Date); gap < smallest {
			smallest = gap
		}
	}

	return smallest < time.Hour
}
