package indicator

import "math"

// Rolling accumulators backing the indicator streams. Each one is advanced
// one bar at a time and answers in O(1) amortized per update; none of them
// recompute a full window.

// rollingSum maintains a windowed sum over the last `window` values.
type rollingSum struct {
	window int
	values []float64
	count  int
	sum    float64
}

func newRollingSum(window int) *rollingSum {
	return &rollingSum{
		window: window,
		values: make([]float64, window),
		count:  0,
		sum:    0,
	}
}

func (r *rollingSum) Add(v float64) {
	idx := r.count % r.window
	if r.count >= r.window {
		r.sum -= r.values[idx]
	}

	r.values[idx] = v
	r.sum += v
	r.count++
}

// Full reports whether the window has seen at least `window` values.
func (r *rollingSum) Full() bool {
	return r.count >= r.window
}

func (r *rollingSum) Mean() float64 {
	return r.sum / float64(r.window)
}

// Window returns the values currently inside the window, in no particular
// order.
func (r *rollingSum) Window() []float64 {
	if r.count >= r.window {
		return r.values
	}

	return r.values[:r.count]
}

// rollingStats extends the windowed sum with a sum of squares so it can
// answer the sample standard deviation.
type rollingStats struct {
	window int
	values []float64
	count  int
	sum    float64
	sumSq  float64
}

func newRollingStats(window int) *rollingStats {
	return &rollingStats{
		window: window,
		values: make([]float64, window),
		count:  0,
		sum:    0,
		sumSq:  0,
	}
}

func (r *rollingStats) Add(v float64) {
	idx := r.count % r.window
	if r.count >= r.window {
		old := r.values[idx]
		r.sum -= old
		r.sumSq -= old * old
	}

	r.values[idx] = v
	r.sum += v
	r.sumSq += v * v
	r.count++
}

func (r *rollingStats) Full() bool {
	return r.count >= r.window
}

func (r *rollingStats) Mean() float64 {
	return r.sum / float64(r.window)
}

// SampleStdDev returns the sample standard deviation (n-1 denominator) of
// the window. Floating point cancellation can push the variance fractionally
// below zero on constant input; it is clamped so the result stays real.
func (r *rollingStats) SampleStdDev() float64 {
	n := float64(r.window)

	variance := (r.sumSq - r.sum*r.sum/n) / (n - 1)
	if variance < 0 {
		variance = 0
	}

	return math.Sqrt(variance)
}

// emaAccumulator maintains an exponentially weighted moving average with
// smoothing factor 2/(span+1), seeded by the first value.
type emaAccumulator struct {
	alpha  float64
	value  float64
	seeded bool
}

func newEMAAccumulator(span int) *emaAccumulator {
	return &emaAccumulator{
		alpha:  2.0 / (float64(span) + 1.0),
		value:  0,
		seeded: false,
	}
}

func (e *emaAccumulator) Add(v float64) {
	if !e.seeded {
		e.value = v
		e.seeded = true

		return
	}

	e.value = e.alpha*v + (1-e.alpha)*e.value
}

func (e *emaAccumulator) Seeded() bool {
	return e.seeded
}

func (e *emaAccumulator) Value() float64 {
	return e.value
}

// wilderAccumulator maintains Wilder's smoothed average: a plain average of
// the first `period` values, then value = (value*(period-1) + v) / period.
type wilderAccumulator struct {
	period int
	count  int
	sum    float64
	value  float64
}

func newWilderAccumulator(period int) *wilderAccumulator {
	return &wilderAccumulator{
		period: period,
		count:  0,
		sum:    0,
		value:  0,
	}
}

func (w *wilderAccumulator) Add(v float64) {
	w.count++

	if w.count <= w.period {
		w.sum += v
		if w.count == w.period {
			w.value = w.sum / float64(w.period)
		}

		return
	}

	w.value = (w.value*float64(w.period-1) + v) / float64(w.period)
}

func (w *wilderAccumulator) Ready() bool {
	return w.count >= w.period
}

func (w *wilderAccumulator) Value() float64 {
	return w.value
}

// delayLine remembers the value observed `lag` updates before the latest.
type delayLine struct {
	lag    int
	values []float64
	count  int
}

func newDelayLine(lag int) *delayLine {
	return &delayLine{
		lag:    lag,
		values: make([]float64, lag+1),
		count:  0,
	}
}

func (d *delayLine) Add(v float64) {
	d.values[d.count%len(d.values)] = v
	d.count++
}

// Ready reports whether a lagged value exists.
func (d *delayLine) Ready() bool {
	return d.count > d.lag
}

// Lagged returns the value observed lag updates before the latest Add.
func (d *delayLine) Lagged() float64 {
	return d.values[(d.count-1-d.lag)%len(d.values)]
}

type extremaEntry struct {
	index int
	value float64
}

// rollingExtrema tracks the windowed maximum of highs and minimum of lows
// using monotonic deques.
type rollingExtrema struct {
	window   int
	count    int
	maxDeque []extremaEntry
	minDeque []extremaEntry
}

func newRollingExtrema(window int) *rollingExtrema {
	return &rollingExtrema{
		window:   window,
		count:    0,
		maxDeque: nil,
		minDeque: nil,
	}
}

func (r *rollingExtrema) Add(high, low float64) {
	idx := r.count
	r.count++

	for len(r.maxDeque) > 0 && r.maxDeque[len(r.maxDeque)-1].value <= high {
		r.maxDeque = r.maxDeque[:len(r.maxDeque)-1]
	}

	r.maxDeque = append(r.maxDeque, extremaEntry{index: idx, value: high})

	for len(r.minDeque) > 0 && r.minDeque[len(r.minDeque)-1].value >= low {
		r.minDeque = r.minDeque[:len(r.minDeque)-1]
	}

	r.minDeque = append(r.minDeque, extremaEntry{index: idx, value: low})

	oldest := idx - r.window + 1
	r.maxDeque = evictBefore(r.maxDeque, oldest)
	r.minDeque = evictBefore(r.minDeque, oldest)
}

// evictBefore drops entries older than the window by compacting in place,
// keeping the backing array bounded regardless of series length.
func evictBefore(dq []extremaEntry, oldest int) []extremaEntry {
	start := 0
	for start < len(dq) && dq[start].index < oldest {
		start++
	}

	if start > 0 {
		n := copy(dq, dq[start:])
		dq = dq[:n]
	}

	return dq
}

func (r *rollingExtrema) Full() bool {
	return r.count >= r.window
}

func (r *rollingExtrema) Max() float64 {
	return r.maxDeque[0].value
}

func (r *rollingExtrema) Min() float64 {
	return r.minDeque[0].value
}
