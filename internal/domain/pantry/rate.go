package pantry

import (
	"strconv"
)

// RateEstimator derives an item's average daily consumption.
//
// Precedence: a configured per-item override wins; otherwise recorded history
// is averaged over its observation window; otherwise the static fallback rate
// applies (zero when the item has none).
type RateEstimator struct {
	overrides map[string]string
	defaults  map[string]float64
}

// NewRateEstimator creates an estimator with the given per-item overrides.
// Override values are kept as raw strings so a non-numeric override can fall
// through to history instead of failing the estimate.
func NewRateEstimator(overrides map[string]string) *RateEstimator {
	return &RateEstimator{
		overrides: overrides,
		defaults:  DefaultDailyConsumption,
	}
}

// DailyRate estimates the item's consumption per day from its history.
//
// The observation window is the span between the earliest and latest
// parseable record dates, floored at one day so single-day histories average
// over one day instead of dividing by zero. Records whose dates do not parse
// still contribute their quantity to the total, just not to the window bounds.
func (e *RateEstimator) DailyRate(name string, history []ConsumptionRecord) float64 {
	key := NormalizeName(name)

	if raw, ok := e.overrides[key]; ok {
		if rate, err := strconv.ParseFloat(raw, 64); err == nil {
			return rate
		}
	}

	if len(history) == 0 {
		return e.defaults[key]
	}

	total := 0.0
	var earliest, latest int64 // unix days of the first/last parseable record
	haveWindow := false
	for _, rec := range history {
		total += rec.Quantity
		d, ok := ParseDate(rec.RecordedOn)
		if !ok {
			continue
		}
		day := StartOfDay(d).Unix() / 86400
		if !haveWindow {
			earliest, latest = day, day
			haveWindow = true
			continue
		}
		if day < earliest {
			earliest = day
		}
		if day > latest {
			latest = day
		}
	}

	window := int64(1)
	if haveWindow && latest-earliest > 1 {
		window = latest - earliest
	}
	return total / float64(window)
}
