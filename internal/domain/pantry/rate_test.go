package pantry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func records(recs ...ConsumptionRecord) []ConsumptionRecord {
	return recs
}

func rec(date string, qty float64) ConsumptionRecord {
	return ConsumptionRecord{RecordedOn: date, Quantity: qty}
}

func TestDailyRate_OverrideWins(t *testing.T) {
	e := NewRateEstimator(map[string]string{"milk": "2.5"})
	rate := e.DailyRate("milk", records(rec("2025-01-01", 100)))
	assert.Equal(t, 2.5, rate)
}

func TestDailyRate_InvalidOverrideFallsThrough(t *testing.T) {
	e := NewRateEstimator(map[string]string{"milk": "a lot"})

	// falls through to history
	rate := e.DailyRate("milk", records(rec("2025-01-01", 1), rec("2025-01-03", 1)))
	assert.InDelta(t, 1.0, rate, 1e-9)

	// and to the static default when there is no history
	assert.Equal(t, 1.5, e.DailyRate("milk", nil))
}

func TestDailyRate_NoHistoryUsesStaticDefault(t *testing.T) {
	e := NewRateEstimator(nil)
	assert.Equal(t, 0.4, e.DailyRate("rice", nil))
	assert.Equal(t, 0.0, e.DailyRate("saffron", nil), "unknown item with no default is zero")
}

func TestDailyRate_AveragesOverObservationWindow(t *testing.T) {
	e := NewRateEstimator(nil)
	hist := records(
		rec("2025-01-01", 1.0),
		rec("2025-01-06", 2.0),
		rec("2025-01-11", 3.0),
	)
	// 6 units over a 10 day window
	assert.InDelta(t, 0.6, e.DailyRate("milk", hist), 1e-9)
}

func TestDailyRate_SameDayHistoryUsesOneDayWindow(t *testing.T) {
	e := NewRateEstimator(nil)
	hist := records(rec("2025-01-05", 0.5), rec("2025-01-05", 0.25))
	assert.InDelta(t, 0.75, e.DailyRate("milk", hist), 1e-9)
}

func TestDailyRate_MixedDateFormats(t *testing.T) {
	e := NewRateEstimator(nil)
	hist := records(rec("2025-01-01", 1.0), rec("05/01/2025", 1.0))
	assert.InDelta(t, 0.5, e.DailyRate("milk", hist), 1e-9)
}

func TestDailyRate_UnparseableDatesCountTowardTotalOnly(t *testing.T) {
	e := NewRateEstimator(nil)
	hist := records(
		rec("2025-01-01", 1.0),
		rec("sometime", 4.0), // quantity counts, date does not widen the window
		rec("2025-01-03", 1.0),
	)
	assert.InDelta(t, 3.0, e.DailyRate("milk", hist), 1e-9)
}

func TestDailyRate_AllDatesUnparseable(t *testing.T) {
	e := NewRateEstimator(nil)
	hist := records(rec("??", 2.0), rec("later", 1.0))
	assert.InDelta(t, 3.0, e.DailyRate("milk", hist), 1e-9)
}
