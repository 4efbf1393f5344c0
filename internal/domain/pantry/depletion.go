package pantry

import (
	"math"
	"time"
)

// DaysRemaining estimates how many days remain before an item is gone.
//
// Precedence, first applicable rule wins:
//  1. Item not in inventory: no estimate (ok=false).
//  2. Expiry date known: signed days between today and the expiry date.
//     Negative means already expired, which drives the "seems finished"
//     reminder.
//  3. Otherwise quantity divided by the estimated daily rate. A zero or
//     negative rate yields +Inf: the item is infinitely far from depletion,
//     not unknown, so the reminder engine never nags about items it cannot
//     judge yet.
func DaysRemaining(entry *Entry, rate float64, now time.Time) (float64, bool) {
	if entry == nil {
		return 0, false
	}
	if entry.ExpiryDate != nil {
		return entry.ExpiryDate.Sub(StartOfDay(now)).Hours() / 24, true
	}
	if rate <= 0 {
		return math.Inf(1), true
	}
	return entry.OnHand() / rate, true
}
