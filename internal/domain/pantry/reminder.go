package pantry

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Reminder is one low-stock or expiry alert.
type Reminder struct {
	Item          string  `json:"item"`
	DaysRemaining float64 `json:"days_remaining"`
	Message       string  `json:"message"`
}

// ReminderEngine scans the pantry for items running low or expiring soon.
type ReminderEngine struct {
	estimator *RateEstimator
	staples   []string
	now       func() time.Time
	titler    cases.Caser
}

// ReminderOption configures a ReminderEngine.
type ReminderOption func(*ReminderEngine)

// WithClock overrides the engine's time source, used in tests.
func WithClock(now func() time.Time) ReminderOption {
	return func(e *ReminderEngine) {
		e.now = now
	}
}

// NewReminderEngine creates a reminder engine using the given rate estimator.
func NewReminderEngine(estimator *RateEstimator, opts ...ReminderOption) *ReminderEngine {
	e := &ReminderEngine{
		estimator: estimator,
		staples:   Staples,
		now:       time.Now,
		titler:    cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scan produces reminders for every candidate item whose estimated days
// remaining is at or below thresholdDays, most urgent first.
//
// Candidates are the union of the inventory, the items with a static fallback
// rate and the household staples, so a staple is considered even before its
// first recorded purchase. Items already in the cart are suppressed
// case-insensitively; items with no estimate or an infinite one are skipped.
func (e *ReminderEngine) Scan(snapshot Snapshot, history History, thresholdDays int, cart []string) []Reminder {
	inCart := make(map[string]bool, len(cart))
	for _, c := range cart {
		inCart[NormalizeName(c)] = true
	}

	candidates := make(map[string]bool)
	for name := range snapshot {
		candidates[NormalizeName(name)] = true
	}
	for name := range DefaultDailyConsumption {
		candidates[name] = true
	}
	for _, name := range e.staples {
		candidates[name] = true
	}

	now := e.now()
	threshold := float64(thresholdDays)
	reminders := make([]Reminder, 0)
	for item := range candidates {
		var entry *Entry
		if snap, ok := snapshot[item]; ok {
			entry = &snap
		}
		rate := e.estimator.DailyRate(item, history[item])
		days, ok := DaysRemaining(entry, rate, now)
		if !ok || math.IsInf(days, 1) {
			continue
		}
		if inCart[item] {
			continue
		}
		if days > threshold {
			continue
		}
		reminders = append(reminders, Reminder{
			Item:          item,
			DaysRemaining: days,
			Message:       e.message(item, days),
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		if reminders[i].DaysRemaining != reminders[j].DaysRemaining {
			return reminders[i].DaysRemaining < reminders[j].DaysRemaining
		}
		return reminders[i].Item < reminders[j].Item
	})
	return reminders
}

// message phrases a reminder as an add-to-cart prompt, tiered by urgency.
func (e *ReminderEngine) message(item string, days float64) string {
	title := e.titler.String(item)
	switch {
	case days <= 0:
		return fmt.Sprintf("%s seems finished. Add to cart?", title)
	case days < 1:
		return fmt.Sprintf("%s likely less than a day left. Add to cart?", title)
	default:
		return fmt.Sprintf("%s about %d day(s) left. Add to cart?", title, int(math.Floor(days)))
	}
}
