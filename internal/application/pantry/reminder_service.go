package pantry

import (
	"context"

	"github.com/smartgrocer/backend/internal/domain/pantry"
)

// ReminderService runs reminder scans over consistent copies of the
// inventory and the consumption history.
type ReminderService struct {
	entries     pantry.EntryRepository
	consumption pantry.ConsumptionRepository
	prefs       pantry.PreferenceRepository
	engine      *pantry.ReminderEngine
}

// NewReminderService creates a new ReminderService
func NewReminderService(
	entries pantry.EntryRepository,
	consumption pantry.ConsumptionRepository,
	prefs pantry.PreferenceRepository,
	engine *pantry.ReminderEngine,
) *ReminderService {
	return &ReminderService{
		entries:     entries,
		consumption: consumption,
		prefs:       prefs,
		engine:      engine,
	}
}

// Scan returns the current reminders, most urgent first. Items already in
// the cart are suppressed case-insensitively.
func (s *ReminderService) Scan(ctx context.Context, cart []string) ([]ReminderResponse, error) {
	reminders, err := s.scan(ctx, cart)
	if err != nil {
		return nil, err
	}
	return ToReminderResponses(reminders), nil
}

// ExpiringItems returns the names of the items the current scan would
// remind about, used to seed plan generation.
func (s *ReminderService) ExpiringItems(ctx context.Context) ([]string, error) {
	reminders, err := s.scan(ctx, nil)
	if err != nil {
		return nil, err
	}
	items := make([]string, len(reminders))
	for i, r := range reminders {
		items[i] = r.Item
	}
	return items, nil
}

func (s *ReminderService) scan(ctx context.Context, cart []string) ([]pantry.Reminder, error) {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.entries.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.consumption.History(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Scan(snapshot, history, prefs.ReminderThresholdDays, cart), nil
}
