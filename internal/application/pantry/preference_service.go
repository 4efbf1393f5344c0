package pantry

import (
	"context"

	"github.com/smartgrocer/backend/internal/domain/pantry"
)

// PreferenceService reads and updates the household preferences row
type PreferenceService struct {
	prefs pantry.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceService
func NewPreferenceService(prefs pantry.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// Get returns the current preferences
func (s *PreferenceService) Get(ctx context.Context) (*PreferencesResponse, error) {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := ToPreferencesResponse(prefs)
	return &resp, nil
}

// Update applies the provided fields onto the stored preferences and
// persists the result. Omitted fields keep their stored value.
func (s *PreferenceService) Update(ctx context.Context, req UpdatePreferencesRequest) (*PreferencesResponse, error) {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.ReminderThresholdDays != nil {
		prefs.ReminderThresholdDays = *req.ReminderThresholdDays
	}
	if req.DefaultExpiryDays != nil {
		prefs.DefaultExpiryDays = *req.DefaultExpiryDays
	}
	if err := s.prefs.Save(ctx, prefs); err != nil {
		return nil, err
	}
	resp := ToPreferencesResponse(prefs)
	return &resp, nil
}
