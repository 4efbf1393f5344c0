package pantry

import (
	"github.com/smartgrocer/backend/internal/domain/pantry"
)

// AddPurchaseRequest represents a request to record a purchase
type AddPurchaseRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit"`
	Expiry   string  `json:"expiry"` // optional, "2006-01-02", "02/01/2006" or "02-01-2006"
}

// RecordConsumptionRequest represents a request to record a consumption event
type RecordConsumptionRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Date     string  `json:"date"` // optional, defaults to today
}

// EntryResponse represents a pantry entry in API responses
type EntryResponse struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	ExpiryDate  string  `json:"expiry_date,omitempty"`
	LastUpdated string  `json:"last_updated,omitempty"`
}

// ConsumptionResponse represents a stored consumption record
type ConsumptionResponse struct {
	Item       string  `json:"item"`
	RecordedOn string  `json:"recorded_on"`
	Quantity   float64 `json:"quantity"`
}

// ReminderResponse represents one reminder in API responses
type ReminderResponse struct {
	Item          string  `json:"item"`
	DaysRemaining float64 `json:"days_remaining"`
	Message       string  `json:"message"`
}

// PreferencesResponse represents the household preferences
type PreferencesResponse struct {
	ReminderThresholdDays int `json:"reminder_threshold_days"`
	DefaultExpiryDays     int `json:"default_expiry_days"`
}

// UpdatePreferencesRequest represents a preference update. Omitted fields
// keep their stored value.
type UpdatePreferencesRequest struct {
	ReminderThresholdDays *int `json:"reminder_threshold_days" binding:"omitempty,gte=0"`
	DefaultExpiryDays     *int `json:"default_expiry_days" binding:"omitempty,gte=0"`
}

// ToEntryResponse converts a domain entry to an EntryResponse
func ToEntryResponse(entry *pantry.Entry) EntryResponse {
	resp := EntryResponse{
		Name:     entry.Name,
		Quantity: entry.Quantity,
		Unit:     entry.Unit,
	}
	if entry.ExpiryDate != nil {
		resp.ExpiryDate = pantry.FormatDate(*entry.ExpiryDate)
	}
	if !entry.LastUpdated.IsZero() {
		resp.LastUpdated = pantry.FormatDate(entry.LastUpdated)
	}
	return resp
}

// ToReminderResponses converts domain reminders to API responses
func ToReminderResponses(reminders []pantry.Reminder) []ReminderResponse {
	responses := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		responses[i] = ReminderResponse{
			Item:          r.Item,
			DaysRemaining: r.DaysRemaining,
			Message:       r.Message,
		}
	}
	return responses
}

// ToPreferencesResponse converts domain preferences to a PreferencesResponse
func ToPreferencesResponse(prefs *pantry.Preferences) PreferencesResponse {
	return PreferencesResponse{
		ReminderThresholdDays: prefs.ReminderThresholdDays,
		DefaultExpiryDays:     prefs.DefaultExpiryDays,
	}
}
