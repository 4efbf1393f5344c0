package pantry

// Built-in preference defaults.
const (
	DefaultReminderThresholdDays = 3
	DefaultExpiryDays            = 7
)

// Preferences holds household-wide settings. A single row persists across
// runs and is mutable only through an explicit update.
type Preferences struct {
	ID                    uint `gorm:"primaryKey" json:"-"`
	ReminderThresholdDays int  `gorm:"not null" json:"reminder_threshold_days"`
	DefaultExpiryDays     int  `gorm:"not null" json:"default_expiry_days"`
}

// TableName returns the table name for GORM
func (Preferences) TableName() string {
	return "preferences"
}

// DefaultPreferences returns preferences with the built-in defaults applied.
func DefaultPreferences() *Preferences {
	return &Preferences{
		ID:                    1,
		ReminderThresholdDays: DefaultReminderThresholdDays,
		DefaultExpiryDays:     DefaultExpiryDays,
	}
}
