package persistence

import (
	"context"
	"errors"

	"github.com/smartgrocer/backend/internal/domain/pantry"
	"gorm.io/gorm"
)

// GormPreferenceRepository implements pantry.PreferenceRepository using GORM.
// Preferences live in a single row; reading an empty table yields the
// built-in defaults without creating the row.
type GormPreferenceRepository struct {
	db       *gorm.DB
	defaults pantry.Preferences
}

// NewGormPreferenceRepository creates a repository whose defaults are the
// built-in preference values.
func NewGormPreferenceRepository(db *gorm.DB) *GormPreferenceRepository {
	return &GormPreferenceRepository{db: db, defaults: *pantry.DefaultPreferences()}
}

// NewGormPreferenceRepositoryWithDefaults creates a repository seeded with
// configuration-supplied defaults.
func NewGormPreferenceRepositoryWithDefaults(db *gorm.DB, defaults pantry.Preferences) *GormPreferenceRepository {
	defaults.ID = 1
	return &GormPreferenceRepository{db: db, defaults: defaults}
}

// Get returns the stored preferences, or the defaults when none are stored
func (r *GormPreferenceRepository) Get(ctx context.Context) (*pantry.Preferences, error) {
	var prefs pantry.Preferences
	if err := r.db.WithContext(ctx).First(&prefs, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := r.defaults
			return &defaults, nil
		}
		return nil, err
	}
	return &prefs, nil
}

// Save stores the preferences
func (r *GormPreferenceRepository) Save(ctx context.Context, prefs *pantry.Preferences) error {
	prefs.ID = 1
	return r.db.WithContext(ctx).Save(prefs).Error
}
