// Package integration provides integration testing for the SmartGrocer
// backend API. Tests run the full HTTP stack over a fresh in-memory SQLite
// database per test.
package integration

import (
	"testing"

	"github.com/smartgrocer/backend/internal/domain/pantry"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory database with the full schema migrated
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory database")

	require.NoError(t, db.AutoMigrate(
		&pantry.Entry{},
		&pantry.ConsumptionRecord{},
		&pantry.PurchaseRecord{},
		&pantry.Preferences{},
	), "Failed to migrate schema")

	return db
}
