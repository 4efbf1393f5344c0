package persistence

import (
	"context"
	"errors"

	"github.com/smartgrocer/backend/internal/domain/pantry"
	"github.com/smartgrocer/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEntryRepository implements pantry.EntryRepository using GORM
type GormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GormEntryRepository
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// FindByName finds an entry by its normalized item name
func (r *GormEntryRepository) FindByName(ctx context.Context, name string) (*pantry.Entry, error) {
	var entry pantry.Entry
	if err := r.db.WithContext(ctx).
		Where("name = ?", pantry.NormalizeName(name)).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAll returns all entries ordered by name
func (r *GormEntryRepository) FindAll(ctx context.Context) ([]pantry.Entry, error) {
	var entries []pantry.Entry
	if err := r.db.WithContext(ctx).Order("name").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Snapshot returns a consistent copy of the inventory keyed by item name
func (r *GormEntryRepository) Snapshot(ctx context.Context) (pantry.Snapshot, error) {
	entries, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	snap := make(pantry.Snapshot, len(entries))
	for _, e := range entries {
		snap[e.Name] = e
	}
	return snap, nil
}

// Save creates or updates an entry
func (r *GormEntryRepository) Save(ctx context.Context, entry *pantry.Entry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// GormConsumptionRepository implements pantry.ConsumptionRepository using GORM
type GormConsumptionRepository struct {
	db *gorm.DB
}

// NewGormConsumptionRepository creates a new GormConsumptionRepository
func NewGormConsumptionRepository(db *gorm.DB) *GormConsumptionRepository {
	return &GormConsumptionRepository{db: db}
}

// Append stores a new consumption record
func (r *GormConsumptionRepository) Append(ctx context.Context, record *pantry.ConsumptionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByItem returns all records for one item
func (r *GormConsumptionRepository) FindByItem(ctx context.Context, itemName string) ([]pantry.ConsumptionRecord, error) {
	var records []pantry.ConsumptionRecord
	if err := r.db.WithContext(ctx).
		Where("item_name = ?", pantry.NormalizeName(itemName)).
		Order("created_at").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// History returns a consistent copy of all records keyed by item name
func (r *GormConsumptionRepository) History(ctx context.Context) (pantry.History, error) {
	var records []pantry.ConsumptionRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	history := make(pantry.History)
	for _, rec := range records {
		history[rec.ItemName] = append(history[rec.ItemName], rec)
	}
	return history, nil
}

// GormPurchaseRepository implements pantry.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// Append stores a new purchase record
func (r *GormPurchaseRepository) Append(ctx context.Context, record *pantry.PurchaseRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByItem returns all records for one item
func (r *GormPurchaseRepository) FindByItem(ctx context.Context, itemName string) ([]pantry.PurchaseRecord, error) {
	var records []pantry.PurchaseRecord
	if err := r.db.WithContext(ctx).
		Where("item_name = ?", pantry.NormalizeName(itemName)).
		Order("created_at").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
