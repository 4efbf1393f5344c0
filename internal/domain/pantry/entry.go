package pantry

import (
	"time"

	"github.com/smartgrocer/backend/internal/domain/shared"
)

// Entry represents the on-hand stock of a single item. It is keyed by the
// normalized item name; an entry is created on first purchase and never
// deleted, zero quantity being a valid terminal state.
type Entry struct {
	shared.BaseEntity
	Name        string     `gorm:"uniqueIndex;not null"`
	Quantity    float64    `gorm:"not null;default:0"`
	Unit        string     `gorm:"not null"`
	ExpiryDate  *time.Time // nil means no known expiry
	LastUpdated time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "pantry_entries"
}

// NewEntry creates an empty entry for an item.
func NewEntry(name string) *Entry {
	return &Entry{
		BaseEntity: shared.NewBaseEntity(),
		Name:       NormalizeName(name),
		Unit:       UnitGeneric,
	}
}

// OnHand reports the usable quantity. Negative stored quantities are read as
// zero; the core never writes them but tolerates them.
func (e *Entry) OnHand() float64 {
	if e.Quantity < 0 {
		return 0
	}
	return e.Quantity
}

// AddPurchase applies a purchase: quantity is summed onto the existing stock
// while unit and expiry are overwritten by the latest purchase.
func (e *Entry) AddPurchase(quantity float64, unit string, expiry *time.Time, now time.Time) {
	e.Quantity += quantity
	e.Unit = NormalizeUnit(unit)
	e.ExpiryDate = expiry
	e.LastUpdated = StartOfDay(now)
	e.UpdatedAt = now
}

// ConsumptionRecord is one consumption event for an item. Records are
// append-only. RecordedOn keeps the raw submitted date string; unparseable
// dates still count toward consumed totals but not toward the observation
// window.
type ConsumptionRecord struct {
	shared.BaseEntity
	ItemName   string  `gorm:"index;not null"`
	RecordedOn string  `gorm:"not null"`
	Quantity   float64 `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ConsumptionRecord) TableName() string {
	return "consumption_records"
}

// NewConsumptionRecord creates a consumption record for an item.
func NewConsumptionRecord(itemName, recordedOn string, quantity float64) *ConsumptionRecord {
	return &ConsumptionRecord{
		BaseEntity: shared.NewBaseEntity(),
		ItemName:   NormalizeName(itemName),
		RecordedOn: recordedOn,
		Quantity:   quantity,
	}
}

// PurchaseRecord is one purchase event for an item. Purchases are logged
// separately from consumption so they never skew the usage-rate estimate.
type PurchaseRecord struct {
	shared.BaseEntity
	ItemName    string    `gorm:"index;not null"`
	PurchasedOn time.Time `gorm:"not null"`
	Quantity    float64   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseRecord) TableName() string {
	return "purchase_records"
}

// NewPurchaseRecord creates a purchase record for an item.
func NewPurchaseRecord(itemName string, purchasedOn time.Time, quantity float64) *PurchaseRecord {
	return &PurchaseRecord{
		BaseEntity:  shared.NewBaseEntity(),
		ItemName:    NormalizeName(itemName),
		PurchasedOn: StartOfDay(purchasedOn),
		Quantity:    quantity,
	}
}

// Snapshot is a consistent copy of the inventory keyed by item name, taken at
// the start of a scan or reconciliation so concurrent writes cannot produce a
// torn read mid-computation.
type Snapshot map[string]Entry

// History is a consistent copy of all consumption records keyed by item name.
type History map[string][]ConsumptionRecord
