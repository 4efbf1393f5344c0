package pantry

import "context"

// EntryRepository manages persistence for pantry entries
type EntryRepository interface {
	// FindByName finds an entry by its normalized item name
	FindByName(ctx context.Context, name string) (*Entry, error)
	// FindAll returns all entries
	FindAll(ctx context.Context) ([]Entry, error)
	// Snapshot returns a consistent copy of the inventory keyed by item name
	Snapshot(ctx context.Context) (Snapshot, error)
	// Save creates or updates an entry
	Save(ctx context.Context, entry *Entry) error
}

// ConsumptionRepository manages the append-only consumption history
type ConsumptionRepository interface {
	// Append stores a new consumption record
	Append(ctx context.Context, record *ConsumptionRecord) error
	// FindByItem returns all records for one item
	FindByItem(ctx context.Context, itemName string) ([]ConsumptionRecord, error)
	// History returns a consistent copy of all records keyed by item name
	History(ctx context.Context) (History, error)
}

// PurchaseRepository manages the append-only purchase log
type PurchaseRepository interface {
	// Append stores a new purchase record
	Append(ctx context.Context, record *PurchaseRecord) error
	// FindByItem returns all records for one item
	FindByItem(ctx context.Context, itemName string) ([]PurchaseRecord, error)
}

// PreferenceRepository manages the household preferences row
type PreferenceRepository interface {
	// Get returns the stored preferences, or the defaults when none are stored
	Get(ctx context.Context) (*Preferences, error)
	// Save stores the preferences
	Save(ctx context.Context, prefs *Preferences) error
}
