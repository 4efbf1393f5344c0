package pantry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/smartgrocer/backend/internal/domain/pantry"
	"github.com/smartgrocer/backend/internal/domain/shared"
)

// PantryService handles purchase and consumption intake and inventory reads
type PantryService struct {
	entries     pantry.EntryRepository
	consumption pantry.ConsumptionRepository
	purchases   pantry.PurchaseRepository
	prefs       pantry.PreferenceRepository
	now         func() time.Time
}

// PantryServiceOption configures a PantryService.
type PantryServiceOption func(*PantryService)

// WithClock overrides the service's time source, used in tests.
func WithClock(now func() time.Time) PantryServiceOption {
	return func(s *PantryService) {
		s.now = now
	}
}

// NewPantryService creates a new PantryService
func NewPantryService(
	entries pantry.EntryRepository,
	consumption pantry.ConsumptionRepository,
	purchases pantry.PurchaseRepository,
	prefs pantry.PreferenceRepository,
	opts ...PantryServiceOption,
) *PantryService {
	s := &PantryService{
		entries:     entries,
		consumption: consumption,
		purchases:   purchases,
		prefs:       prefs,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddPurchase records a purchase: the quantity is summed onto the item's
// entry while unit and expiry are overwritten by this purchase. A missing
// unit falls back to the item's default unit; a missing or unparseable
// expiry falls back to today plus the configured default shelf life when
// one is set. The purchase is also appended to the purchase log, which is
// kept apart from consumption so restocking never inflates the usage rate.
func (s *PantryService) AddPurchase(ctx context.Context, req AddPurchaseRequest) (*EntryResponse, error) {
	name := pantry.NormalizeName(req.Name)
	if name == "" {
		return nil, shared.ErrInvalidInput
	}
	if req.Quantity <= 0 {
		return nil, shared.ErrInvalidInput
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		if def, ok := pantry.DefaultUnits[name]; ok {
			unit = def
		} else {
			unit = pantry.UnitGeneric
		}
	}

	now := s.now()
	expiry := s.resolveExpiry(ctx, req.Expiry, now)

	entry, err := s.entries.FindByName(ctx, name)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		entry = pantry.NewEntry(name)
	}
	entry.AddPurchase(req.Quantity, unit, expiry, now)

	if err := s.entries.Save(ctx, entry); err != nil {
		return nil, err
	}
	if err := s.purchases.Append(ctx, pantry.NewPurchaseRecord(name, now, req.Quantity)); err != nil {
		return nil, err
	}

	resp := ToEntryResponse(entry)
	return &resp, nil
}

// resolveExpiry parses an explicit expiry date; absent or unparseable dates
// fall back to today + defaultExpiryDays when that preference is positive,
// and to no expiry otherwise.
func (s *PantryService) resolveExpiry(ctx context.Context, raw string, now time.Time) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" && !strings.EqualFold(trimmed, "none") {
		if t, ok := pantry.ParseDate(trimmed); ok {
			return &t
		}
	}
	prefs, err := s.prefs.Get(ctx)
	if err != nil || prefs.DefaultExpiryDays <= 0 {
		return nil
	}
	t := pantry.StartOfDay(now).AddDate(0, 0, prefs.DefaultExpiryDays)
	return &t
}

// RecordConsumption appends a consumption event for an item. The date is
// stored as submitted; a missing date defaults to today in ISO form.
func (s *PantryService) RecordConsumption(ctx context.Context, req RecordConsumptionRequest) (*ConsumptionResponse, error) {
	name := pantry.NormalizeName(req.Name)
	if name == "" {
		return nil, shared.ErrInvalidInput
	}
	if req.Quantity <= 0 {
		return nil, shared.ErrInvalidInput
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = pantry.FormatDate(s.now())
	}

	record := pantry.NewConsumptionRecord(name, date, req.Quantity)
	if err := s.consumption.Append(ctx, record); err != nil {
		return nil, err
	}
	return &ConsumptionResponse{
		Item:       record.ItemName,
		RecordedOn: record.RecordedOn,
		Quantity:   record.Quantity,
	}, nil
}

// ListInventory returns all entries ordered by item name
func (s *PantryService) ListInventory(ctx context.Context) ([]EntryResponse, error) {
	entries, err := s.entries.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses, nil
}
