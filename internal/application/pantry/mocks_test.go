package pantry

import (
	"context"

	"github.com/smartgrocer/backend/internal/domain/pantry"
	"github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock implementation of pantry.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindByName(ctx context.Context, name string) (*pantry.Entry, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pantry.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAll(ctx context.Context) ([]pantry.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pantry.Entry), args.Error(1)
}

func (m *MockEntryRepository) Snapshot(ctx context.Context) (pantry.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pantry.Snapshot), args.Error(1)
}

func (m *MockEntryRepository) Save(ctx context.Context, entry *pantry.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockConsumptionRepository is a mock implementation of pantry.ConsumptionRepository
type MockConsumptionRepository struct {
	mock.Mock
}

func (m *MockConsumptionRepository) Append(ctx context.Context, record *pantry.ConsumptionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockConsumptionRepository) FindByItem(ctx context.Context, itemName string) ([]pantry.ConsumptionRecord, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pantry.ConsumptionRecord), args.Error(1)
}

func (m *MockConsumptionRepository) History(ctx context.Context) (pantry.History, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pantry.History), args.Error(1)
}

// MockPurchaseRepository is a mock implementation of pantry.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Append(ctx context.Context, record *pantry.PurchaseRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindByItem(ctx context.Context, itemName string) ([]pantry.PurchaseRecord, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pantry.PurchaseRecord), args.Error(1)
}

// MockPreferenceRepository is a mock implementation of pantry.PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Get(ctx context.Context) (*pantry.Preferences, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pantry.Preferences), args.Error(1)
}

func (m *MockPreferenceRepository) Save(ctx context.Context, prefs *pantry.Preferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}
