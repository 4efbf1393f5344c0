package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	pantryapp "github.com/smartgrocer/backend/internal/application/pantry"
	planningapp "github.com/smartgrocer/backend/internal/application/planning"
	"github.com/smartgrocer/backend/internal/domain/pantry"
	"github.com/smartgrocer/backend/internal/domain/planning"
	"github.com/smartgrocer/backend/internal/domain/shared"
	"github.com/smartgrocer/backend/internal/interfaces/http/dto"
	"github.com/smartgrocer/backend/internal/interfaces/http/middleware"
	"github.com/smartgrocer/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
)

var handlerTestNow = time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

// In-memory repository fakes

type fakeEntryRepo struct {
	entries map[string]*pantry.Entry
	err     error
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]*pantry.Entry)}
}

func (f *fakeEntryRepo) FindByName(_ context.Context, name string) (*pantry.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if entry, ok := f.entries[pantry.NormalizeName(name)]; ok {
		return entry, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakeEntryRepo) FindAll(_ context.Context) ([]pantry.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]string, 0, len(f.entries))
	for name := range f.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	result := make([]pantry.Entry, 0, len(names))
	for _, name := range names {
		result = append(result, *f.entries[name])
	}
	return result, nil
}

func (f *fakeEntryRepo) Snapshot(_ context.Context) (pantry.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	snap := make(pantry.Snapshot, len(f.entries))
	for name, entry := range f.entries {
		snap[name] = *entry
	}
	return snap, nil
}

func (f *fakeEntryRepo) Save(_ context.Context, entry *pantry.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.entries[entry.Name] = entry
	return nil
}

type fakeConsumptionRepo struct {
	records []*pantry.ConsumptionRecord
}

func (f *fakeConsumptionRepo) Append(_ context.Context, record *pantry.ConsumptionRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeConsumptionRepo) FindByItem(_ context.Context, itemName string) ([]pantry.ConsumptionRecord, error) {
	key := pantry.NormalizeName(itemName)
	var result []pantry.ConsumptionRecord
	for _, r := range f.records {
		if r.ItemName == key {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (f *fakeConsumptionRepo) History(_ context.Context) (pantry.History, error) {
	history := make(pantry.History)
	for _, r := range f.records {
		history[r.ItemName] = append(history[r.ItemName], *r)
	}
	return history, nil
}

type fakePurchaseRepo struct {
	records []*pantry.PurchaseRecord
}

func (f *fakePurchaseRepo) Append(_ context.Context, record *pantry.PurchaseRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakePurchaseRepo) FindByItem(_ context.Context, itemName string) ([]pantry.PurchaseRecord, error) {
	key := pantry.NormalizeName(itemName)
	var result []pantry.PurchaseRecord
	for _, r := range f.records {
		if r.ItemName == key {
			result = append(result, *r)
		}
	}
	return result, nil
}

type fakePreferenceRepo struct {
	prefs *pantry.Preferences
}

func (f *fakePreferenceRepo) Get(_ context.Context) (*pantry.Preferences, error) {
	if f.prefs == nil {
		return pantry.DefaultPreferences(), nil
	}
	copied := *f.prefs
	return &copied, nil
}

func (f *fakePreferenceRepo) Save(_ context.Context, prefs *pantry.Preferences) error {
	copied := *prefs
	f.prefs = &copied
	return nil
}

// testEnv wires real services over in-memory fakes behind a test engine
type testEnv struct {
	engine      *gin.Engine
	entries     *fakeEntryRepo
	consumption *fakeConsumptionRepo
	purchases   *fakePurchaseRepo
	prefs       *fakePreferenceRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		entries:     newFakeEntryRepo(),
		consumption: &fakeConsumptionRepo{},
		purchases:   &fakePurchaseRepo{},
		prefs:       &fakePreferenceRepo{},
	}

	clock := func() time.Time { return handlerTestNow }
	pantrySvc := pantryapp.NewPantryService(env.entries, env.consumption, env.purchases, env.prefs,
		pantryapp.WithClock(clock))
	engine := pantry.NewReminderEngine(pantry.NewRateEstimator(nil), pantry.WithClock(clock))
	reminderSvc := pantryapp.NewReminderService(env.entries, env.consumption, env.prefs, engine)
	preferenceSvc := pantryapp.NewPreferenceService(env.prefs)
	planSvc := planningapp.NewPlanService(planning.NewRecipePlanner(), env.entries, reminderSvc, 3)

	env.engine = gin.New()
	env.engine.Use(middleware.RequestID())
	router.NewRouter(env.engine).
		Register(NewPantryHandler(pantrySvc, reminderSvc)).
		Register(NewPreferenceHandler(preferenceSvc)).
		Register(NewPlanHandler(planSvc)).
		Setup()

	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	var resp dto.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (env *testEnv) seedEntry(name string, quantity float64, unit string, expiry *time.Time) {
	entry := pantry.NewEntry(name)
	entry.AddPurchase(quantity, unit, expiry, handlerTestNow)
	env.entries.entries[entry.Name] = entry
}

func dataAsMap(t *testing.T, resp dto.Response) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "response data is not an object: %T", resp.Data)
	return m
}

func dataAsSlice(t *testing.T, resp dto.Response) []any {
	t.Helper()
	s, ok := resp.Data.([]any)
	require.True(t, ok, "response data is not an array: %T", resp.Data)
	return s
}
