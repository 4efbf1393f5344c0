package planning

import (
	"testing"

	"github.com/smartgrocer/backend/internal/domain/pantry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventoryOf(t *testing.T, items ...pantry.Entry) pantry.Snapshot {
	t.Helper()
	snap := make(pantry.Snapshot, len(items))
	for _, e := range items {
		snap[e.Name] = e
	}
	return snap
}

func stocked(name string, qty float64, unit string) pantry.Entry {
	e := pantry.NewEntry(name)
	e.Quantity = qty
	e.Unit = pantry.NormalizeUnit(unit)
	return *e
}

func TestComputeShortfall_MilkExample(t *testing.T) {
	// three 0.25 L servings across 3 days against 0.5 L on hand
	plan := []PlanDay{
		{Day: 1, Uses: []string{"milk"}},
		{Day: 2, Uses: []string{"milk"}},
		{Day: 3, Uses: []string{"milk"}},
	}
	reqs := AggregateRequirements(plan)
	inv := inventoryOf(t, stocked("milk", 0.5, "l"))

	missing := ComputeShortfall(reqs, inv)
	require.Len(t, missing, 1)
	m := missing[0]
	assert.Equal(t, "milk", m.Item)
	assert.InDelta(t, 0.75, m.Required, 1e-9)
	assert.InDelta(t, 0.5, m.Have, 1e-9)
	assert.Equal(t, "l", m.Unit)
	assert.InDelta(t, 0.25, m.ToBuy, 1e-9)
}

func TestComputeShortfall_ConvertsOnHandIntoRequiredUnit(t *testing.T) {
	// 500 ml on hand covers a 0.25 L requirement after conversion
	reqs := map[string]Requirement{"milk": {Quantity: 0.25, Unit: "l"}}
	inv := inventoryOf(t, stocked("milk", 500, "ml"))

	assert.Empty(t, ComputeShortfall(reqs, inv))
}

func TestComputeShortfall_UnsupportedConversionCountsAsZero(t *testing.T) {
	// eggs tracked in kg cannot satisfy a count requirement
	reqs := map[string]Requirement{"egg": {Quantity: 2, Unit: "count"}}
	inv := inventoryOf(t, stocked("egg", 1, "kg"))

	missing := ComputeShortfall(reqs, inv)
	require.Len(t, missing, 1)
	assert.Equal(t, 0.0, missing[0].Have)
	assert.Equal(t, 2.0, missing[0].ToBuy)
	assert.Equal(t, "kg", missing[0].HaveUnit)
}

func TestComputeShortfall_MissingItemDefaultsToZeroHave(t *testing.T) {
	reqs := map[string]Requirement{"paneer": {Quantity: 0.3, Unit: "kg"}}

	missing := ComputeShortfall(reqs, pantry.Snapshot{})
	require.Len(t, missing, 1)
	assert.Equal(t, 0.0, missing[0].Have)
	assert.Equal(t, "kg", missing[0].HaveUnit)
	assert.InDelta(t, 0.3, missing[0].ToBuy, 1e-9)
}

func TestComputeShortfall_CoveredItemsOmitted(t *testing.T) {
	reqs := map[string]Requirement{"rice": {Quantity: 0.25, Unit: "kg"}}
	inv := inventoryOf(t, stocked("rice", 2, "kg"))

	assert.Empty(t, ComputeShortfall(reqs, inv))
}

func TestComputeShortfall_RoundsUpToNearestCent(t *testing.T) {
	reqs := map[string]Requirement{"dal": {Quantity: 0.123, Unit: "kg"}}

	missing := ComputeShortfall(reqs, pantry.Snapshot{})
	require.Len(t, missing, 1)
	assert.Equal(t, 0.13, missing[0].ToBuy)
}

func TestComputeShortfall_SubCentAmountPassesThrough(t *testing.T) {
	reqs := map[string]Requirement{"saffron": {Quantity: 0.0015, Unit: "g"}}

	missing := ComputeShortfall(reqs, pantry.Snapshot{})
	require.Len(t, missing, 1)
	assert.Equal(t, 0.0015, missing[0].ToBuy)
}

func TestComputeShortfall_NegativeStockReadAsZero(t *testing.T) {
	reqs := map[string]Requirement{"rice": {Quantity: 0.5, Unit: "kg"}}
	inv := inventoryOf(t, stocked("rice", -3, "kg"))

	missing := ComputeShortfall(reqs, inv)
	require.Len(t, missing, 1)
	assert.Equal(t, 0.0, missing[0].Have)
	assert.Equal(t, 0.5, missing[0].ToBuy)
}

func TestComputeShortfall_OrderedByToBuyDescending(t *testing.T) {
	reqs := map[string]Requirement{
		"rice":   {Quantity: 0.25, Unit: "kg"},
		"milk":   {Quantity: 0.75, Unit: "l"},
		"potato": {Quantity: 4, Unit: "count"},
	}

	missing := ComputeShortfall(reqs, pantry.Snapshot{})
	require.Len(t, missing, 3)
	assert.Equal(t, "potato", missing[0].Item)
	assert.Equal(t, "milk", missing[1].Item)
	assert.Equal(t, "rice", missing[2].Item)
}
