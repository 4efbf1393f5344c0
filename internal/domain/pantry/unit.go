package pantry

import (
	"strings"

	"github.com/smartgrocer/backend/internal/domain/shared"
)

// Canonical unit names. Anything else an entry carries must still normalize to
// one of these or conversions against it fail closed.
const (
	UnitKilogram = "kg"
	UnitGram     = "g"
	UnitLitre    = "l"
	UnitMilli    = "ml"
	UnitCount    = "count"
	UnitGeneric  = "unit"
)

var gramAliases = map[string]bool{
	"g": true, "gm": true, "gram": true, "grams": true,
}

var milliAliases = map[string]bool{
	"ml": true, "milliliter": true, "millilitre": true,
}

var countAliases = map[string]bool{
	UnitCount: true, UnitGeneric: true,
}

// NormalizeName lowercases and trims an item name. All inventory keys and
// plan ingredients go through this before any lookup.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeUnit lowercases and trims a unit string; an empty unit becomes "unit".
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return UnitGeneric
	}
	return u
}

// Convert converts a value between compatible measurement units.
// Supported pairs are kg<->g and l<->ml at factor 1000, and count<->unit at
// factor 1. Identical units (after normalization) pass through unchanged.
// Every other pairing returns shared.ErrUnsupportedUnit; callers are expected
// to treat the unconvertible quantity as zero rather than guess.
func Convert(value float64, fromUnit, toUnit string) (float64, error) {
	from := NormalizeUnit(fromUnit)
	to := NormalizeUnit(toUnit)

	switch {
	case from == to:
		return value, nil
	case from == UnitKilogram && gramAliases[to]:
		return value * 1000, nil
	case gramAliases[from] && to == UnitKilogram:
		return value / 1000, nil
	case from == UnitLitre && milliAliases[to]:
		return value * 1000, nil
	case milliAliases[from] && to == UnitLitre:
		return value / 1000, nil
	case countAliases[from] && countAliases[to]:
		return value, nil
	}
	return 0, shared.ErrUnsupportedUnit
}
