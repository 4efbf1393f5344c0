package planning

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/smartgrocer/backend/internal/domain/pantry"
)

// ComputeShortfall compares aggregated requirements against an inventory
// snapshot and returns a purchase suggestion per item not fully covered,
// ordered by the amount to buy, largest first.
//
// On-hand stock in a different unit is converted into the required unit; an
// unsupported conversion counts the stock as zero so unconvertible inventory
// never silently satisfies a need. Amounts to buy of at least 0.01 are
// rounded up to the nearest 0.01; smaller amounts pass through unrounded so a
// tiny need never displays as "0.00 to buy".
func ComputeShortfall(reqs map[string]Requirement, inventory pantry.Snapshot) []ShortfallItem {
	missing := make([]ShortfallItem, 0)
	for item, need := range reqs {
		needUnit := pantry.NormalizeUnit(need.Unit)
		have := 0.0
		haveUnit := needUnit
		if entry, ok := inventory[item]; ok {
			have = entry.OnHand()
			haveUnit = pantry.NormalizeUnit(entry.Unit)
		}

		if have > 0 && haveUnit != needUnit {
			converted, err := pantry.Convert(have, haveUnit, needUnit)
			if err != nil {
				have = 0
			} else {
				have = converted
			}
		}

		if have >= need.Quantity {
			continue
		}

		toBuy := need.Quantity - have
		if toBuy >= 0.01 {
			toBuy = ceilToCent(toBuy)
		}
		missing = append(missing, ShortfallItem{
			Item:     item,
			Required: need.Quantity,
			Have:     have,
			HaveUnit: haveUnit,
			Unit:     needUnit,
			ToBuy:    toBuy,
		})
	}

	sort.SliceStable(missing, func(i, j int) bool {
		if missing[i].ToBuy != missing[j].ToBuy {
			return missing[i].ToBuy > missing[j].ToBuy
		}
		return missing[i].Item < missing[j].Item
	})
	return missing
}

// ceilToCent rounds up to the nearest 0.01 using decimal arithmetic so float
// noise cannot bump a clean value to the next cent.
func ceilToCent(v float64) float64 {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromInt(100)).Ceil().
		Div(decimal.NewFromInt(100)).InexactFloat64()
}
