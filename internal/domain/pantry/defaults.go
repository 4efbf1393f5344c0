package pantry

// Staples are always considered by the reminder scan, whether or not they have
// ever been purchased.
var Staples = []string{"salt", "milk", "atta", "rice", "dal", "onion", "tomato"}

// DefaultUnits maps well-known items to the unit assumed when a purchase does
// not name one. Items absent here default to "unit".
var DefaultUnits = map[string]string{
	"milk":   UnitLitre,
	"paneer": UnitKilogram,
	"salt":   UnitKilogram,
	"atta":   UnitKilogram,
	"rice":   UnitKilogram,
	"dal":    UnitKilogram,
	"onion":  UnitKilogram,
	"tomato": UnitKilogram,
	"egg":    UnitCount,
}

// DefaultDailyConsumption holds static fallback consumption rates
// (quantity per day, in the item's default unit) used when an item has no
// recorded history.
var DefaultDailyConsumption = map[string]float64{
	"milk": 1.5,
	"salt": 0.01,
	"atta": 0.5,
	"rice": 0.4,
	"dal":  0.1,
}
