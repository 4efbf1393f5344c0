package planning

import "github.com/smartgrocer/backend/internal/domain/pantry"

// ServingSizes maps an ingredient to the nominal quantity one recipe portion
// consumes, in units matching the inventory wherever possible. Ingredients
// absent from the table default to one count per occurrence.
var ServingSizes = map[string]Requirement{
	"milk":                      {Quantity: 0.25, Unit: pantry.UnitLitre},
	"paneer":                    {Quantity: 0.15, Unit: pantry.UnitKilogram},
	"egg":                       {Quantity: 2, Unit: pantry.UnitCount},
	"potato":                    {Quantity: 2, Unit: pantry.UnitCount},
	"onion":                     {Quantity: 1, Unit: pantry.UnitCount},
	"tomato":                    {Quantity: 1, Unit: pantry.UnitCount},
	"rice":                      {Quantity: 0.25, Unit: pantry.UnitKilogram},
	"dal":                       {Quantity: 0.1, Unit: pantry.UnitKilogram},
	"poha":                      {Quantity: 0.15, Unit: pantry.UnitKilogram},
	"sugar":                     {Quantity: 0.05, Unit: pantry.UnitKilogram},
	"cauliflower":               {Quantity: 0.5, Unit: pantry.UnitKilogram},
	"mustard oil":               {Quantity: 0.03, Unit: pantry.UnitLitre},
	"cardamom powder":           {Quantity: 0.005, Unit: pantry.UnitKilogram},
	"cashews":                   {Quantity: 0.02, Unit: pantry.UnitKilogram},
	"almonds":                   {Quantity: 0.02, Unit: pantry.UnitKilogram},
	"raisins":                   {Quantity: 0.02, Unit: pantry.UnitKilogram},
	"saffron":                   {Quantity: 0.0005, Unit: pantry.UnitGram},
	"ginger":                    {Quantity: 0.02, Unit: pantry.UnitKilogram},
	"garlic":                    {Quantity: 0.01, Unit: pantry.UnitKilogram},
	"green chilli":              {Quantity: 2, Unit: pantry.UnitCount},
	"turmeric powder":           {Quantity: 0.005, Unit: pantry.UnitKilogram},
	"red chilli powder":         {Quantity: 0.005, Unit: pantry.UnitKilogram},
	"coriander powder":          {Quantity: 0.01, Unit: pantry.UnitKilogram},
	"cumin powder":              {Quantity: 0.005, Unit: pantry.UnitKilogram},
	"garam masala":              {Quantity: 0.003, Unit: pantry.UnitKilogram},
	"salt":                      {Quantity: 0.01, Unit: pantry.UnitKilogram},
	"cilantro":                  {Quantity: 0.01, Unit: pantry.UnitKilogram},
	"asafoetida (hing, optional)": {Quantity: 0.001, Unit: pantry.UnitKilogram},
}

// defaultServing is assumed for ingredients missing from ServingSizes.
var defaultServing = Requirement{Quantity: 1, Unit: pantry.UnitCount}
