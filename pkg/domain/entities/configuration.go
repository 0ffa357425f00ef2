package entities

import "github.com/shopspring/decimal"

// BaselineHours is the event length the per-person rates are calibrated for
var BaselineHours = decimal.NewFromInt(4)

// Configuration describes one planned gathering: guests, duration and menu toggles.
// It is a value type; every edit produces a new Configuration.
type Configuration struct {
	TotalPeople   int             `json:"totalPeople"`
	Men           int             `json:"men"`
	Women         int             `json:"women"`
	Kids          int             `json:"kids"`
	Duration      decimal.Decimal `json:"duration"` // hours
	BeerDrinkers  int             `json:"beerDrinkers"`
	SoftDrinkOnly int             `json:"softDrinkOnly"`

	IncludeChicken     bool `json:"includeChicken"`
	IncludeSausage     bool `json:"includeSausage"`
	IncludePork        bool `json:"includePork"`
	IncludeCheese      bool `json:"includeCheese"`
	IncludeBread       bool `json:"includeBread"`
	IncludeGarlic      bool `json:"includeGarlic"`
	IncludeVinaigrette bool `json:"includeVinaigrette"`
	IncludeRice        bool `json:"includeRice"`
	IncludeFarofa      bool `json:"includeFarofa"`
}

// DefaultConfiguration returns the configuration a new session starts from.
// Beer 5 / soft 5 keeps SoftDrinkOnly == TotalPeople-BeerDrinkers; 5 / 3 would not.
func DefaultConfiguration() Configuration {
	return Configuration{
		TotalPeople:        10,
		Men:                5,
		Women:              3,
		Kids:               2,
		Duration:           BaselineHours,
		BeerDrinkers:       5,
		SoftDrinkOnly:      5,
		IncludeChicken:     true,
		IncludeSausage:     true,
		IncludePork:        false,
		IncludeCheese:      true,
		IncludeBread:       true,
		IncludeGarlic:      true,
		IncludeVinaigrette: true,
		IncludeRice:        true,
		IncludeFarofa:      true,
	}
}

// Adults returns the adult pool, the guests eligible to be counted as beer drinkers
func (c Configuration) Adults() int {
	return c.Men + c.Women
}

// Guests returns the breakdown sum. It equals TotalPeople whenever the configuration is consistent.
func (c Configuration) Guests() int {
	return c.Men + c.Women + c.Kids
}

// Equal reports whether two configurations hold the same values
func (c Configuration) Equal(other Configuration) bool {
	if !c.Duration.Equal(other.Duration) {
		return false
	}
	a, b := c, other
	a.Duration, b.Duration = decimal.Zero, decimal.Zero
	return a == b
}

// Violations lists the consistency rules the configuration breaks, empty when consistent
func (c Configuration) Violations() []string {
	var violations []string
	if c.Guests() != c.TotalPeople {
		violations = append(violations, "breakdown does not add up to total people")
	}
	if c.Men < 0 || c.Women < 0 || c.Kids < 0 || c.TotalPeople < 0 {
		violations = append(violations, "guest counts cannot be negative")
	}
	if c.BeerDrinkers < 0 || c.BeerDrinkers > c.Adults() {
		violations = append(violations, "beer drinkers must be between zero and the number of adults")
	}
	if c.SoftDrinkOnly != c.TotalPeople-c.BeerDrinkers {
		violations = append(violations, "soft drink only must equal total people minus beer drinkers")
	}
	return violations
}
