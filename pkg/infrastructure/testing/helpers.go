package testing

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/domain/entities"
	"github.com/vsinha/churrasco/pkg/infrastructure/events"
	"github.com/vsinha/churrasco/pkg/infrastructure/repositories/memory"
)

// Party builds a consistent configuration: beer drinkers come from the
// adults and everyone else drinks soft drinks only. All dishes are enabled.
func Party(men, women, kids, beer int, hours int64) entities.Configuration {
	c := entities.DefaultConfiguration()
	c.Men, c.Women, c.Kids = men, women, kids
	c.TotalPeople = men + women + kids
	c.BeerDrinkers = beer
	c.SoftDrinkOnly = c.TotalPeople - beer
	c.Duration = decimal.NewFromInt(hours)
	c.IncludePork, c.IncludeSausage, c.IncludeChicken = true, true, true
	return c
}

// BuildPlannerTestData wires the in-memory repositories and event store the
// services run against in tests
func BuildPlannerTestData() (*memory.CatalogRepository, *memory.PreferencesRepository, *events.InMemoryEventStore) {
	return memory.NewDefaultCatalogRepository(), memory.NewPreferencesRepository(), events.NewInMemoryEventStore()
}

// LargeParty is the biggest gathering the input bounds allow
func LargeParty() entities.Configuration {
	return Party(25, 15, 10, 40, 8)
}
