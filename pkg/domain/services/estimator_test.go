package services

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/domain/entities"
)

func displays(items []entities.LineItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name + ": " + item.Display
	}
	return out
}

func TestEstimator_DefaultConfiguration(t *testing.T) {
	result := NewEstimator().Estimate(entities.DefaultConfiguration())

	tests := []struct {
		name    string
		section []entities.LineItem
		want    []string
	}{
		{"meats", result.Meats, []string{"Carne Bovina: 3.1 kg", "Frango: 1.4 kg", "Linguiça: 1.0 kg"}},
		{"drinks", result.Drinks, []string{"Cerveja: 22 latas (8L)", "Refrigerante: 4.0 litros", "Água: 3.0 litros"}},
		{"sides", result.Sides, []string{"Arroz: 0.8 kg", "Farofa: 0.5 kg", "Vinagrete: 2 porções"}},
		{"extras", result.Extras, []string{
			"Queijo Coalho: 0.5 kg", "Pão de Alho: 15 unidades", "Alho: 2 cabeças", "Carvão: 2 kg", "Gelo: 15 kg",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displays(tt.section); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimator_BeefRoundsHalfUp(t *testing.T) {
	result := NewEstimator().Estimate(entities.DefaultConfiguration())

	beef := result.Meats[0]
	if beef.Kind != entities.Beef {
		t.Fatalf("first meat = %s, want Beef", beef.Kind)
	}
	if !beef.Amount.Equal(decimal.RequireFromString("3.05")) {
		t.Errorf("raw beef = %s, want 3.05", beef.Amount)
	}
	if beef.Display != "3.1 kg" {
		t.Errorf("beef display = %q, want \"3.1 kg\"", beef.Display)
	}
}

func TestEstimator_DurationFactor(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
		beef  string
	}{
		{2, "1", "3.1 kg"},
		{4, "1", "3.1 kg"},
		{6, "1.5", "4.6 kg"},
		{8, "2", "6.1 kg"},
	}

	for _, tt := range tests {
		t.Run(decimal.NewFromFloat(tt.hours).String()+"h", func(t *testing.T) {
			if got := DurationFactor(decimal.NewFromFloat(tt.hours)); !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("DurationFactor(%v) = %s, want %s", tt.hours, got, tt.want)
			}

			c := entities.DefaultConfiguration()
			c.Duration = decimal.NewFromFloat(tt.hours)
			if got := NewEstimator().Estimate(c).Meats[0].Display; got != tt.beef {
				t.Errorf("beef = %q, want %q", got, tt.beef)
			}
		})
	}
}

func TestEstimator_SidesDoNotScaleWithDuration(t *testing.T) {
	e := NewEstimator()
	short := e.Estimate(entities.DefaultConfiguration())

	c := entities.DefaultConfiguration()
	c.Duration = decimal.NewFromInt(8)
	long := e.Estimate(c)

	if !reflect.DeepEqual(displays(short.Sides), displays(long.Sides)) {
		t.Errorf("sides changed with duration: %v vs %v", displays(short.Sides), displays(long.Sides))
	}
	if !reflect.DeepEqual(displays(short.Extras), displays(long.Extras)) {
		t.Errorf("extras changed with duration: %v vs %v", displays(short.Extras), displays(long.Extras))
	}
}

func TestEstimator_BeerCans(t *testing.T) {
	tests := []struct {
		name    string
		drinker int
		cans    int
		display string
	}{
		{"none", 0, 0, "0 latas (0L)"},
		{"exact_multiple", 7, 30, "30 latas (11L)"},
		{"partial_can", 5, 22, "22 latas (8L)"},
		{"one", 1, 5, "5 latas (2L)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := entities.DefaultConfiguration()
			c.BeerDrinkers = tt.drinker
			c.SoftDrinkOnly = c.TotalPeople - tt.drinker

			beer, ok := NewEstimator().Estimate(c).Find(entities.Beer)
			if !ok {
				t.Fatal("beer missing from result")
			}
			if beer.Cans != tt.cans {
				t.Errorf("cans = %d, want %d", beer.Cans, tt.cans)
			}
			if beer.Display != tt.display {
				t.Errorf("display = %q, want %q", beer.Display, tt.display)
			}
		})
	}
}

func TestEstimator_ToggleGating(t *testing.T) {
	toggles := []struct {
		kind entities.ItemKind
		set  func(c *entities.Configuration, on bool)
	}{
		{entities.Chicken, func(c *entities.Configuration, on bool) { c.IncludeChicken = on }},
		{entities.Sausage, func(c *entities.Configuration, on bool) { c.IncludeSausage = on }},
		{entities.Pork, func(c *entities.Configuration, on bool) { c.IncludePork = on }},
		{entities.Rice, func(c *entities.Configuration, on bool) { c.IncludeRice = on }},
		{entities.Farofa, func(c *entities.Configuration, on bool) { c.IncludeFarofa = on }},
		{entities.Vinaigrette, func(c *entities.Configuration, on bool) { c.IncludeVinaigrette = on }},
		{entities.Cheese, func(c *entities.Configuration, on bool) { c.IncludeCheese = on }},
		{entities.Bread, func(c *entities.Configuration, on bool) { c.IncludeBread = on }},
		{entities.Garlic, func(c *entities.Configuration, on bool) { c.IncludeGarlic = on }},
	}
	alwaysPresent := []entities.ItemKind{
		entities.Beef, entities.Beer, entities.Soda, entities.Water, entities.Charcoal, entities.Ice,
	}

	e := NewEstimator()
	for _, tt := range toggles {
		t.Run(tt.kind.String(), func(t *testing.T) {
			for _, on := range []bool{true, false} {
				c := entities.DefaultConfiguration()
				tt.set(&c, on)
				result := e.Estimate(c)

				if result.Has(tt.kind) != on {
					t.Errorf("toggle %v: present = %v", on, result.Has(tt.kind))
				}
				for _, kind := range alwaysPresent {
					if !result.Has(kind) {
						t.Errorf("toggle %v: %s missing", on, kind)
					}
				}
			}
		})
	}
}

func TestEstimator_FixedOrder(t *testing.T) {
	c := entities.DefaultConfiguration()
	c.IncludePork = true
	result := NewEstimator().Estimate(c)

	kinds := func(items []entities.LineItem) []entities.ItemKind {
		out := make([]entities.ItemKind, len(items))
		for i, item := range items {
			out[i] = item.Kind
		}
		return out
	}

	want := [][]entities.ItemKind{
		{entities.Beef, entities.Chicken, entities.Sausage, entities.Pork},
		{entities.Beer, entities.Soda, entities.Water},
		{entities.Rice, entities.Farofa, entities.Vinaigrette},
		{entities.Cheese, entities.Bread, entities.Garlic, entities.Charcoal, entities.Ice},
	}
	for i, section := range result.Sections() {
		if got := kinds(section); !reflect.DeepEqual(got, want[i]) {
			t.Errorf("section %d order = %v, want %v", i, got, want[i])
		}
	}
}

func TestEstimator_NoGuests(t *testing.T) {
	c := entities.DefaultConfiguration()
	c.TotalPeople, c.Men, c.Women, c.Kids, c.BeerDrinkers, c.SoftDrinkOnly = 0, 0, 0, 0, 0, 0

	result := NewEstimator().Estimate(c)

	if len(result.Sides) != 3 || len(result.Extras) != 5 || len(result.Meats) != 3 {
		t.Fatalf("toggled entries should still appear at zero: %d meats, %d sides, %d extras",
			len(result.Meats), len(result.Sides), len(result.Extras))
	}
	for _, section := range result.Sections() {
		for _, item := range section {
			if !item.Amount.IsZero() {
				t.Errorf("%s = %s, want zero", item.Name, item.Amount)
			}
		}
	}
}

func TestEstimator_UsesBreakdownNotTotal(t *testing.T) {
	c := entities.DefaultConfiguration()
	c.TotalPeople = 40

	water, _ := NewEstimator().Estimate(c).Find(entities.Water)
	if !water.Amount.Equal(decimal.NewFromInt(3)) {
		t.Errorf("water = %s, want 3 (from the 10-guest breakdown)", water.Amount)
	}
}

func TestEstimator_Deterministic(t *testing.T) {
	e := NewEstimator()
	c := entities.DefaultConfiguration()
	c.Duration = decimal.RequireFromString("5.5")
	c.IncludePork = true

	first, second := e.Estimate(c), e.Estimate(c)
	for i, section := range first.Sections() {
		if !reflect.DeepEqual(displays(section), displays(second.Sections()[i])) {
			t.Errorf("section %d differs between runs", i)
		}
	}
}

func TestEstimator_Monotonic(t *testing.T) {
	e := NewEstimator()

	amounts := func(c entities.Configuration) map[entities.ItemKind]decimal.Decimal {
		out := make(map[entities.ItemKind]decimal.Decimal)
		for _, section := range e.Estimate(c).Sections() {
			for _, item := range section {
				out[item.Kind] = item.Amount
			}
		}
		return out
	}

	base := entities.DefaultConfiguration()
	base.IncludePork = true

	longer := base
	longer.Duration = decimal.NewFromInt(7)

	moreKids := base
	moreKids.Kids, moreKids.TotalPeople, moreKids.SoftDrinkOnly = 9, 17, 12

	for name, bigger := range map[string]entities.Configuration{"duration": longer, "kids": moreKids} {
		before, after := amounts(base), amounts(bigger)
		for kind, amount := range before {
			if after[kind].LessThan(amount) {
				t.Errorf("increasing %s decreased %s: %s -> %s", name, kind, amount, after[kind])
			}
		}
	}
}
