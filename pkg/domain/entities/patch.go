package entities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names a configurable field, as used in edit scripts and -set flags
type Field string

const (
	FieldTotalPeople        Field = "total_people"
	FieldMen                Field = "men"
	FieldWomen              Field = "women"
	FieldKids               Field = "kids"
	FieldDuration           Field = "duration"
	FieldBeerDrinkers       Field = "beer_drinkers"
	FieldSoftDrinkOnly      Field = "soft_drink_only"
	FieldIncludeChicken     Field = "include_chicken"
	FieldIncludeSausage     Field = "include_sausage"
	FieldIncludePork        Field = "include_pork"
	FieldIncludeCheese      Field = "include_cheese"
	FieldIncludeBread       Field = "include_bread"
	FieldIncludeGarlic      Field = "include_garlic"
	FieldIncludeVinaigrette Field = "include_vinaigrette"
	FieldIncludeRice        Field = "include_rice"
	FieldIncludeFarofa      Field = "include_farofa"
)

// Patch is a partial configuration. A nil field is left untouched.
type Patch struct {
	TotalPeople   *int
	Men           *int
	Women         *int
	Kids          *int
	Duration      *decimal.Decimal
	BeerDrinkers  *int
	SoftDrinkOnly *int

	IncludeChicken     *bool
	IncludeSausage     *bool
	IncludePork        *bool
	IncludeCheese      *bool
	IncludeBread       *bool
	IncludeGarlic      *bool
	IncludeVinaigrette *bool
	IncludeRice        *bool
	IncludeFarofa      *bool
}

// Int returns a pointer to v, for building patches
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for building patches
func Bool(v bool) *bool { return &v }

// Hours returns a pointer to a decimal duration, for building patches
func Hours(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// TouchesBreakdown reports whether the patch sets men, women or kids directly
func (p Patch) TouchesBreakdown() bool {
	return p.Men != nil || p.Women != nil || p.Kids != nil
}

// IsEmpty reports whether the patch sets no field at all
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Set assigns one field from its textual form, e.g. Set("kids", "4") or Set("include_pork", "true")
func (p *Patch) Set(field, value string) error {
	name := Field(strings.ToLower(strings.TrimSpace(field)))
	value = strings.TrimSpace(value)

	if toggle, ok := p.toggles()[name]; ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", value, name, err)
		}
		*toggle = &b
		return nil
	}

	if name == FieldDuration {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", value, name, err)
		}
		p.Duration = &d
		return nil
	}

	var target **int
	switch name {
	case FieldTotalPeople:
		target = &p.TotalPeople
	case FieldMen:
		target = &p.Men
	case FieldWomen:
		target = &p.Women
	case FieldKids:
		target = &p.Kids
	case FieldBeerDrinkers:
		target = &p.BeerDrinkers
	case FieldSoftDrinkOnly:
		target = &p.SoftDrinkOnly
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, name, err)
	}
	*target = &n
	return nil
}

// ApplyToggles overwrites the menu toggles of c with those set in p
func (p Patch) ApplyToggles(c *Configuration) {
	targets := map[Field]*bool{
		FieldIncludeChicken:     &c.IncludeChicken,
		FieldIncludeSausage:     &c.IncludeSausage,
		FieldIncludePork:        &c.IncludePork,
		FieldIncludeCheese:      &c.IncludeCheese,
		FieldIncludeBread:       &c.IncludeBread,
		FieldIncludeGarlic:      &c.IncludeGarlic,
		FieldIncludeVinaigrette: &c.IncludeVinaigrette,
		FieldIncludeRice:        &c.IncludeRice,
		FieldIncludeFarofa:      &c.IncludeFarofa,
	}
	for field, flag := range p.toggles() {
		if *flag != nil {
			*targets[field] = **flag
		}
	}
}

func (p *Patch) toggles() map[Field]**bool {
	return map[Field]**bool{
		FieldIncludeChicken:     &p.IncludeChicken,
		FieldIncludeSausage:     &p.IncludeSausage,
		FieldIncludePork:        &p.IncludePork,
		FieldIncludeCheese:      &p.IncludeCheese,
		FieldIncludeBread:       &p.IncludeBread,
		FieldIncludeGarlic:      &p.IncludeGarlic,
		FieldIncludeVinaigrette: &p.IncludeVinaigrette,
		FieldIncludeRice:        &p.IncludeRice,
		FieldIncludeFarofa:      &p.IncludeFarofa,
	}
}
