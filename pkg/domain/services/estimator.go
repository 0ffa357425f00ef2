package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/domain/entities"
)

// Per-guest rates for a baseline-length event, in kg or liters
var (
	beefPerMan   = dec(0.4)
	beefPerWoman = dec(0.25)
	beefPerKid   = dec(0.15)

	chickenPerAdult = dec(0.15)
	chickenPerKid   = dec(0.1)
	sausagePerGuest = dec(0.1)
	porkPerAdult    = dec(0.15)
	porkPerKid      = dec(0.08)

	beerPerDrinker     = dec(1.5)
	beerCanLiters      = dec(0.35)
	sodaPerNonDrinker  = dec(0.6)
	sodaPerBeerDrinker = dec(0.2)
	waterPerGuest      = dec(0.3)

	ricePerGuest   = dec(0.08)
	farofaPerGuest = dec(0.05)
	cheesePerGuest = dec(0.05)
	breadPerGuest  = dec(1.5)
	icePerGuest    = dec(1.5)

	guestsPerUnit = count(5) // vinaigrette portions, garlic heads, charcoal kg
)

// Estimator computes shopping quantities from a configuration
type Estimator struct{}

// NewEstimator creates a new estimator
func NewEstimator() *Estimator {
	return &Estimator{}
}

// DurationFactor scales per-hour items linearly past the baseline and never below 1
func DurationFactor(duration decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.NewFromInt(1), duration.Div(entities.BaselineHours))
}

// Estimate returns the full result set for c. It is pure: the same configuration
// always yields the same result. Guest-based formulas read the breakdown sum,
// never TotalPeople.
func (e *Estimator) Estimate(c entities.Configuration) entities.Result {
	factor := DurationFactor(c.Duration)
	men, women, kids := count(c.Men), count(c.Women), count(c.Kids)
	adults := men.Add(women)
	total := count(c.Guests())

	return entities.Result{
		Meats:  e.meats(c, factor, men, women, kids, adults, total),
		Drinks: e.drinks(c, factor, total),
		Sides:  e.sides(c, total),
		Extras: e.extras(c, total),
	}
}

func (e *Estimator) meats(c entities.Configuration, factor, men, women, kids, adults, total decimal.Decimal) []entities.LineItem {
	beef := men.Mul(beefPerMan).Add(women.Mul(beefPerWoman)).Add(kids.Mul(beefPerKid)).Mul(factor)
	meats := []entities.LineItem{kilograms(entities.Beef, beef)}

	if c.IncludeChicken {
		chicken := adults.Mul(chickenPerAdult).Mul(factor).Add(kids.Mul(chickenPerKid).Mul(factor))
		meats = append(meats, kilograms(entities.Chicken, chicken))
	}
	if c.IncludeSausage {
		meats = append(meats, kilograms(entities.Sausage, total.Mul(sausagePerGuest).Mul(factor)))
	}
	if c.IncludePork {
		pork := adults.Mul(porkPerAdult).Mul(factor).Add(kids.Mul(porkPerKid).Mul(factor))
		meats = append(meats, kilograms(entities.Pork, pork))
	}
	return meats
}

func (e *Estimator) drinks(c entities.Configuration, factor, total decimal.Decimal) []entities.LineItem {
	beerDrinkers := count(c.BeerDrinkers)

	beerLiters := beerDrinkers.Mul(beerPerDrinker).Mul(factor)
	cans := ceilToInt(beerLiters.Div(beerCanLiters))
	beer := entities.NewLineItem(entities.Beer, beerLiters, entities.Liters,
		fmt.Sprintf("%d latas (%sL)", cans, fixed(beerLiters, 0)))
	beer.Cans = cans

	soda := count(c.SoftDrinkOnly).Mul(sodaPerNonDrinker).Mul(factor).
		Add(beerDrinkers.Mul(sodaPerBeerDrinker).Mul(factor))
	water := total.Mul(waterPerGuest).Mul(factor)

	return []entities.LineItem{beer, liters(entities.Soda, soda), liters(entities.Water, water)}
}

// Sides and extras are per event and do not scale with duration.
func (e *Estimator) sides(c entities.Configuration, total decimal.Decimal) []entities.LineItem {
	sides := make([]entities.LineItem, 0, 3)
	if c.IncludeRice {
		sides = append(sides, kilograms(entities.Rice, total.Mul(ricePerGuest)))
	}
	if c.IncludeFarofa {
		sides = append(sides, kilograms(entities.Farofa, total.Mul(farofaPerGuest)))
	}
	if c.IncludeVinaigrette {
		sides = append(sides, whole(entities.Vinaigrette, total.Div(guestsPerUnit), entities.Portions, "porções"))
	}
	return sides
}

func (e *Estimator) extras(c entities.Configuration, total decimal.Decimal) []entities.LineItem {
	extras := make([]entities.LineItem, 0, 5)
	if c.IncludeCheese {
		extras = append(extras, kilograms(entities.Cheese, total.Mul(cheesePerGuest)))
	}
	if c.IncludeBread {
		extras = append(extras, whole(entities.Bread, total.Mul(breadPerGuest), entities.Pieces, "unidades"))
	}
	if c.IncludeGarlic {
		extras = append(extras, whole(entities.Garlic, total.Div(guestsPerUnit), entities.Heads, "cabeças"))
	}
	extras = append(extras,
		whole(entities.Charcoal, total.Div(guestsPerUnit), entities.Kilograms, "kg"),
		whole(entities.Ice, total.Mul(icePerGuest), entities.Kilograms, "kg"),
	)
	return extras
}

func kilograms(kind entities.ItemKind, kg decimal.Decimal) entities.LineItem {
	return entities.NewLineItem(kind, kg, entities.Kilograms, fixed(kg, 1)+" kg")
}

func liters(kind entities.ItemKind, l decimal.Decimal) entities.LineItem {
	return entities.NewLineItem(kind, l, entities.Liters, fixed(l, 1)+" litros")
}

// whole rounds amount up to a whole count of the given unit
func whole(kind entities.ItemKind, amount decimal.Decimal, unit entities.Unit, label string) entities.LineItem {
	n := ceilToInt(amount)
	return entities.NewLineItem(kind, count(n), unit, fmt.Sprintf("%d %s", n, label))
}
