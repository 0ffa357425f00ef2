package services

import (
	"github.com/vsinha/churrasco/pkg/domain/entities"
)

// Split of a total guest count into men and women; kids take the remainder
var (
	menShare         = dec(0.5)
	womenShare       = dec(0.3)
	beerDrinkerShare = dec(0.7)
)

// Reconciler keeps derived configuration fields consistent after a partial edit
type Reconciler struct{}

// NewReconciler creates a new reconciler
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile applies patch on top of previous and returns the new configuration.
//
// A patch that sets TotalPeople re-derives the breakdown and the beer drinkers
// from the new total. A patch that sets men, women or kids recomputes the total
// and clamps beer drinkers to the adult pool. Anything else is a plain overwrite.
// The function never fails and does not validate its input.
func (r *Reconciler) Reconcile(previous entities.Configuration, patch entities.Patch) entities.Configuration {
	switch {
	case patch.TotalPeople != nil:
		return r.fromTotal(previous, patch)
	case patch.TouchesBreakdown():
		return r.fromBreakdown(previous, patch)
	default:
		return applyPlain(previous, patch)
	}
}

func (r *Reconciler) fromTotal(previous entities.Configuration, patch entities.Patch) entities.Configuration {
	next := previous
	total := *patch.TotalPeople

	next.TotalPeople = total
	next.Men = roundToInt(count(total).Mul(menShare))
	next.Women = roundToInt(count(total).Mul(womenShare))
	next.Kids = total - next.Men - next.Women
	if next.Kids < 0 {
		// Only the kids deficit is absorbed; a negative women count is left as is.
		next.Women += next.Kids
		next.Kids = 0
	}

	next.BeerDrinkers = roundToInt(count(next.Men + next.Women).Mul(beerDrinkerShare))
	next.SoftDrinkOnly = next.Men + next.Women - next.BeerDrinkers + next.Kids

	return applyPlain(next, patch)
}

func (r *Reconciler) fromBreakdown(previous entities.Configuration, patch entities.Patch) entities.Configuration {
	next := applyPlain(previous, patch)
	if patch.Men != nil {
		next.Men = *patch.Men
	}
	if patch.Women != nil {
		next.Women = *patch.Women
	}
	if patch.Kids != nil {
		next.Kids = *patch.Kids
	}

	next.TotalPeople = next.Men + next.Women + next.Kids
	next.BeerDrinkers = min(next.BeerDrinkers, next.Men+next.Women)
	next.SoftDrinkOnly = next.TotalPeople - next.BeerDrinkers
	return next
}

// applyPlain overwrites the fields that carry no derivation rules
func applyPlain(c entities.Configuration, patch entities.Patch) entities.Configuration {
	if patch.Duration != nil {
		c.Duration = *patch.Duration
	}
	if patch.BeerDrinkers != nil {
		c.BeerDrinkers = *patch.BeerDrinkers
	}
	if patch.SoftDrinkOnly != nil {
		c.SoftDrinkOnly = *patch.SoftDrinkOnly
	}
	patch.ApplyToggles(&c)
	return c
}

// BeerDrinkersPatch builds the paired edit used when the beer-drinker count changes:
// soft-drink-only guests are everyone else.
func BeerDrinkersPatch(current entities.Configuration, beerDrinkers int) entities.Patch {
	return entities.Patch{
		BeerDrinkers:  entities.Int(beerDrinkers),
		SoftDrinkOnly: entities.Int(current.TotalPeople - beerDrinkers),
	}
}
