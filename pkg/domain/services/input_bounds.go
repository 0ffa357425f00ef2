package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/domain/entities"
)

// Range is an inclusive integer interval
type Range struct {
	Min int
	Max int
}

func (r Range) clamp(v int) int {
	return max(r.Min, min(v, r.Max))
}

func (r Range) contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// InputBounds holds the limits the input controls allow. The reconciler and
// estimator accept anything; callers keep edits inside these bounds.
type InputBounds struct {
	TotalPeople Range
	Men         Range
	Women       Range
	Kids        Range
	MinDuration decimal.Decimal
	MaxDuration decimal.Decimal
}

// DefaultInputBounds returns the limits of the planner controls
func DefaultInputBounds() InputBounds {
	return InputBounds{
		TotalPeople: Range{Min: 1, Max: 50},
		Men:         Range{Min: 0, Max: 40},
		Women:       Range{Min: 0, Max: 40},
		Kids:        Range{Min: 0, Max: 20},
		MinDuration: decimal.NewFromInt(2),
		MaxDuration: decimal.NewFromInt(8),
	}
}

// ValidationResult contains the results of validating an edit
type ValidationResult struct {
	Errors []string
}

// Valid reports whether no rule was broken
func (v *ValidationResult) Valid() bool {
	return len(v.Errors) == 0
}

// ValidatePatch reports every field of patch that falls outside the bounds.
// Beer drinkers are checked against the adult pool left once the guest
// fields of patch are applied to current.
func (b InputBounds) ValidatePatch(current entities.Configuration, patch entities.Patch) *ValidationResult {
	result := &ValidationResult{Errors: make([]string, 0)}

	checkRange := func(field entities.Field, v *int, r Range) {
		if v != nil && !r.contains(*v) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s must be between %d and %d, got %d", field, r.Min, r.Max, *v))
		}
	}

	checkRange(entities.FieldTotalPeople, patch.TotalPeople, b.TotalPeople)
	checkRange(entities.FieldMen, patch.Men, b.Men)
	checkRange(entities.FieldWomen, patch.Women, b.Women)
	checkRange(entities.FieldKids, patch.Kids, b.Kids)
	checkRange(entities.FieldBeerDrinkers, patch.BeerDrinkers, Range{Min: 0, Max: adultsAfter(current, patch)})

	if patch.Duration != nil && (patch.Duration.LessThan(b.MinDuration) || patch.Duration.GreaterThan(b.MaxDuration)) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s must be between %s and %s hours, got %s",
				entities.FieldDuration, b.MinDuration, b.MaxDuration, patch.Duration))
	}

	return result
}

// ClampPatch pulls every field of patch into bounds, the way a slider would
func (b InputBounds) ClampPatch(current entities.Configuration, patch entities.Patch) entities.Patch {
	clamped := patch

	clampInt := func(v *int, r Range) *int {
		if v == nil {
			return nil
		}
		return entities.Int(r.clamp(*v))
	}

	clamped.TotalPeople = clampInt(patch.TotalPeople, b.TotalPeople)
	clamped.Men = clampInt(patch.Men, b.Men)
	clamped.Women = clampInt(patch.Women, b.Women)
	clamped.Kids = clampInt(patch.Kids, b.Kids)
	clamped.BeerDrinkers = clampInt(patch.BeerDrinkers, Range{Min: 0, Max: adultsAfter(current, clamped)})

	if patch.Duration != nil {
		d := decimal.Max(b.MinDuration, decimal.Min(*patch.Duration, b.MaxDuration))
		clamped.Duration = &d
	}

	return clamped
}

// adultsAfter is the adult pool once the guest fields of patch are reconciled into current
func adultsAfter(current entities.Configuration, patch entities.Patch) int {
	guests := entities.Patch{
		TotalPeople: patch.TotalPeople,
		Men:         patch.Men,
		Women:       patch.Women,
		Kids:        patch.Kids,
	}
	return NewReconciler().Reconcile(current, guests).Adults()
}
