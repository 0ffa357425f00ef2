package entities

import "github.com/shopspring/decimal"

// Result holds the estimated quantities for a configuration.
// It is derived on demand and never stored independently.
type Result struct {
	Meats  []LineItem `json:"meats"`
	Drinks []LineItem `json:"drinks"`
	Sides  []LineItem `json:"sides"`
	Extras []LineItem `json:"extras"`
}

// Sections returns the four item groups in shopping-list order
func (r Result) Sections() [][]LineItem {
	return [][]LineItem{r.Meats, r.Drinks, r.Sides, r.Extras}
}

// Find returns the first item of the given kind
func (r Result) Find(kind ItemKind) (LineItem, bool) {
	for _, section := range r.Sections() {
		for _, item := range section {
			if item.Kind == kind {
				return item, true
			}
		}
	}
	return LineItem{}, false
}

// Has reports whether an item of the given kind is present
func (r Result) Has(kind ItemKind) bool {
	_, ok := r.Find(kind)
	return ok
}

// TotalMeatKg sums the raw amounts of every meat line
func (r Result) TotalMeatKg() decimal.Decimal {
	total := decimal.Zero
	for _, meat := range r.Meats {
		total = total.Add(meat.Amount)
	}
	return total
}

// DrinkLiters returns the raw liters of a drink, zero when absent
func (r Result) DrinkLiters(kind ItemKind) decimal.Decimal {
	for _, drink := range r.Drinks {
		if drink.Kind == kind {
			return drink.Amount
		}
	}
	return decimal.Zero
}
