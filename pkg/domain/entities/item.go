package entities

import "github.com/shopspring/decimal"

// ItemKind identifies a shopping-list item
type ItemKind int

const (
	Beef ItemKind = iota
	Chicken
	Sausage
	Pork
	Beer
	Soda
	Water
	Rice
	Farofa
	Vinaigrette
	Cheese
	Bread
	Garlic
	Charcoal
	Ice
)

// String method for ItemKind enum
func (k ItemKind) String() string {
	switch k {
	case Beef:
		return "Beef"
	case Chicken:
		return "Chicken"
	case Sausage:
		return "Sausage"
	case Pork:
		return "Pork"
	case Beer:
		return "Beer"
	case Soda:
		return "Soda"
	case Water:
		return "Water"
	case Rice:
		return "Rice"
	case Farofa:
		return "Farofa"
	case Vinaigrette:
		return "Vinaigrette"
	case Cheese:
		return "Cheese"
	case Bread:
		return "Bread"
	case Garlic:
		return "Garlic"
	case Charcoal:
		return "Charcoal"
	case Ice:
		return "Ice"
	default:
		return "Unknown"
	}
}

// Label returns the name shown on the shopping list
func (k ItemKind) Label() string {
	switch k {
	case Beef:
		return "Carne Bovina"
	case Chicken:
		return "Frango"
	case Sausage:
		return "Linguiça"
	case Pork:
		return "Porco"
	case Beer:
		return "Cerveja"
	case Soda:
		return "Refrigerante"
	case Water:
		return "Água"
	case Rice:
		return "Arroz"
	case Farofa:
		return "Farofa"
	case Vinaigrette:
		return "Vinagrete"
	case Cheese:
		return "Queijo Coalho"
	case Bread:
		return "Pão de Alho"
	case Garlic:
		return "Alho"
	case Charcoal:
		return "Carvão"
	case Ice:
		return "Gelo"
	default:
		return ""
	}
}

// Emoji returns the icon shown next to the item
func (k ItemKind) Emoji() string {
	switch k {
	case Beef:
		return "🥩"
	case Chicken:
		return "🍗"
	case Sausage:
		return "🌭"
	case Pork:
		return "🐷"
	case Beer:
		return "🍺"
	case Soda:
		return "🥤"
	case Water:
		return "💧"
	case Rice:
		return "🍚"
	case Farofa:
		return "🥄"
	case Vinaigrette:
		return "🥗"
	case Cheese:
		return "🧀"
	case Bread:
		return "🍞"
	case Garlic:
		return "🧄"
	case Charcoal:
		return "⬛"
	case Ice:
		return "🧊"
	default:
		return ""
	}
}

// Unit is the unit an item amount is measured in
type Unit string

const (
	Kilograms Unit = "kg"
	Liters    Unit = "L"
	Portions  Unit = "portions"
	Pieces    Unit = "units"
	Heads     Unit = "heads"
)

// LineItem is one entry of an estimate: the raw amount plus its display string
type LineItem struct {
	Kind    ItemKind        `json:"-"`
	Name    string          `json:"name"`
	Emoji   string          `json:"emoji"`
	Amount  decimal.Decimal `json:"amount"`
	Unit    Unit            `json:"unit"`
	Cans    int             `json:"cans,omitempty"`
	Display string          `json:"quantity"`
}

// NewLineItem builds a line item with the name and icon of its kind
func NewLineItem(kind ItemKind, amount decimal.Decimal, unit Unit, display string) LineItem {
	return LineItem{
		Kind:    kind,
		Name:    kind.Label(),
		Emoji:   kind.Emoji(),
		Amount:  amount,
		Unit:    unit,
		Display: display,
	}
}
