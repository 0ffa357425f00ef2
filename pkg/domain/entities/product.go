package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AffiliateProduct is a recommended accessory linked from the page
type AffiliateProduct struct {
	Name        string          `json:"name"`
	Emoji       string          `json:"emoji"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	URL         string          `json:"url"`
	Badge       string          `json:"badge,omitempty"`
}

// NewAffiliateProduct creates a validated AffiliateProduct
func NewAffiliateProduct(name, emoji, description string, price decimal.Decimal, url, badge string) (*AffiliateProduct, error) {
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative, got %s", price)
	}
	if !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("product url must use https, got %q", url)
	}
	return &AffiliateProduct{
		Name:        name,
		Emoji:       emoji,
		Description: description,
		Price:       price,
		URL:         url,
		Badge:       badge,
	}, nil
}

// FormattedPrice renders the price in reais, e.g. "R$ 89,90"
func (p AffiliateProduct) FormattedPrice() string {
	return "R$ " + strings.Replace(p.Price.StringFixed(2), ".", ",", 1)
}

// AdFormat is the size of an advertising placeholder
type AdFormat string

const (
	AdHorizontal AdFormat = "horizontal"
	AdSmall      AdFormat = "small"
)

// HeightPx returns the reserved height of the slot
func (f AdFormat) HeightPx() int {
	if f == AdSmall {
		return 50
	}
	return 60
}

// AdSlot is a reserved advertising area on the page
type AdSlot struct {
	Format AdFormat
	Client string
	Slot   string
}
