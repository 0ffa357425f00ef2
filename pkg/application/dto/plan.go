package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/domain/entities"
)

// Plan is the output of a planner session: the latest configuration, its
// estimate and the summary derived from both
type Plan struct {
	SessionID     string                 `json:"sessionId"`
	Configuration entities.Configuration `json:"configuration"`
	Result        entities.Result        `json:"result"`
	Summary       Summary                `json:"summary"`
	Edits         int                    `json:"edits"`
	ComputedAt    time.Time              `json:"computedAt"`
}

// Summary holds the figures of the visual overview
type Summary struct {
	Guests       int             `json:"guests"`
	GuestsLabel  string          `json:"guestsLabel"`
	Headline     string          `json:"headline"`
	Intensity    *Intensity      `json:"intensity,omitempty"`
	TotalMeatKg  decimal.Decimal `json:"totalMeatKg"`
	TotalLiters  decimal.Decimal `json:"totalLiters"`
	Stats        []Stat          `json:"stats"`
	Meters       []Meter         `json:"meters"`
	Icons        GuestIcons      `json:"icons"`
	Legend       []string        `json:"legend"`
	MeatTags     []string        `json:"meatTags"`
	DrinkTags    []string        `json:"drinkTags"`
	HasGuests    bool            `json:"hasGuests"`
	DurationText string          `json:"durationText"`
}

// Intensity is the size tier of the party
type Intensity struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// Stat is one figure of the summary header row
type Stat struct {
	Emoji string `json:"emoji"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// Meter is a progress bar comparing an amount with a reference maximum
type Meter struct {
	Label   string          `json:"label"`
	Icon    string          `json:"icon"`
	Value   decimal.Decimal `json:"value"`
	Max     decimal.Decimal `json:"max"`
	Percent decimal.Decimal `json:"percent"`
}

// GuestIcons is how many person icons of each kind are drawn
type GuestIcons struct {
	Men      int `json:"men"`
	Women    int `json:"women"`
	Kids     int `json:"kids"`
	Overflow int `json:"overflow"`
}

// Drawn returns the total number of icons drawn
func (g GuestIcons) Drawn() int {
	return g.Men + g.Women + g.Kids
}
