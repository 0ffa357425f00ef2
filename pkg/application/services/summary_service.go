package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/application/dto"
	"github.com/vsinha/churrasco/pkg/domain/entities"
)

// SummaryConfig holds the reference maxima and icon caps of the visual summary
type SummaryConfig struct {
	MeatMeterKg      decimal.Decimal
	BeerMeterLiters  decimal.Decimal
	OtherMeterLiters decimal.Decimal
	MaxMenIcons      int
	MaxWomenIcons    int
	MaxKidIcons      int
}

// DefaultSummaryConfig returns the limits used by the page
func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{
		MeatMeterKg:      decimal.NewFromInt(30),
		BeerMeterLiters:  decimal.NewFromInt(80),
		OtherMeterLiters: decimal.NewFromInt(40),
		MaxMenIcons:      25,
		MaxWomenIcons:    25,
		MaxKidIcons:      15,
	}
}

// SummaryService derives the visual overview from a configuration and its estimate
type SummaryService struct {
	config SummaryConfig
}

// NewSummaryService creates a summary service with default limits
func NewSummaryService() *SummaryService {
	return NewSummaryServiceWithConfig(DefaultSummaryConfig())
}

// NewSummaryServiceWithConfig creates a summary service with custom limits
func NewSummaryServiceWithConfig(config SummaryConfig) *SummaryService {
	return &SummaryService{config: config}
}

var hundred = decimal.NewFromInt(100)

// Summarize builds the summary. The guest count is the breakdown sum.
func (s *SummaryService) Summarize(c entities.Configuration, r entities.Result) dto.Summary {
	guests := c.Guests()
	meat := r.TotalMeatKg()
	beer := r.DrinkLiters(entities.Beer)
	soda := r.DrinkLiters(entities.Soda)
	water := r.DrinkLiters(entities.Water)
	liters := beer.Add(soda).Add(water)

	summary := dto.Summary{
		Guests:       guests,
		GuestsLabel:  plural(guests, "pessoa", "pessoas"),
		Headline:     "Seu Churrasco",
		TotalMeatKg:  meat,
		TotalLiters:  liters,
		HasGuests:    guests > 0,
		DurationText: fmt.Sprintf("%sh de festa · %d %s", c.Duration, guests, plural(guests, "pessoa", "pessoas")),
		Stats: []dto.Stat{
			{Emoji: "👥", Value: fmt.Sprintf("%d", guests), Label: plural(guests, "convidado", "convidados")},
			{Emoji: "🥩", Value: meat.Round(1).StringFixed(1), Label: "quilos"},
			{Emoji: "🍺", Value: liters.Round(0).StringFixed(0), Label: "litros"},
		},
		Meters: []dto.Meter{
			s.meter("Carne total", "🥩", meat, s.config.MeatMeterKg),
			s.meter("Cerveja", "🍺", beer, s.config.BeerMeterLiters),
			s.meter("Refrigerante + Água", "🥤", soda.Add(water), s.config.OtherMeterLiters),
		},
		Icons: s.icons(c),
	}

	if guests > 0 {
		summary.Intensity = intensity(guests)
	}

	if c.Men > 0 {
		summary.Legend = append(summary.Legend, fmt.Sprintf("%d %s", c.Men, plural(c.Men, "homem", "homens")))
	}
	if c.Women > 0 {
		summary.Legend = append(summary.Legend, fmt.Sprintf("%d %s", c.Women, plural(c.Women, "mulher", "mulheres")))
	}
	if c.Kids > 0 {
		summary.Legend = append(summary.Legend, fmt.Sprintf("%d %s", c.Kids, plural(c.Kids, "criança", "crianças")))
	}

	for _, item := range r.Meats {
		summary.MeatTags = append(summary.MeatTags, item.Emoji+" "+item.Display)
	}
	for i, drink := range r.Drinks {
		if i == 2 {
			break
		}
		summary.DrinkTags = append(summary.DrinkTags, drink.Emoji+" "+drink.Display)
	}

	return summary
}

func (s *SummaryService) meter(label, icon string, value, limit decimal.Decimal) dto.Meter {
	percent := decimal.Zero
	if limit.IsPositive() {
		percent = decimal.Min(value.Div(limit).Mul(hundred), hundred).Round(1)
	}
	return dto.Meter{Label: label, Icon: icon, Value: value, Max: limit, Percent: percent}
}

func (s *SummaryService) icons(c entities.Configuration) dto.GuestIcons {
	icons := dto.GuestIcons{
		Men:   min(max(c.Men, 0), s.config.MaxMenIcons),
		Women: min(max(c.Women, 0), s.config.MaxWomenIcons),
		Kids:  min(max(c.Kids, 0), s.config.MaxKidIcons),
	}
	if overflow := c.Guests() - icons.Drawn(); overflow > 0 {
		icons.Overflow = overflow
	}
	return icons
}

func intensity(guests int) *dto.Intensity {
	switch {
	case guests <= 5:
		return &dto.Intensity{Label: "Churrasquinho", Emoji: "🔥"}
	case guests <= 15:
		return &dto.Intensity{Label: "Churrasco", Emoji: "🔥🔥"}
	case guests <= 30:
		return &dto.Intensity{Label: "Churrascão", Emoji: "🔥🔥🔥"}
	default:
		return &dto.Intensity{Label: "Festival de Carne", Emoji: "🔥🔥🔥🔥"}
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
