package services

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/domain/entities"
	domain "github.com/vsinha/churrasco/pkg/domain/services"
	testhelpers "github.com/vsinha/churrasco/pkg/infrastructure/testing"
)

func summarize(c entities.Configuration) (entities.Result, *SummaryService) {
	return domain.NewEstimator().Estimate(c), NewSummaryService()
}

func TestSummaryService_DefaultConfiguration(t *testing.T) {
	c := entities.DefaultConfiguration()
	result, svc := summarize(c)
	summary := svc.Summarize(c, result)

	if summary.Guests != 10 || summary.GuestsLabel != "pessoas" {
		t.Errorf("Expected 10 pessoas, got %d %s", summary.Guests, summary.GuestsLabel)
	}
	if summary.DurationText != "4h de festa · 10 pessoas" {
		t.Errorf("Unexpected duration text %q", summary.DurationText)
	}
	if summary.Intensity == nil || summary.Intensity.Label != "Churrasco" || summary.Intensity.Emoji != "🔥🔥" {
		t.Errorf("Expected Churrasco intensity, got %+v", summary.Intensity)
	}
	if !summary.TotalMeatKg.Equal(decimal.RequireFromString("5.45")) {
		t.Errorf("Expected 5.45 kg of meat, got %s", summary.TotalMeatKg)
	}

	wantStats := []string{"10 convidados", "5.5 quilos", "15 litros"}
	for i, stat := range summary.Stats {
		if got := stat.Value + " " + stat.Label; got != wantStats[i] {
			t.Errorf("stat %d = %q, want %q", i, got, wantStats[i])
		}
	}

	wantPercents := []string{"18.2", "9.4", "17.5"}
	for i, meter := range summary.Meters {
		if meter.Percent.String() != wantPercents[i] {
			t.Errorf("meter %s = %s%%, want %s%%", meter.Label, meter.Percent, wantPercents[i])
		}
	}

	if want := []string{"5 homens", "3 mulheres", "2 crianças"}; !reflect.DeepEqual(summary.Legend, want) {
		t.Errorf("legend = %v, want %v", summary.Legend, want)
	}
	if want := []string{"🍺 22 latas (8L)", "🥤 4.0 litros"}; !reflect.DeepEqual(summary.DrinkTags, want) {
		t.Errorf("drink tags = %v, want %v", summary.DrinkTags, want)
	}
	if len(summary.MeatTags) != 3 || summary.MeatTags[0] != "🥩 3.1 kg" {
		t.Errorf("meat tags = %v", summary.MeatTags)
	}
}

func TestSummaryService_Intensity(t *testing.T) {
	tests := []struct {
		men   int
		label string
	}{
		{1, "Churrasquinho"},
		{5, "Churrasquinho"},
		{6, "Churrasco"},
		{15, "Churrasco"},
		{16, "Churrascão"},
		{30, "Churrascão"},
		{31, "Festival de Carne"},
	}

	for _, tt := range tests {
		c := entities.Configuration{Men: tt.men, TotalPeople: tt.men, Duration: decimal.NewFromInt(4)}
		result, svc := summarize(c)
		summary := svc.Summarize(c, result)
		if summary.Intensity == nil || summary.Intensity.Label != tt.label {
			t.Errorf("%d guests: intensity = %+v, want %s", tt.men, summary.Intensity, tt.label)
		}
	}
}

func TestSummaryService_SingleGuestUsesSingular(t *testing.T) {
	c := entities.Configuration{Men: 1, TotalPeople: 1, Duration: decimal.NewFromInt(4)}
	result, svc := summarize(c)
	summary := svc.Summarize(c, result)

	if summary.GuestsLabel != "pessoa" || summary.Stats[0].Label != "convidado" {
		t.Errorf("Expected singular labels, got %q / %q", summary.GuestsLabel, summary.Stats[0].Label)
	}
	if !reflect.DeepEqual(summary.Legend, []string{"1 homem"}) {
		t.Errorf("legend = %v", summary.Legend)
	}
}

func TestSummaryService_NoGuests(t *testing.T) {
	c := entities.Configuration{Duration: decimal.NewFromInt(4)}
	result, svc := summarize(c)
	summary := svc.Summarize(c, result)

	if summary.HasGuests || summary.Intensity != nil {
		t.Errorf("Expected no guests and no intensity, got %+v", summary)
	}
	if len(summary.Legend) != 0 {
		t.Errorf("Expected empty legend, got %v", summary.Legend)
	}
	for _, meter := range summary.Meters {
		if !meter.Percent.IsZero() {
			t.Errorf("meter %s = %s, want 0", meter.Label, meter.Percent)
		}
	}
}

func TestSummaryService_IconsAndMetersAreCapped(t *testing.T) {
	c := entities.Configuration{
		Men: 40, Women: 30, Kids: 20, TotalPeople: 90,
		BeerDrinkers: 70, SoftDrinkOnly: 20,
		Duration: decimal.NewFromInt(8),
	}
	result, svc := summarize(c)
	summary := svc.Summarize(c, result)

	icons := summary.Icons
	if icons.Men != 25 || icons.Women != 25 || icons.Kids != 15 || icons.Overflow != 25 {
		t.Errorf("icons = %+v, want 25/25/15 with 25 overflow", icons)
	}
	for _, meter := range summary.Meters {
		if !meter.Percent.Equal(decimal.NewFromInt(100)) {
			t.Errorf("meter %s = %s, want capped at 100", meter.Label, meter.Percent)
		}
	}
}

func TestSummaryService_LargestParty(t *testing.T) {
	c := testhelpers.LargeParty()
	result, svc := summarize(c)
	summary := svc.Summarize(c, result)

	if summary.Intensity == nil || summary.Intensity.Label != "Festival de Carne" {
		t.Errorf("Expected Festival de Carne, got %+v", summary.Intensity)
	}
	if icons := summary.Icons; icons.Men != 25 || icons.Women != 15 || icons.Kids != 10 || icons.Overflow != 0 {
		t.Errorf("icons = %+v, want 25/15/10 without overflow", icons)
	}
	if len(summary.MeatTags) != 4 {
		t.Errorf("Expected a tag per meat including pork, got %v", summary.MeatTags)
	}
}
