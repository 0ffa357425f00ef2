package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/domain/entities"
)

func assertConsistent(t *testing.T, c entities.Configuration) {
	t.Helper()
	if v := c.Violations(); len(v) > 0 {
		t.Errorf("configuration %+v is inconsistent: %v", c, v)
	}
}

func TestReconciler_TotalPeople(t *testing.T) {
	r := NewReconciler()

	tests := []struct {
		name         string
		total        int
		men          int
		women        int
		kids         int
		beerDrinkers int
		softOnly     int
	}{
		{"default_total", 10, 5, 3, 2, 6, 4},
		{"single_guest", 1, 1, 0, 0, 1, 0},
		{"two_guests", 2, 1, 1, 0, 1, 1},
		{"four_guests", 4, 2, 1, 1, 2, 2},
		{"thirteen_guests", 13, 7, 4, 2, 8, 5},
		{"fifty_guests", 50, 25, 15, 10, 28, 22},
		{"no_guests", 0, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Reconcile(entities.DefaultConfiguration(), entities.Patch{TotalPeople: entities.Int(tt.total)})

			if got.TotalPeople != tt.total {
				t.Errorf("TotalPeople = %d, want %d", got.TotalPeople, tt.total)
			}
			if got.Men != tt.men || got.Women != tt.women || got.Kids != tt.kids {
				t.Errorf("breakdown = %d/%d/%d, want %d/%d/%d",
					got.Men, got.Women, got.Kids, tt.men, tt.women, tt.kids)
			}
			if got.BeerDrinkers != tt.beerDrinkers {
				t.Errorf("BeerDrinkers = %d, want %d", got.BeerDrinkers, tt.beerDrinkers)
			}
			if got.SoftDrinkOnly != tt.softOnly {
				t.Errorf("SoftDrinkOnly = %d, want %d", got.SoftDrinkOnly, tt.softOnly)
			}
			assertConsistent(t, got)
		})
	}
}

func TestReconciler_TotalPeople_InvariantsAcrossInputRange(t *testing.T) {
	r := NewReconciler()
	prev := entities.DefaultConfiguration()

	for total := 0; total <= 50; total++ {
		got := r.Reconcile(prev, entities.Patch{TotalPeople: entities.Int(total)})
		if got.Men < 0 || got.Women < 0 || got.Kids < 0 {
			t.Fatalf("total %d produced a negative breakdown: %d/%d/%d", total, got.Men, got.Women, got.Kids)
		}
		assertConsistent(t, got)
		prev = got
	}
}

// A negative total is outside the input domain. The kids deficit moves to
// women and nothing else is corrected.
func TestReconciler_TotalPeople_NegativeTotalLeaksIntoWomen(t *testing.T) {
	r := NewReconciler()

	got := r.Reconcile(entities.DefaultConfiguration(), entities.Patch{TotalPeople: entities.Int(-1)})

	if got.Men != 0 || got.Women != -1 || got.Kids != 0 {
		t.Errorf("breakdown = %d/%d/%d, want 0/-1/0", got.Men, got.Women, got.Kids)
	}
	if got.Guests() != got.TotalPeople {
		t.Errorf("breakdown sum %d does not match total %d", got.Guests(), got.TotalPeople)
	}
}

func TestReconciler_TotalPeople_PlainFieldsOverwriteOnTop(t *testing.T) {
	r := NewReconciler()

	got := r.Reconcile(entities.DefaultConfiguration(), entities.Patch{
		TotalPeople:    entities.Int(20),
		Men:            entities.Int(99),
		Duration:       entities.Hours(6),
		IncludePork:    entities.Bool(true),
		BeerDrinkers:   entities.Int(3),
		SoftDrinkOnly:  entities.Int(17),
		IncludeFarofa:  entities.Bool(false),
		IncludeChicken: entities.Bool(true),
	})

	if got.Men != 10 || got.Women != 6 || got.Kids != 4 {
		t.Errorf("breakdown = %d/%d/%d, want 10/6/4", got.Men, got.Women, got.Kids)
	}
	if !got.Duration.Equal(decimal.NewFromInt(6)) {
		t.Errorf("Duration = %s, want 6", got.Duration)
	}
	if !got.IncludePork || got.IncludeFarofa {
		t.Errorf("toggles not applied: pork=%v farofa=%v", got.IncludePork, got.IncludeFarofa)
	}
	if got.BeerDrinkers != 3 || got.SoftDrinkOnly != 17 {
		t.Errorf("beer/soft = %d/%d, want 3/17", got.BeerDrinkers, got.SoftDrinkOnly)
	}
}

func TestReconciler_Breakdown(t *testing.T) {
	r := NewReconciler()

	tests := []struct {
		name         string
		patch        entities.Patch
		total        int
		beerDrinkers int
		softOnly     int
	}{
		{"more_kids", entities.Patch{Kids: entities.Int(10)}, 18, 5, 13},
		{"fewer_men_clamps_beer", entities.Patch{Men: entities.Int(1)}, 6, 4, 2},
		{"no_adults", entities.Patch{Men: entities.Int(0), Women: entities.Int(0)}, 2, 0, 2},
		{"more_women_keeps_beer", entities.Patch{Women: entities.Int(12)}, 19, 5, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Reconcile(entities.DefaultConfiguration(), tt.patch)

			if got.TotalPeople != tt.total {
				t.Errorf("TotalPeople = %d, want %d", got.TotalPeople, tt.total)
			}
			if got.BeerDrinkers != tt.beerDrinkers {
				t.Errorf("BeerDrinkers = %d, want %d", got.BeerDrinkers, tt.beerDrinkers)
			}
			if got.SoftDrinkOnly != tt.softOnly {
				t.Errorf("SoftDrinkOnly = %d, want %d", got.SoftDrinkOnly, tt.softOnly)
			}
			assertConsistent(t, got)
		})
	}
}

func TestReconciler_EmptyPatchIsIdentity(t *testing.T) {
	r := NewReconciler()
	configs := []entities.Configuration{
		entities.DefaultConfiguration(),
		r.Reconcile(entities.DefaultConfiguration(), entities.Patch{TotalPeople: entities.Int(37)}),
		r.Reconcile(entities.DefaultConfiguration(), entities.Patch{Kids: entities.Int(0), Duration: entities.Hours(7.5)}),
	}

	for _, c := range configs {
		if got := r.Reconcile(c, entities.Patch{}); !got.Equal(c) {
			t.Errorf("empty patch changed configuration: %+v -> %+v", c, got)
		}
	}
}

func TestReconciler_PlainUpdate(t *testing.T) {
	r := NewReconciler()
	prev := entities.DefaultConfiguration()

	got := r.Reconcile(prev, entities.Patch{Duration: entities.Hours(5), IncludeGarlic: entities.Bool(false)})

	if !got.Duration.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Duration = %s, want 5", got.Duration)
	}
	if got.IncludeGarlic {
		t.Error("expected garlic toggle to be off")
	}
	if got.Men != prev.Men || got.TotalPeople != prev.TotalPeople || got.BeerDrinkers != prev.BeerDrinkers {
		t.Errorf("plain update touched derived fields: %+v", got)
	}
}

func TestBeerDrinkersPatch(t *testing.T) {
	r := NewReconciler()
	prev := entities.DefaultConfiguration()

	got := r.Reconcile(prev, BeerDrinkersPatch(prev, 8))

	if got.BeerDrinkers != 8 || got.SoftDrinkOnly != 2 {
		t.Errorf("beer/soft = %d/%d, want 8/2", got.BeerDrinkers, got.SoftDrinkOnly)
	}
	assertConsistent(t, got)
}
