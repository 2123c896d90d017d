package ledger

import (
	"errors"
	"testing"
)

func TestSaveRecipeReplacesWholesale(t *testing.T) {
	f := newFixture(Options{})
	f.mustRecipe(t, "Pizza", map[string]float64{"Flour": 0.2, "Box": 1})
	f.mustRecipe(t, "Pizza", map[string]float64{"Flour": 0.3})

	rec, err := f.catalog.Get("Pizza")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rec.Ingredients) != 1 || rec.Ingredients["Flour"] != 0.3 {
		t.Errorf("recipe = %v, want the second save only", rec.Ingredients)
	}
}

func TestSaveRecipeValidation(t *testing.T) {
	f := newFixture(Options{})

	if _, err := f.catalog.SaveRecipe(" ", map[string]float64{"Flour": 1}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank dish = %v, want ErrValidation", err)
	}
	if _, err := f.catalog.SaveRecipe("Pizza", nil); !errors.Is(err, ErrValidation) {
		t.Errorf("empty ingredients = %v, want ErrValidation", err)
	}
	if _, err := f.catalog.SaveRecipe("Pizza", map[string]float64{"Flour": -1}); !errors.Is(err, ErrValidation) {
		t.Errorf("negative quantity = %v, want ErrValidation", err)
	}
}

func TestDeleteRecipeDropsPrice(t *testing.T) {
	f := newFixture(Options{})
	f.mustRecipe(t, "Pizza", map[string]float64{"Flour": 0.2})
	if err := f.catalog.SetPrice("Pizza", 199); err != nil {
		t.Fatalf("set price: %v", err)
	}

	if err := f.catalog.DeleteRecipe("Pizza"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := f.catalog.Price("Pizza"); ok {
		t.Error("price survived recipe deletion")
	}
	if _, err := f.catalog.Get("Pizza"); !errors.Is(err, ErrUnknownDish) {
		t.Errorf("get deleted = %v, want ErrUnknownDish", err)
	}
	if err := f.catalog.DeleteRecipe("Pizza"); !errors.Is(err, ErrUnknownDish) {
		t.Errorf("second delete = %v, want ErrUnknownDish", err)
	}
}

func TestSetPriceRequiresRecipe(t *testing.T) {
	f := newFixture(Options{})

	if err := f.catalog.SetPrice("Pizza", 199); !errors.Is(err, ErrUnknownDish) {
		t.Errorf("orphan price = %v, want ErrUnknownDish", err)
	}

	f.mustRecipe(t, "Pizza", map[string]float64{"Flour": 0.2})
	if err := f.catalog.SetPrice("Pizza", -1); !errors.Is(err, ErrValidation) {
		t.Errorf("negative price = %v, want ErrValidation", err)
	}
	if err := f.catalog.SetPrice("Pizza", 199); err != nil {
		t.Fatalf("set price: %v", err)
	}
	if p, ok := f.catalog.Price("Pizza"); !ok || p != 199 {
		t.Errorf("price = %v/%v, want 199", p, ok)
	}
}

func TestListRecipesSorted(t *testing.T) {
	f := newFixture(Options{})
	f.mustRecipe(t, "Pizza", map[string]float64{"Flour": 0.2})
	f.mustRecipe(t, "Bread", map[string]float64{"Flour": 2})

	list := f.catalog.List()
	if len(list) != 2 || list[0].Dish != "Bread" || list[1].Dish != "Pizza" {
		t.Errorf("list = %+v, want sorted by dish", list)
	}
}
