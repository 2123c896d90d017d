package ledger

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog owns recipes (dish -> ingredient quantities per unit) and menu
// prices. Dish names are global across outlets.
type Catalog struct {
	s *Store
}

func NewCatalog(s *Store) *Catalog {
	return &Catalog{s: s}
}

// SaveRecipe replaces any existing recipe for the dish wholesale — there is
// no partial update.
func (c *Catalog) SaveRecipe(dish string, ingredients map[string]float64) (Recipe, error) {
	dish = strings.TrimSpace(dish)
	if dish == "" {
		return Recipe{}, fmt.Errorf("dish name is required: %w", ErrValidation)
	}
	if len(ingredients) == 0 {
		return Recipe{}, fmt.Errorf("recipe needs at least one ingredient: %w", ErrValidation)
	}
	for item, qty := range ingredients {
		if strings.TrimSpace(item) == "" {
			return Recipe{}, fmt.Errorf("ingredient name is required: %w", ErrValidation)
		}
		if qty < 0 {
			return Recipe{}, fmt.Errorf("ingredient %q quantity cannot be negative: %w", item, ErrValidation)
		}
	}

	rec := Recipe{Dish: dish, Ingredients: copyIngredients(ingredients)}

	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.recipes[dish] = rec

	return Recipe{Dish: dish, Ingredients: copyIngredients(rec.Ingredients)}, nil
}

// DeleteRecipe removes the recipe and its menu price together.
func (c *Catalog) DeleteRecipe(dish string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.recipes[dish]; !ok {
		return fmt.Errorf("dish %q: %w", dish, ErrUnknownDish)
	}
	delete(c.s.recipes, dish)
	delete(c.s.prices, dish)
	return nil
}

func (c *Catalog) Get(dish string) (Recipe, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	rec, ok := c.s.recipes[dish]
	if !ok {
		return Recipe{}, fmt.Errorf("dish %q: %w", dish, ErrUnknownDish)
	}
	return Recipe{Dish: rec.Dish, Ingredients: copyIngredients(rec.Ingredients)}, nil
}

// List returns all recipes sorted by dish name.
func (c *Catalog) List() []Recipe {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	out := make([]Recipe, 0, len(c.s.recipes))
	for _, rec := range c.s.recipes {
		out = append(out, Recipe{Dish: rec.Dish, Ingredients: copyIngredients(rec.Ingredients)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dish < out[j].Dish })
	return out
}

// SetPrice upserts the menu price. A price without a recipe is rejected —
// orphan prices are not allowed.
func (c *Catalog) SetPrice(dish string, price float64) error {
	if price < 0 {
		return fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}

	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.recipes[dish]; !ok {
		return fmt.Errorf("dish %q: %w", dish, ErrUnknownDish)
	}
	c.s.prices[dish] = price
	return nil
}

// Price returns the menu price and whether one has been set.
func (c *Catalog) Price(dish string) (float64, bool) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	p, ok := c.s.prices[dish]
	return p, ok
}
