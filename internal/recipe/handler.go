package recipe

import (
	"net/url"

	"cloudk-backend/internal/ledger"
	"cloudk-backend/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SaveRecipeRequest struct {
	Dish        string             `json:"dish"`
	Ingredients map[string]float64 `json:"ingredients"`
	Price       *float64           `json:"price"` // optional menu price, set in the same call
}

type SetPriceRequest struct {
	Price float64 `json:"price"`
}

type RecipeResponse struct {
	Dish        string             `json:"dish"`
	Ingredients map[string]float64 `json:"ingredients"`
	Price       *float64           `json:"price,omitempty"`
}

func dishParam(c *fiber.Ctx) (string, error) {
	dish, err := url.PathUnescape(c.Params("dish"))
	if err != nil || dish == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid dish name")
	}
	return dish, nil
}

// POST /api/recipes — replaces any existing recipe for the dish wholesale.
func SaveRecipeHandler(cat *ledger.Catalog, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveRecipeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		rec, err := cat.SaveRecipe(body.Dish, body.Ingredients)
		if err != nil {
			return web.Error(err)
		}

		res := RecipeResponse{Dish: rec.Dish, Ingredients: rec.Ingredients}
		if body.Price != nil {
			if err := cat.SetPrice(rec.Dish, *body.Price); err != nil {
				return web.Error(err)
			}
			res.Price = body.Price
		}

		log.WithFields(logrus.Fields{"dish": rec.Dish, "ingredients": len(rec.Ingredients)}).Info("recipe saved")
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// GET /api/recipes
func ListRecipesHandler(cat *ledger.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipes := cat.List()
		res := make([]RecipeResponse, 0, len(recipes))
		for _, rec := range recipes {
			r := RecipeResponse{Dish: rec.Dish, Ingredients: rec.Ingredients}
			if p, ok := cat.Price(rec.Dish); ok {
				price := p
				r.Price = &price
			}
			res = append(res, r)
		}
		return c.JSON(res)
	}
}

// DELETE /api/recipes/:dish — drops the menu price with the recipe.
func DeleteRecipeHandler(cat *ledger.Catalog, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dish, err := dishParam(c)
		if err != nil {
			return err
		}

		if err := cat.DeleteRecipe(dish); err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{"dish": dish}).Info("recipe deleted")
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PUT /api/recipes/:dish/price
func SetPriceHandler(cat *ledger.Catalog, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dish, err := dishParam(c)
		if err != nil {
			return err
		}

		var body SetPriceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := cat.SetPrice(dish, body.Price); err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{"dish": dish, "price": body.Price}).Info("menu price set")
		return c.JSON(fiber.Map{"dish": dish, "price": body.Price})
	}
}
