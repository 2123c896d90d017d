package outlet

import (
	"net/url"

	"cloudk-backend/internal/ledger"
	"cloudk-backend/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PlatformResponse struct {
	Name              string  `json:"name"`
	CommissionPercent float64 `json:"commission_percent"`
	DeliveryFee       float64 `json:"delivery_fee"`
}

type OutletResponse struct {
	Name      string             `json:"name"`
	CreatedAt string             `json:"created_at"`
	Platforms []PlatformResponse `json:"platforms"`
}

type RegisterOutletRequest struct {
	Name string `json:"name"`
}

type RenameOutletRequest struct {
	Name string `json:"name"`
}

type ConfigurePlatformRequest struct {
	Platform          string  `json:"platform"`
	CommissionPercent float64 `json:"commission_percent"`
	DeliveryFee       float64 `json:"delivery_fee"`
}

func toResponse(o ledger.Outlet) OutletResponse {
	res := OutletResponse{
		Name:      o.Name,
		CreatedAt: o.CreatedAt.Format(web.DateLayout),
		Platforms: make([]PlatformResponse, 0, len(o.Platforms)),
	}
	for _, p := range o.Platforms {
		res.Platforms = append(res.Platforms, PlatformResponse(p))
	}
	return res
}

// nameParam reads the outlet name from the URL path.
func nameParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid outlet name")
	}
	return name, nil
}

// POST /api/outlets
func RegisterOutletHandler(reg *ledger.Registry, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterOutletRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		o, err := reg.Register(body.Name)
		if err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{"outlet": o.Name}).Info("outlet registered")
		return c.Status(fiber.StatusCreated).JSON(toResponse(o))
	}
}

// GET /api/outlets
func ListOutletsHandler(reg *ledger.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		outlets := reg.List()
		res := make([]OutletResponse, 0, len(outlets))
		for _, o := range outlets {
			res = append(res, toResponse(o))
		}
		return c.JSON(res)
	}
}

// PUT /api/outlets/:name
func RenameOutletHandler(reg *ledger.Registry, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		oldName, err := nameParam(c)
		if err != nil {
			return err
		}

		var body RenameOutletRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := reg.Rename(oldName, body.Name); err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{"from": oldName, "to": body.Name}).Info("outlet renamed")
		return c.JSON(fiber.Map{"name": body.Name})
	}
}

// DELETE /api/outlets/:name
func RemoveOutletHandler(reg *ledger.Registry, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := nameParam(c)
		if err != nil {
			return err
		}

		if err := reg.Remove(name); err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{"outlet": name}).Info("outlet removed from active set")
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/outlets/:name/platforms
func ConfigurePlatformHandler(reg *ledger.Registry, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := nameParam(c)
		if err != nil {
			return err
		}

		var body ConfigurePlatformRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		pc, err := reg.ConfigurePlatform(name, body.Platform, body.CommissionPercent, body.DeliveryFee)
		if err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{
			"outlet":     name,
			"platform":   pc.Name,
			"commission": pc.CommissionPercent,
			"delivery":   pc.DeliveryFee,
		}).Info("platform configured")
		return c.JSON(PlatformResponse(pc))
	}
}

// GET /api/outlets/:name/platforms
func ListPlatformsHandler(reg *ledger.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := nameParam(c)
		if err != nil {
			return err
		}

		platforms, err := reg.Platforms(name)
		if err != nil {
			return web.Error(err)
		}

		res := make([]PlatformResponse, 0, len(platforms))
		for _, p := range platforms {
			res = append(res, PlatformResponse(p))
		}
		return c.JSON(res)
	}
}
