// Package web holds the small glue shared by every handler package: mapping
// core errors onto HTTP statuses, query parsing and display rounding.
package web

import (
	"errors"
	"fmt"
	"time"

	"cloudk-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Error translates a core error into the fiber error the central handler
// renders. Unknown errors pass through and surface as a 500.
func Error(err error) error {
	var ins *ledger.InsufficientStockError
	switch {
	case errors.As(err, &ins):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ledger.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrDuplicate), errors.Is(err, ledger.ErrLastOutlet):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, ledger.ErrUnknownOutlet),
		errors.Is(err, ledger.ErrUnknownDish):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return err
}

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
	}
	return d, nil
}

// DateRange reads the optional from/to query parameters. A missing bound
// stays the zero time (open end).
func DateRange(c *fiber.Ctx) (from, to time.Time, err error) {
	if s := c.Query("from"); s != "" {
		if from, err = ParseDate(s); err != nil {
			return
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = ParseDate(s); err != nil {
			return
		}
		// make "to" inclusive of the whole day
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return
}

func ParseID(c *fiber.Ctx) (uint64, error) {
	var id uint64
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

// Round2 rounds a monetary value for display. The core keeps full precision;
// rounding happens only here, at the response edge.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
