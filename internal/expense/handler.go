package expense

import (
	"time"

	"cloudk-backend/internal/ledger"
	"cloudk-backend/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RecordExpenseRequest struct {
	Outlet   string  `json:"outlet"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"` // "2025-12-09", defaults to today
	Notes    string  `json:"notes"`
}

type ExpenseResponse struct {
	ID       uint64  `json:"id"`
	Date     string  `json:"date"`
	Outlet   string  `json:"outlet"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes"`
}

func toResponse(e ledger.ExpenseRecord) ExpenseResponse {
	return ExpenseResponse{
		ID:       e.ID,
		Date:     e.Date.Format(web.DateLayout),
		Outlet:   e.Outlet,
		Category: string(e.Category),
		Amount:   web.Round2(e.Amount),
		Notes:    e.Notes,
	}
}

// POST /api/expenses
func RecordExpenseHandler(exp *ledger.Expenses, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var d time.Time
		if body.Date != "" {
			parsed, err := web.ParseDate(body.Date)
			if err != nil {
				return err
			}
			d = parsed
		}

		e, err := exp.Record(body.Outlet, ledger.ExpenseCategory(body.Category), body.Amount, d, body.Notes)
		if err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{
			"expense":  e.ID,
			"outlet":   e.Outlet,
			"category": e.Category,
			"amount":   e.Amount,
		}).Info("expense recorded")
		return c.Status(fiber.StatusCreated).JSON(toResponse(e))
	}
}

// GET /api/expenses?outlet=...&from=...&to=...
func ListExpensesHandler(exp *ledger.Expenses) fiber.Handler {
	return func(c *fiber.Ctx) error {
		outlet := c.Query("outlet")
		if outlet == "" {
			return fiber.NewError(fiber.StatusBadRequest, "outlet query parameter is required")
		}
		from, to, err := web.DateRange(c)
		if err != nil {
			return err
		}

		rows := exp.List(outlet, from, to)
		res := make([]ExpenseResponse, 0, len(rows))
		for _, e := range rows {
			res = append(res, toResponse(e))
		}
		return c.JSON(res)
	}
}

// DELETE /api/expenses/:id
func DeleteExpenseHandler(exp *ledger.Expenses, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParseID(c)
		if err != nil {
			return err
		}

		if err := exp.Delete(id); err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{"expense": id}).Info("expense deleted")
		return c.SendStatus(fiber.StatusNoContent)
	}
}
