package report

import (
	"fmt"

	"cloudk-backend/internal/ledger"
	"cloudk-backend/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type PeriodStatsResponse struct {
	Period         string  `json:"period"`
	Revenue        float64 `json:"revenue"`
	Commission     float64 `json:"commission"`
	Delivery       float64 `json:"delivery"`
	IngredientCost float64 `json:"ingredient_cost"`
	NetProfit      float64 `json:"net_profit"`
	Expenses       float64 `json:"expenses"`
	FinalProfit    float64 `json:"final_profit"`
}

func toResponse(b ledger.PeriodStats) PeriodStatsResponse {
	return PeriodStatsResponse{
		Period:         b.Period,
		Revenue:        web.Round2(b.Revenue),
		Commission:     web.Round2(b.Commission),
		Delivery:       web.Round2(b.Delivery),
		IngredientCost: web.Round2(b.IngredientCost),
		NetProfit:      web.Round2(b.NetProfit),
		Expenses:       web.Round2(b.Expenses),
		FinalProfit:    web.Round2(b.FinalProfit),
	}
}

func summarizeFromQuery(c *fiber.Ctx, rep *ledger.Reports) ([]ledger.PeriodStats, string, error) {
	outlet := c.Query("outlet")
	if outlet == "" {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "outlet query parameter is required")
	}
	g, err := ledger.ParseGranularity(c.Query("granularity", string(ledger.ByMonth)))
	if err != nil {
		return nil, "", web.Error(err)
	}
	from, to, err := web.DateRange(c)
	if err != nil {
		return nil, "", err
	}

	stats, err := rep.Summarize(outlet, g, from, to)
	if err != nil {
		return nil, "", web.Error(err)
	}
	return stats, outlet, nil
}

// GET /api/reports/summary?outlet=...&granularity=month&from=...&to=...
func SummaryHandler(rep *ledger.Reports) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, _, err := summarizeFromQuery(c, rep)
		if err != nil {
			return err
		}

		res := make([]PeriodStatsResponse, 0, len(stats))
		for _, b := range stats {
			res = append(res, toResponse(b))
		}
		return c.JSON(res)
	}
}

// GET /api/reports/summary/export — same query parameters, .xlsx out.
func ExportSummaryHandler(rep *ledger.Reports) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, outlet, err := summarizeFromQuery(c, rep)
		if err != nil {
			return err
		}

		f := excelize.NewFile()
		defer f.Close()

		const sheet = "Sheet1"
		headers := []string{"Period", "Revenue", "Commission", "Delivery", "IngredientCost", "NetProfit", "Expenses", "FinalProfit"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for i, b := range stats {
			r := toResponse(b)
			row := i + 2
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Period)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Revenue)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Commission)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Delivery)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.IngredientCost)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.NetProfit)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Expenses)
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.FinalProfit)
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Export could not be written")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s-summary.xlsx", outlet))
		return c.Send(buf.Bytes())
	}
}

// GET /api/reports/dashboard?outlet=...
func DashboardHandler(rep *ledger.Reports) fiber.Handler {
	return func(c *fiber.Ctx) error {
		outlet := c.Query("outlet")
		if outlet == "" {
			return fiber.NewError(fiber.StatusBadRequest, "outlet query parameter is required")
		}

		d := rep.Dashboard(outlet)
		d.Revenue = web.Round2(d.Revenue)
		d.NetProfit = web.Round2(d.NetProfit)
		d.Expenses = web.Round2(d.Expenses)
		d.FinalProfit = web.Round2(d.FinalProfit)
		return c.JSON(d)
	}
}
