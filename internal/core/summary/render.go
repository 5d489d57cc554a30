package summary

import (
	"github.com/cbroglie/mustache"
	"github.com/dustin/go-humanize"
)

// RenderTemplate renders a summary through a mustache template (the built-in
// default or the user's override file). Monetary values are comma-grouped
// and tagged with the configured currency when one is set.
func RenderTemplate(tpl string, s TripSummary, currency string) (string, error) {
	figures := Compute(s)

	money := func(v float64) string {
		out := humanize.CommafWithDigits(v, 2)
		if currency != "" {
			out += " " + currency
		}
		return out
	}

	ctx := map[string]interface{}{
		"tripId":             s.TripID,
		"title":              s.Title,
		"startDate":          s.StartDate,
		"endDate":            s.EndDate,
		"totalDays":          s.TotalDays,
		"itineraryDaysCount": s.ItineraryDaysCount,
		"activitiesCount":    s.ActivitiesCount,
		"expensesCount":      s.ExpensesCount,
		"expensesTotal":      money(s.ExpensesTotal),
		"budgetTotal":        money(s.BudgetTotal),
		"remaining":          money(figures.Remaining),
		"overBudget":         figures.OverBudget,
		"overrun":            money(-figures.Remaining),
	}

	return mustache.Render(tpl, ctx)
}
