// Package summary holds the derived trip summary and the budget arithmetic
// the dashboard keeps fresh through the refresh signal. It is recomputed on
// every fetch and never cached beyond the current render.
package summary

// TripSummary carries the raw figures from GET /trips/{id}/summary. Numeric
// fields the server omits (or sends as null) decode as zero; a trip without
// a budget is a zero budget, not an error.
type TripSummary struct {
	TripID             int64   `json:"tripId"`
	Title              string  `json:"title"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	TotalDays          int     `json:"totalDays"`
	ItineraryDaysCount int     `json:"itineraryDaysCount"`
	ActivitiesCount    int     `json:"activitiesCount"`
	ExpensesCount      int     `json:"expensesCount"`
	ExpensesTotal      float64 `json:"expensesTotal"`
	BudgetTotal        float64 `json:"budgetTotal"`
}

// Figures is the derived budget view of a summary.
type Figures struct {
	Remaining  float64
	OverBudget bool
}

// Compute derives remaining balance and over-budget state. Pure arithmetic,
// no rounding beyond what the server supplied.
func Compute(s TripSummary) Figures {
	remaining := s.BudgetTotal - s.ExpensesTotal
	return Figures{
		Remaining:  remaining,
		OverBudget: remaining < 0,
	}
}
