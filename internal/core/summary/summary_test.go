package summary

import (
	"encoding/json"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name           string
		budget         float64
		expenses       float64
		wantRemaining  float64
		wantOverBudget bool
	}{
		{"both zero", 0, 0, 0, false},
		{"under budget", 1000, 400, 600, false},
		{"over budget", 1000, 1500, -500, true},
		{"exactly spent", 300, 300, 0, false},
		{"no budget with expenses", 0, 100, -100, true},
		{"decimal amounts", 100.50, 40.25, 60.25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(TripSummary{
				BudgetTotal:   tt.budget,
				ExpensesTotal: tt.expenses,
			})
			if got.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %v, want %v", got.Remaining, tt.wantRemaining)
			}
			if got.OverBudget != tt.wantOverBudget {
				t.Errorf("OverBudget = %v, want %v", got.OverBudget, tt.wantOverBudget)
			}
		})
	}
}

func TestDecodeMissingFieldsAreZero(t *testing.T) {
	// The server may omit budgetTotal entirely for trips without a budget,
	// or send explicit nulls. Both must decode to zero.
	payloads := map[string]string{
		"omitted": `{"tripId":1,"title":"Lisbon","expensesTotal":100}`,
		"null":    `{"tripId":1,"title":"Lisbon","expensesTotal":100,"budgetTotal":null}`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			var s TripSummary
			if err := json.Unmarshal([]byte(payload), &s); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if s.BudgetTotal != 0 {
				t.Errorf("BudgetTotal = %v, want 0", s.BudgetTotal)
			}

			figures := Compute(s)
			if figures.Remaining != -100 {
				t.Errorf("Remaining = %v, want -100", figures.Remaining)
			}
			if !figures.OverBudget {
				t.Error("OverBudget = false, want true")
			}
		})
	}
}
