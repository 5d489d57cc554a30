package models

import "errors"

// ExpenseCategory enumerates the backend's expense categories.
type ExpenseCategory string

const (
	ExpenseFood      ExpenseCategory = "FOOD"
	ExpenseTransport ExpenseCategory = "TRANSPORT"
	ExpenseLodging   ExpenseCategory = "LODGING"
	ExpenseTickets   ExpenseCategory = "TICKETS"
	ExpenseShopping  ExpenseCategory = "SHOPPING"
	ExpenseOther     ExpenseCategory = "OTHER"
)

// ExpenseCategories lists all categories in display order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		ExpenseFood,
		ExpenseTransport,
		ExpenseLodging,
		ExpenseTickets,
		ExpenseShopping,
		ExpenseOther,
	}
}

// Valid reports whether c is a known category.
func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Expense belongs to exactly one trip.
type Expense struct {
	ID        int64           `json:"id"`
	TripID    int64           `json:"tripId"`
	Title     string          `json:"title"`
	Amount    float64         `json:"amount"`
	Category  ExpenseCategory `json:"category"`
	SpentAt   string          `json:"spentAt"` // yyyy-MM-dd or full ISO timestamp
	Currency  string          `json:"currency"`
	CreatedAt string          `json:"createdAt"`
}

// ExpenseCreateRequest is the payload for POST /expenses.
type ExpenseCreateRequest struct {
	TripID   int64           `json:"tripId"`
	Title    string          `json:"title"`
	Amount   float64         `json:"amount"`
	Category ExpenseCategory `json:"category"`
	SpentAt  string          `json:"spentAt,omitempty"` // "yyyy-MM-ddT00:00:00"
	Currency string          `json:"currency,omitempty"`
}

// Validate checks the request before it reaches the network. Amounts must be
// strictly positive; a zero-amount expense never leaves the client.
func (r *ExpenseCreateRequest) Validate() error {
	if r.TripID <= 0 {
		return errors.New("trip id is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if !r.Category.Valid() {
		return errors.New("unknown expense category")
	}
	return nil
}

// ExpenseUpdateRequest is the payload for PUT /expenses/{id}.
type ExpenseUpdateRequest struct {
	Title    string          `json:"title"`
	Amount   float64         `json:"amount"`
	Category ExpenseCategory `json:"category"`
	SpentAt  string          `json:"spentAt,omitempty"`
	Currency string          `json:"currency,omitempty"`
}

// Validate checks the request before it reaches the network.
func (r *ExpenseUpdateRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if !r.Category.Valid() {
		return errors.New("unknown expense category")
	}
	return nil
}
