package models

import "errors"

// Budget is the spending ceiling for a trip. At most one exists per trip;
// writes go through an upsert keyed by trip id.
type Budget struct {
	ID        int64   `json:"id"`
	TripID    int64   `json:"tripId"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// BudgetUpsertRequest is the payload for PUT /budgets/trip/{tripId}.
type BudgetUpsertRequest struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency,omitempty"`
}

// Validate checks the request before it reaches the network.
func (r *BudgetUpsertRequest) Validate() error {
	if r.Total < 0 {
		return errors.New("budget total must not be negative")
	}
	return nil
}
