package models

import "errors"

// ItineraryDay is one calendar day inside a trip. Days are an unordered set;
// the backend returns them in fetch order.
type ItineraryDay struct {
	ID     int64  `json:"id"`
	TripID int64  `json:"tripId"`
	Date   string `json:"date"` // yyyy-MM-dd
}

// ItineraryDayCreateRequest is the payload for POST /itinerary-days.
type ItineraryDayCreateRequest struct {
	TripID int64  `json:"tripId"`
	Date   string `json:"date"`
}

// Validate checks the request before it reaches the network.
func (r *ItineraryDayCreateRequest) Validate() error {
	if r.TripID <= 0 {
		return errors.New("trip id is required")
	}
	if r.Date == "" {
		return errors.New("date is required")
	}
	return nil
}
