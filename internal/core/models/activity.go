package models

import "errors"

// ActivityType enumerates the backend's activity categories.
type ActivityType string

const (
	ActivitySightseeing ActivityType = "SIGHTSEEING"
	ActivityFood        ActivityType = "FOOD"
	ActivityTransport   ActivityType = "TRANSPORT"
	ActivityTour        ActivityType = "TOUR"
	ActivityHotel       ActivityType = "HOTEL"
	ActivityShopping    ActivityType = "SHOPPING"
	ActivityOther       ActivityType = "OTHER"
)

// ActivityTypes lists all categories in display order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivitySightseeing,
		ActivityFood,
		ActivityTransport,
		ActivityTour,
		ActivityHotel,
		ActivityShopping,
		ActivityOther,
	}
}

// Valid reports whether t is a known category.
func (t ActivityType) Valid() bool {
	for _, known := range ActivityTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Activity belongs to exactly one itinerary day. Place, notes, time and cost
// are all optional; the backend may return null for any of them.
type Activity struct {
	ID             int64        `json:"id"`
	ItineraryDayID int64        `json:"itineraryDayId"`
	Type           ActivityType `json:"type"`
	Title          string       `json:"title"`
	Place          string       `json:"place"`
	Notes          string       `json:"notes"`
	Time           string       `json:"time"` // may arrive as "HH:mm:ss"
	Cost           float64      `json:"cost"`
	CreatedAt      string       `json:"createdAt"`
}

// ActivityCreateRequest is the payload for POST /activities.
type ActivityCreateRequest struct {
	ItineraryDayID int64        `json:"itineraryDayId"`
	Type           ActivityType `json:"type"`
	Title          string       `json:"title"`
	Place          string       `json:"place,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	Time           string       `json:"time,omitempty"` // "HH:mm"
	Cost           *float64     `json:"cost,omitempty"`
}

// Validate checks the request before it reaches the network.
func (r *ActivityCreateRequest) Validate() error {
	if r.ItineraryDayID <= 0 {
		return errors.New("itinerary day id is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	if !r.Type.Valid() {
		return errors.New("unknown activity type")
	}
	if r.Cost != nil && *r.Cost < 0 {
		return errors.New("cost must not be negative")
	}
	return nil
}

// ActivityUpdateRequest is the payload for PUT /activities/{id}.
type ActivityUpdateRequest struct {
	Type  ActivityType `json:"type,omitempty"`
	Title string       `json:"title,omitempty"`
	Place string       `json:"place,omitempty"`
	Notes string       `json:"notes,omitempty"`
	Time  string       `json:"time,omitempty"`
	Cost  *float64     `json:"cost,omitempty"`
}

// Validate checks the request before it reaches the network.
func (r *ActivityUpdateRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Type != "" && !r.Type.Valid() {
		return errors.New("unknown activity type")
	}
	if r.Cost != nil && *r.Cost < 0 {
		return errors.New("cost must not be negative")
	}
	return nil
}
