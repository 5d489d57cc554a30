package models

// Trip is the root entity. Trips are created and edited elsewhere; this
// client only reads them.
type Trip struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	DestinationID   int64  `json:"destinationId"`
	DestinationName string `json:"destinationName"`
	Status          string `json:"status"`
	StartDate       string `json:"startDate"` // yyyy-MM-dd
	EndDate         string `json:"endDate"`   // yyyy-MM-dd
	CreatedAt       string `json:"createdAt"`
}
