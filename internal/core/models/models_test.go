package models

import "testing"

func ptr(v float64) *float64 { return &v }

func TestExpenseCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     ExpenseCreateRequest
		wantErr bool
	}{
		{
			name: "valid expense",
			req: ExpenseCreateRequest{
				TripID:   1,
				Title:    "Train tickets",
				Amount:   42.50,
				Category: ExpenseTransport,
			},
			wantErr: false,
		},
		{
			name: "zero amount rejected",
			req: ExpenseCreateRequest{
				TripID:   1,
				Title:    "Free walking tour tip",
				Amount:   0,
				Category: ExpenseOther,
			},
			wantErr: true,
		},
		{
			name: "negative amount rejected",
			req: ExpenseCreateRequest{
				TripID:   1,
				Title:    "Refund",
				Amount:   -10,
				Category: ExpenseOther,
			},
			wantErr: true,
		},
		{
			name: "missing title",
			req: ExpenseCreateRequest{
				TripID:   1,
				Amount:   10,
				Category: ExpenseFood,
			},
			wantErr: true,
		},
		{
			name: "missing trip id",
			req: ExpenseCreateRequest{
				Title:    "Lunch",
				Amount:   10,
				Category: ExpenseFood,
			},
			wantErr: true,
		},
		{
			name: "unknown category",
			req: ExpenseCreateRequest{
				TripID:   1,
				Title:    "Lunch",
				Amount:   10,
				Category: "SNACKS",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestActivityCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     ActivityCreateRequest
		wantErr bool
	}{
		{
			name: "valid activity",
			req: ActivityCreateRequest{
				ItineraryDayID: 3,
				Type:           ActivitySightseeing,
				Title:          "Sagrada Familia",
				Cost:           ptr(26),
			},
			wantErr: false,
		},
		{
			name: "zero cost is allowed",
			req: ActivityCreateRequest{
				ItineraryDayID: 3,
				Type:           ActivityOther,
				Title:          "Beach walk",
				Cost:           ptr(0),
			},
			wantErr: false,
		},
		{
			name: "absent cost is allowed",
			req: ActivityCreateRequest{
				ItineraryDayID: 3,
				Type:           ActivityFood,
				Title:          "Dinner",
			},
			wantErr: false,
		},
		{
			name: "negative cost rejected",
			req: ActivityCreateRequest{
				ItineraryDayID: 3,
				Type:           ActivityTour,
				Title:          "City tour",
				Cost:           ptr(-5),
			},
			wantErr: true,
		},
		{
			name: "missing title",
			req: ActivityCreateRequest{
				ItineraryDayID: 3,
				Type:           ActivityTour,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			req: ActivityCreateRequest{
				ItineraryDayID: 3,
				Type:           "SWIMMING",
				Title:          "Pool",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestItineraryDayCreateValidation(t *testing.T) {
	valid := ItineraryDayCreateRequest{TripID: 1, Date: "2026-05-01"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v for valid request", err)
	}

	noDate := ItineraryDayCreateRequest{TripID: 1}
	if err := noDate.Validate(); err == nil {
		t.Error("Validate() accepted a request without a date")
	}
}

func TestBudgetUpsertValidation(t *testing.T) {
	if err := (&BudgetUpsertRequest{Total: 0}).Validate(); err != nil {
		t.Errorf("Validate() rejected zero budget: %v", err)
	}
	if err := (&BudgetUpsertRequest{Total: 2500, Currency: "EUR"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v for valid request", err)
	}
	if err := (&BudgetUpsertRequest{Total: -1}).Validate(); err == nil {
		t.Error("Validate() accepted a negative budget")
	}
}

func TestCategoryValidity(t *testing.T) {
	for _, at := range ActivityTypes() {
		if !at.Valid() {
			t.Errorf("ActivityType %q reports Valid() = false", at)
		}
	}
	if ActivityType("sightseeing").Valid() {
		t.Error("lowercase activity type should not be valid")
	}

	for _, ec := range ExpenseCategories() {
		if !ec.Valid() {
			t.Errorf("ExpenseCategory %q reports Valid() = false", ec)
		}
	}
	if ExpenseCategory("").Valid() {
		t.Error("empty expense category should not be valid")
	}
}
