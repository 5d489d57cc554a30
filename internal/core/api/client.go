// Package api is the REST client for the trip-planner backend. Every
// authenticated request is signed with the bearer token from the session
// store at send time; the store is the single source of that credential.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tripdeck/tripdeck/internal/core/models"
	"github.com/tripdeck/tripdeck/internal/core/session"
	"github.com/tripdeck/tripdeck/internal/core/summary"
)

// tokenFields are the response keys tried, in order, when extracting the
// credential from a login response. The backend's contract is loose here;
// this list is the one place the tolerated spellings live.
var tokenFields = []string{"accessToken", "token", "access_token", "jwt"}

type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     *session.Store
}

// New returns a client rooted at baseURL. tokens supplies the bearer token
// for request signing; requests go out unsigned when none is stored and the
// server answers with 401.
func New(baseURL string, timeout time.Duration, tokens *session.Store) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		tokens:     tokens,
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Message: "Could not reach the server"}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: "Could not read the server response"}
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, respBody)
	}

	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{Kind: KindServer, Status: resp.StatusCode, Message: "Malformed server response"}
		}
	}
	return nil
}

// Login exchanges credentials for a bearer token. It does not touch the
// session store; persisting the token is the login flow's job.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	var raw map[string]interface{}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", payload, &raw); err != nil {
		return "", err
	}

	for _, field := range tokenFields {
		if v, ok := raw[field].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", &Error{Kind: KindInvalidResponse, Message: "Login response contained no token"}
}

// page is the backend's pagination wrapper; only content is consumed.
type page[T any] struct {
	Content []T `json:"content"`
}

// Trips lists all trips (first page; the dashboard shows what the backend
// returns in one page).
func (c *Client) Trips(ctx context.Context) ([]models.Trip, error) {
	var p page[models.Trip]
	if err := c.doJSON(ctx, http.MethodGet, "/trips", nil, &p); err != nil {
		return nil, err
	}
	return p.Content, nil
}

// Trip fetches a single trip by id.
func (c *Client) Trip(ctx context.Context, id int64) (models.Trip, error) {
	var t models.Trip
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/trips/%d", id), nil, &t)
	return t, err
}

// TripSummary fetches the server-side aggregate for one trip.
func (c *Client) TripSummary(ctx context.Context, tripID int64) (summary.TripSummary, error) {
	var s summary.TripSummary
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/trips/%d/summary", tripID), nil, &s)
	return s, err
}

// ItineraryDays lists a trip's itinerary days.
func (c *Client) ItineraryDays(ctx context.Context, tripID int64) ([]models.ItineraryDay, error) {
	var days []models.ItineraryDay
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/itinerary-days/trip/%d", tripID), nil, &days)
	return days, err
}

// CreateItineraryDay adds a day to a trip.
func (c *Client) CreateItineraryDay(ctx context.Context, req models.ItineraryDayCreateRequest) (models.ItineraryDay, error) {
	var day models.ItineraryDay
	err := c.doJSON(ctx, http.MethodPost, "/itinerary-days", req, &day)
	return day, err
}

// Activities lists the activities of one itinerary day.
func (c *Client) Activities(ctx context.Context, dayID int64) ([]models.Activity, error) {
	var activities []models.Activity
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/activities/itinerary-day/%d", dayID), nil, &activities)
	return activities, err
}

// CreateActivity adds an activity to an itinerary day.
func (c *Client) CreateActivity(ctx context.Context, req models.ActivityCreateRequest) (models.Activity, error) {
	var a models.Activity
	err := c.doJSON(ctx, http.MethodPost, "/activities", req, &a)
	return a, err
}

// UpdateActivity replaces an activity's editable fields.
func (c *Client) UpdateActivity(ctx context.Context, id int64, req models.ActivityUpdateRequest) (models.Activity, error) {
	var a models.Activity
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/activities/%d", id), req, &a)
	return a, err
}

// DeleteActivity removes an activity.
func (c *Client) DeleteActivity(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/activities/%d", id), nil, nil)
}

// Expenses lists a trip's expenses.
func (c *Client) Expenses(ctx context.Context, tripID int64) ([]models.Expense, error) {
	var expenses []models.Expense
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/expenses/trip/%d", tripID), nil, &expenses)
	return expenses, err
}

// CreateExpense adds an expense to a trip.
func (c *Client) CreateExpense(ctx context.Context, req models.ExpenseCreateRequest) (models.Expense, error) {
	var e models.Expense
	err := c.doJSON(ctx, http.MethodPost, "/expenses", req, &e)
	return e, err
}

// UpdateExpense replaces an expense's editable fields.
func (c *Client) UpdateExpense(ctx context.Context, id int64, req models.ExpenseUpdateRequest) (models.Expense, error) {
	var e models.Expense
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/expenses/%d", id), req, &e)
	return e, err
}

// DeleteExpense removes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil)
}

// Budget fetches a trip's budget. A trip without one returns (nil, nil);
// absence is a normal state, not an error.
func (c *Client) Budget(ctx context.Context, tripID int64) (*models.Budget, error) {
	var b models.Budget
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/budgets/trip/%d", tripID), nil, &b)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if b.ID == 0 && b.Total == 0 && b.Currency == "" {
		// Some backends answer 200 with an empty body for missing budgets.
		return nil, nil
	}
	return &b, nil
}

// UpsertBudget creates or replaces a trip's budget, keyed by trip id.
func (c *Client) UpsertBudget(ctx context.Context, tripID int64, req models.BudgetUpsertRequest) (models.Budget, error) {
	var b models.Budget
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/budgets/trip/%d", tripID), req, &b)
	return b, err
}
