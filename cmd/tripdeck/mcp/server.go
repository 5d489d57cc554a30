package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tripdeck/tripdeck/internal/core/api"
	"github.com/tripdeck/tripdeck/internal/core/summary"
)

// TripEntry represents a trip in the list_trips result
type TripEntry struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// SummaryResult represents the get_trip_summary result, raw figures plus the
// derived budget balance
type SummaryResult struct {
	TripID             int64   `json:"trip_id"`
	Title              string  `json:"title"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	TotalDays          int     `json:"total_days"`
	ItineraryDaysCount int     `json:"itinerary_days_count"`
	ActivitiesCount    int     `json:"activities_count"`
	ExpensesCount      int     `json:"expenses_count"`
	ExpensesTotal      float64 `json:"expenses_total"`
	BudgetTotal        float64 `json:"budget_total"`
	Remaining          float64 `json:"remaining"`
	OverBudget         bool    `json:"over_budget"`
}

// ExpenseEntry represents an expense in the list_expenses result
type ExpenseEntry struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	SpentAt  string  `json:"spent_at"`
	Currency string  `json:"currency,omitempty"`
}

// StartServer starts the MCP server on stdio
func StartServer(client *api.Client) error {
	s := server.NewMCPServer(
		"Tripdeck",
		"1.0.0",
	)

	listTool := mcp.NewTool("list_trips",
		mcp.WithDescription("List all trips with id, title, destination, status and date range"),
	)
	s.AddTool(listTool, makeListTripsHandler(client))

	summaryTool := mcp.NewTool("get_trip_summary",
		mcp.WithDescription("Get the aggregated summary for one trip: itinerary day, activity and expense counts, expense total, budget total, remaining balance and over-budget state"),
		mcp.WithNumber("trip_id",
			mcp.Required(),
			mcp.Description("Trip id to summarize")),
	)
	s.AddTool(summaryTool, makeTripSummaryHandler(client))

	expensesTool := mcp.NewTool("list_expenses",
		mcp.WithDescription("List the expenses of one trip"),
		mcp.WithNumber("trip_id",
			mcp.Required(),
			mcp.Description("Trip id whose expenses to list")),
	)
	s.AddTool(expensesTool, makeListExpensesHandler(client))

	return server.ServeStdio(s)
}

func tripIDArg(request mcp.CallToolRequest) (int64, error) {
	args := struct {
		TripID float64 `json:"trip_id"`
	}{}
	argsBytes, _ := json.Marshal(request.Params.Arguments)
	if err := json.Unmarshal(argsBytes, &args); err != nil {
		return 0, fmt.Errorf("invalid arguments: %w", err)
	}
	if args.TripID <= 0 {
		return 0, fmt.Errorf("trip_id is required")
	}
	return int64(args.TripID), nil
}

func makeListTripsHandler(client *api.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		trips, err := client.Trips(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("fetching trips failed: %v", err)), nil
		}

		entries := make([]TripEntry, 0, len(trips))
		for _, t := range trips {
			entries = append(entries, TripEntry{
				ID:          t.ID,
				Title:       t.Title,
				Destination: t.DestinationName,
				Status:      t.Status,
				StartDate:   t.StartDate,
				EndDate:     t.EndDate,
			})
		}

		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}

func makeTripSummaryHandler(client *api.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tripID, err := tripIDArg(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		s, err := client.TripSummary(ctx, tripID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("fetching summary failed: %v", err)), nil
		}

		title := s.Title
		if title == "" {
			// Older backends omit the title from the summary payload.
			if trip, err := client.Trip(ctx, tripID); err == nil {
				title = trip.Title
			}
		}

		figures := summary.Compute(s)
		result := SummaryResult{
			TripID:             tripID,
			Title:              title,
			StartDate:          s.StartDate,
			EndDate:            s.EndDate,
			TotalDays:          s.TotalDays,
			ItineraryDaysCount: s.ItineraryDaysCount,
			ActivitiesCount:    s.ActivitiesCount,
			ExpensesCount:      s.ExpensesCount,
			ExpensesTotal:      s.ExpensesTotal,
			BudgetTotal:        s.BudgetTotal,
			Remaining:          figures.Remaining,
			OverBudget:         figures.OverBudget,
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}

func makeListExpensesHandler(client *api.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tripID, err := tripIDArg(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		expenses, err := client.Expenses(ctx, tripID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("fetching expenses failed: %v", err)), nil
		}

		entries := make([]ExpenseEntry, 0, len(expenses))
		for _, e := range expenses {
			entries = append(entries, ExpenseEntry{
				ID:       e.ID,
				Title:    e.Title,
				Amount:   e.Amount,
				Category: string(e.Category),
				SpentAt:  e.SpentAt,
				Currency: e.Currency,
			})
		}

		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}
