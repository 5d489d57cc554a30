package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck/tripdeck/internal/core/api"
	"github.com/tripdeck/tripdeck/internal/core/models"
	"github.com/tripdeck/tripdeck/internal/core/summary"
)

// Every async message carries the generation token (seq) it was issued
// under. The Update loop drops messages whose seq no longer matches the
// model's: a response landing after the user navigated away must not be
// applied to state that no longer exists.

type errMsg struct {
	seq int
	err error
}

type loginDoneMsg struct {
	seq   int
	token string
}

type tripsLoadedMsg struct {
	seq   int
	trips []models.Trip
}

type summaryLoadedMsg struct {
	seq     int
	tripID  int64
	stamp   int64 // refresh signal value this fetch was issued at
	summary summary.TripSummary
}

type daysLoadedMsg struct {
	seq  int
	days []models.ItineraryDay
}

type activitiesLoadedMsg struct {
	seq        int
	dayID      int64
	activities []models.Activity
}

type expensesLoadedMsg struct {
	seq      int
	expenses []models.Expense
}

type budgetLoadedMsg struct {
	seq    int
	budget *models.Budget
}

// mutationDoneMsg reports a successful create/update/delete on some editor's
// resource. Receiving it advances the refresh signal and reloads the
// editor's own list.
type mutationDoneMsg struct {
	seq int
	tab tab
}

func attemptLogin(client *api.Client, seq int, email, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := client.Login(context.Background(), email, password)
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return loginDoneMsg{seq: seq, token: token}
	}
}

func loadTrips(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		trips, err := client.Trips(context.Background())
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return tripsLoadedMsg{seq: seq, trips: trips}
	}
}

func loadSummary(client *api.Client, seq int, tripID, stamp int64) tea.Cmd {
	return func() tea.Msg {
		s, err := client.TripSummary(context.Background(), tripID)
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return summaryLoadedMsg{seq: seq, tripID: tripID, stamp: stamp, summary: s}
	}
}

func loadDays(client *api.Client, seq int, tripID int64) tea.Cmd {
	return func() tea.Msg {
		days, err := client.ItineraryDays(context.Background(), tripID)
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return daysLoadedMsg{seq: seq, days: days}
	}
}

func loadActivities(client *api.Client, seq int, dayID int64) tea.Cmd {
	return func() tea.Msg {
		activities, err := client.Activities(context.Background(), dayID)
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return activitiesLoadedMsg{seq: seq, dayID: dayID, activities: activities}
	}
}

func loadExpenses(client *api.Client, seq int, tripID int64) tea.Cmd {
	return func() tea.Msg {
		expenses, err := client.Expenses(context.Background(), tripID)
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return expensesLoadedMsg{seq: seq, expenses: expenses}
	}
}

func loadBudget(client *api.Client, seq int, tripID int64) tea.Cmd {
	return func() tea.Msg {
		budget, err := client.Budget(context.Background(), tripID)
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return budgetLoadedMsg{seq: seq, budget: budget}
	}
}

func createDay(client *api.Client, seq int, req models.ItineraryDayCreateRequest) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.CreateItineraryDay(context.Background(), req); err != nil {
			return errMsg{seq: seq, err: err}
		}
		return mutationDoneMsg{seq: seq, tab: tabItinerary}
	}
}

func createActivity(client *api.Client, seq int, req models.ActivityCreateRequest) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.CreateActivity(context.Background(), req); err != nil {
			return errMsg{seq: seq, err: err}
		}
		return mutationDoneMsg{seq: seq, tab: tabActivities}
	}
}

func updateActivity(client *api.Client, seq int, id int64, req models.ActivityUpdateRequest) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.UpdateActivity(context.Background(), id, req); err != nil {
			return errMsg{seq: seq, err: err}
		}
		return mutationDoneMsg{seq: seq, tab: tabActivities}
	}
}

func deleteActivity(client *api.Client, seq int, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteActivity(context.Background(), id); err != nil {
			return errMsg{seq: seq, err: err}
		}
		return mutationDoneMsg{seq: seq, tab: tabActivities}
	}
}

func createExpense(client *api.Client, seq int, req models.ExpenseCreateRequest) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.CreateExpense(context.Background(), req); err != nil {
			return errMsg{seq: seq, err: err}
		}
		return mutationDoneMsg{seq: seq, tab: tabExpenses}
	}
}

func updateExpense(client *api.Client, seq int, id int64, req models.ExpenseUpdateRequest) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.UpdateExpense(context.Background(), id, req); err != nil {
			return errMsg{seq: seq, err: err}
		}
		return mutationDoneMsg{seq: seq, tab: tabExpenses}
	}
}

func deleteExpense(client *api.Client, seq int, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteExpense(context.Background(), id); err != nil {
			return errMsg{seq: seq, err: err}
		}
		return mutationDoneMsg{seq: seq, tab: tabExpenses}
	}
}

func upsertBudget(client *api.Client, seq int, tripID int64, req models.BudgetUpsertRequest) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.UpsertBudget(context.Background(), tripID, req); err != nil {
			return errMsg{seq: seq, err: err}
		}
		return mutationDoneMsg{seq: seq, tab: tabBudget}
	}
}
