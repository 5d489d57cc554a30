package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck/tripdeck/internal/core/api"
	"github.com/tripdeck/tripdeck/internal/core/config"
	"github.com/tripdeck/tripdeck/internal/core/models"
	"github.com/tripdeck/tripdeck/internal/core/refresh"
	"github.com/tripdeck/tripdeck/internal/core/session"
	"github.com/tripdeck/tripdeck/internal/core/summary"
)

type route int

const (
	routeLogin route = iota
	routeTrips
	routeTrip
)

type tab int

const (
	tabSummary tab = iota
	tabItinerary
	tabActivities
	tabExpenses
	tabBudget
)

var tabNames = []string{"Summary", "Itinerary", "Activities", "Expenses", "Budget"}

type Model struct {
	client *api.Client
	tokens *session.Store
	cfg    *config.Config

	// Guard state: where to land after a successful login.
	route         route
	pendingRoute  route
	pendingTripID int64
	hasPending    bool

	width  int
	height int

	loading  bool
	spin     spinner.Model
	errMsg   string // server-side error, shown until the next attempt
	localErr string // validation error, never reached the network
	notice   string
	showHelp bool

	// Generation token. Bumped on every route change; async results
	// stamped with an older value are dropped instead of being applied
	// to views that no longer exist.
	seq int

	login loginForm

	trips    list.Model
	haveList bool

	// Trip shell state. The signal is owned here and advanced by every
	// editor tab on successful mutation; the summary tab re-fetches
	// whenever the value it last fetched at falls behind.
	tripID          int64
	tripTitle       string
	tab             tab
	signal          *refresh.Signal
	lastFetched     int64
	summaryInFlight bool

	sum     *summary.TripSummary
	figures summary.Figures

	days         []models.ItineraryDay
	dayCursor    int
	dayIdx       int // day whose activities are listed
	activities   []models.Activity
	actCursor    int
	expenses     []models.Expense
	expCursor    int
	budget       *models.Budget
	budgetLoaded bool

	form *entityForm
}

func New(client *api.Client, tokens *session.Store, cfg *config.Config) Model {
	m := Model{
		client: client,
		tokens: tokens,
		cfg:    cfg,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		login:  newLoginForm(),
		seq:    1,
	}

	// Same decision the guard makes on every navigation, applied to the
	// initial destination: land on trips if a token is stored, otherwise
	// start at login with trips as the redirect target.
	if tokens.Present() {
		m.route = routeTrips
		m.loading = true
	} else {
		m.route = routeLogin
		m.pendingRoute = routeTrips
		m.hasPending = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.route == routeTrips {
		return tea.Batch(loadTrips(m.client, m.seq), m.spin.Tick)
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.haveList {
			m.trips.SetSize(msg.Width, msg.Height-2)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch m.route {
		case routeLogin:
			return m.updateLogin(msg)
		case routeTrips:
			return m.updateTrips(msg)
		case routeTrip:
			return m.updateShell(msg)
		}
		return m, nil

	case errMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.summaryInFlight = false
		if api.IsUnauthorized(msg.err) && m.route != routeLogin {
			return m.forceLogin()
		}
		m.errMsg = msg.err.Error()
		return m, nil

	case loginDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if err := m.tokens.Set(msg.token); err != nil {
			m.errMsg = "Could not store the token: " + err.Error()
			return m, nil
		}
		if m.hasPending {
			m.hasPending = false
			return m.navigate(m.pendingRoute, m.pendingTripID)
		}
		return m.navigate(routeTrips, 0)

	case tripsLoadedMsg:
		if msg.seq != m.seq || m.route != routeTrips {
			return m, nil
		}
		m.loading = false
		m.trips = newTripsList(msg.trips, m.width, m.height)
		m.haveList = true
		return m, nil

	case summaryLoadedMsg:
		if msg.seq != m.seq || m.route != routeTrip || msg.tripID != m.tripID {
			return m, nil
		}
		m.loading = false
		m.summaryInFlight = false
		s := msg.summary
		m.sum = &s
		m.figures = summary.Compute(s)
		m.lastFetched = msg.stamp
		if s.Title != "" {
			m.tripTitle = s.Title
		}
		// Editors may have advanced the signal while this fetch was in
		// flight; catch up immediately.
		return m.maybeFetchSummary()

	case daysLoadedMsg:
		if msg.seq != m.seq || m.route != routeTrip {
			return m, nil
		}
		m.loading = false
		m.days = msg.days
		if m.dayCursor >= len(m.days) {
			m.dayCursor = 0
		}
		if m.dayIdx >= len(m.days) {
			m.dayIdx = 0
		}
		return m, nil

	case activitiesLoadedMsg:
		if msg.seq != m.seq || m.route != routeTrip {
			return m, nil
		}
		if len(m.days) == 0 || m.days[m.dayIdx].ID != msg.dayID {
			// Day selection moved on while the fetch was in flight.
			return m, nil
		}
		m.loading = false
		m.activities = msg.activities
		if m.actCursor >= len(m.activities) {
			m.actCursor = 0
		}
		return m, nil

	case expensesLoadedMsg:
		if msg.seq != m.seq || m.route != routeTrip {
			return m, nil
		}
		m.loading = false
		m.expenses = msg.expenses
		if m.expCursor >= len(m.expenses) {
			m.expCursor = 0
		}
		return m, nil

	case budgetLoadedMsg:
		if msg.seq != m.seq || m.route != routeTrip {
			return m, nil
		}
		m.loading = false
		m.budget = msg.budget
		m.budgetLoaded = true
		return m, nil

	case mutationDoneMsg:
		if msg.seq != m.seq || m.route != routeTrip {
			return m, nil
		}
		m.loading = false
		m.form = nil
		m.errMsg, m.localErr = "", ""
		m.signal.Advance()

		var cmds []tea.Cmd
		switch msg.tab {
		case tabItinerary:
			m.loading = true
			cmds = append(cmds, loadDays(m.client, m.seq, m.tripID), m.spin.Tick)
		case tabActivities:
			if len(m.days) > 0 {
				m.loading = true
				cmds = append(cmds, loadActivities(m.client, m.seq, m.days[m.dayIdx].ID), m.spin.Tick)
			}
		case tabExpenses:
			m.loading = true
			cmds = append(cmds, loadExpenses(m.client, m.seq, m.tripID), m.spin.Tick)
		case tabBudget:
			m.loading = true
			cmds = append(cmds, loadBudget(m.client, m.seq, m.tripID), m.spin.Tick)
		}

		var cmd tea.Cmd
		m, cmd = m.maybeFetchSummary()
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) View() string {
	if m.showHelp {
		return m.viewHelp()
	}
	switch m.route {
	case routeLogin:
		return m.viewLogin()
	case routeTrips:
		return m.viewTrips()
	case routeTrip:
		return m.viewShell()
	}
	return ""
}

// navigate is the routing guard. Protected destinations bounce to the login
// view when no token is stored, carrying the original destination so a
// successful login lands there instead of the default.
func (m Model) navigate(r route, tripID int64) (Model, tea.Cmd) {
	m.errMsg, m.localErr, m.notice = "", "", ""
	m.form = nil

	if r != routeLogin && !m.tokens.Present() {
		m.pendingRoute = r
		m.pendingTripID = tripID
		m.hasPending = true
		m.route = routeLogin
		m.login = newLoginForm()
		return m, textinput.Blink
	}

	m.seq++
	switch r {
	case routeLogin:
		m.route = routeLogin
		m.login = newLoginForm()
		return m, textinput.Blink

	case routeTrips:
		m.route = routeTrips
		m.loading = true
		return m, tea.Batch(loadTrips(m.client, m.seq), m.spin.Tick)

	case routeTrip:
		m.route = routeTrip
		m.tripID = tripID
		m.tab = tabSummary
		m.signal = &refresh.Signal{}
		m.lastFetched = -1
		m.summaryInFlight = false
		m.sum = nil
		m.days, m.activities, m.expenses = nil, nil, nil
		m.budget, m.budgetLoaded = nil, false
		m.dayCursor, m.dayIdx, m.actCursor, m.expCursor = 0, 0, 0, 0

		var cmd tea.Cmd
		m, cmd = m.maybeFetchSummary()
		return m, tea.Batch(cmd, loadDays(m.client, m.seq, tripID))
	}
	return m, nil
}

// forceLogin handles a 401 from any protected call: the stored token is
// stale, so clear it and bounce to login with the current location as the
// redirect target.
func (m Model) forceLogin() (Model, tea.Cmd) {
	_ = m.tokens.Clear()
	m.pendingRoute = m.route
	m.pendingTripID = m.tripID
	m.hasPending = true
	m.route = routeLogin
	m.login = newLoginForm()
	m.errMsg = "Session expired, please log in again"
	return m, textinput.Blink
}

// maybeFetchSummary re-fetches the summary iff the refresh signal moved
// since the last fetch (or none happened yet). Multiple advances between
// observations collapse into a single fetch at the latest value.
func (m Model) maybeFetchSummary() (Model, tea.Cmd) {
	if m.route != routeTrip || m.tab != tabSummary || m.summaryInFlight {
		return m, nil
	}
	stamp := m.signal.Value()
	if m.sum != nil && stamp == m.lastFetched {
		return m, nil
	}
	m.summaryInFlight = true
	m.loading = true
	return m, tea.Batch(loadSummary(m.client, m.seq, m.tripID, stamp), m.spin.Tick)
}
