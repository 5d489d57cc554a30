package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// The trip shell is the parent of the five tabs. It owns the refresh signal
// and the per-trip data; each tab only reads its slice of it.

func (m Model) updateShell(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg.String() {
	case "q", "esc":
		return m.navigate(routeTrips, 0)
	case "?":
		m.showHelp = true
		return m, nil
	case "1":
		return m.setTab(tabSummary)
	case "2":
		return m.setTab(tabItinerary)
	case "3":
		return m.setTab(tabActivities)
	case "4":
		return m.setTab(tabExpenses)
	case "5":
		return m.setTab(tabBudget)
	case "tab":
		return m.setTab((m.tab + 1) % tab(len(tabNames)))
	case "shift+tab":
		return m.setTab((m.tab - 1 + tab(len(tabNames))) % tab(len(tabNames)))
	}

	switch m.tab {
	case tabSummary:
		return m.updateSummary(msg)
	case tabItinerary:
		return m.updateItinerary(msg)
	case tabActivities:
		return m.updateActivities(msg)
	case tabExpenses:
		return m.updateExpenses(msg)
	case tabBudget:
		return m.updateBudget(msg)
	}
	return m, nil
}

func (m Model) setTab(t tab) (Model, tea.Cmd) {
	m.tab = t
	m.form = nil
	m.errMsg, m.localErr, m.notice = "", "", ""

	var cmds []tea.Cmd
	switch t {
	case tabSummary:
		var cmd tea.Cmd
		m, cmd = m.maybeFetchSummary()
		cmds = append(cmds, cmd)

	case tabItinerary:
		m.loading = true
		cmds = append(cmds, loadDays(m.client, m.seq, m.tripID), m.spin.Tick)

	case tabActivities:
		if m.days == nil {
			m.loading = true
			cmds = append(cmds, loadDays(m.client, m.seq, m.tripID), m.spin.Tick)
		} else if len(m.days) > 0 {
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
	return m, tea.Batch(cmds...)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.localErr = ""
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.form.atLastField() {
			return m.submitForm()
		}
		m.form.nextField()
		return m, nil
	}
	cmd := m.form.update(msg)
	return m, cmd
}

// submitForm dispatches to the active tab's submit handler. Validation
// failures land in localErr and never reach the network.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	m.localErr, m.errMsg = "", ""
	switch m.tab {
	case tabItinerary:
		return m.submitItineraryForm()
	case tabActivities:
		return m.submitActivityForm()
	case tabExpenses:
		return m.submitExpenseForm()
	case tabBudget:
		return m.submitBudgetForm()
	}
	return m, nil
}

func (m Model) viewShell() string {
	var b strings.Builder

	title := m.tripTitle
	if title == "" {
		title = fmt.Sprintf("Trip #%d", m.tripID)
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	var tabs []string
	for i, name := range tabNames {
		style := tabStyle
		if tab(i) == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")
	b.WriteString(strings.Repeat("─", max(m.width, 20)) + "\n\n")

	if m.form != nil {
		b.WriteString(m.form.view())
	} else {
		switch m.tab {
		case tabSummary:
			b.WriteString(m.viewSummary())
		case tabItinerary:
			b.WriteString(m.viewItinerary())
		case tabActivities:
			b.WriteString(m.viewActivities())
		case tabExpenses:
			b.WriteString(m.viewExpenses())
		case tabBudget:
			b.WriteString(m.viewBudget())
		}
	}

	b.WriteString("\n" + m.statusLine())
	return b.String()
}

// statusLine renders loading state and the two error channels. Validation
// errors look different from server errors on purpose.
func (m Model) statusLine() string {
	switch {
	case m.localErr != "":
		return validationStyle.Render("Invalid input: " + m.localErr)
	case m.errMsg != "":
		return errorStyle.Render("Error: " + m.errMsg)
	case m.loading:
		return m.spin.View() + faintStyle.Render(" loading…")
	case m.notice != "":
		return noticeStyle.Render(m.notice)
	}
	return ""
}

// money formats an amount for display, tagging the configured currency.
func (m Model) money(v float64) string {
	out := humanize.CommafWithDigits(v, 2)
	if m.cfg != nil && m.cfg.Currency != "" {
		out += " " + m.cfg.Currency
	}
	return out
}
