package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tripdeck/tripdeck/internal/core/summary"
)

func (m Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if m.sum == nil {
			return m, nil
		}
		out, err := summary.RenderTemplate(m.cfg.SummaryTemplate, *m.sum, m.cfg.Currency)
		if err != nil {
			m.errMsg = "Could not render the summary: " + err.Error()
			return m, nil
		}
		if err := clipboard.WriteAll(out); err != nil {
			m.errMsg = "Could not copy to clipboard: " + err.Error()
			return m, nil
		}
		m.notice = "Summary copied to clipboard"
		return m, nil

	case "r":
		// Manual reload, independent of the refresh signal.
		m.sum = nil
		return m.maybeFetchSummary()
	}
	return m, nil
}

func (m Model) viewSummary() string {
	if m.sum == nil {
		return faintStyle.Render("Fetching summary…")
	}
	s := *m.sum

	var b strings.Builder
	if s.StartDate != "" || s.EndDate != "" {
		b.WriteString(faintStyle.Render(fmt.Sprintf("%s -> %s • %d days", s.StartDate, s.EndDate, s.TotalDays)) + "\n\n")
	}

	card := func(label, value string) {
		b.WriteString(cardLabelStyle.Render(fmt.Sprintf("%-18s", label)))
		b.WriteString(cardValueStyle.Render(value) + "\n")
	}

	card("Itinerary days", fmt.Sprintf("%d", s.ItineraryDaysCount))
	card("Activities", fmt.Sprintf("%d", s.ActivitiesCount))
	card("Expenses", fmt.Sprintf("%d", s.ExpensesCount))
	card("Expenses total", m.money(s.ExpensesTotal))
	card("Budget total", m.money(s.BudgetTotal))

	b.WriteString(cardLabelStyle.Render(fmt.Sprintf("%-18s", "Remaining")))
	if m.figures.OverBudget {
		b.WriteString(overBudgetStyle.Render(m.money(m.figures.Remaining)) + "\n")
		warning := fmt.Sprintf("Over budget by %s", m.money(-m.figures.Remaining))
		b.WriteString("\n" + overBudgetStyle.Render(wordwrap.String(warning, max(m.width-2, 20))) + "\n")
	} else {
		b.WriteString(underBudgetStyle.Render(m.money(m.figures.Remaining)) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("y copy • r reload • 1-5 tabs • esc back"))
	return b.String()
}
