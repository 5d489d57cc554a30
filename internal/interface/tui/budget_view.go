package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck/tripdeck/internal/core/models"
)

func (m Model) updateBudget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a", "e", "enter":
		total, currency := "", m.cfg.Currency
		if m.budget != nil {
			total = trimFloat(m.budget.Total)
			if m.budget.Currency != "" {
				currency = m.budget.Currency
			}
		}
		m.form = newForm("Set budget", 0,
			newTextField("Total", "2500", total),
			newTextField("Currency", "optional, e.g. EUR", currency),
		)
		return m, nil
	}
	return m, nil
}

func (m Model) submitBudgetForm() (tea.Model, tea.Cmd) {
	total, err := parseAmount(m.form.value(0))
	if err != nil {
		m.localErr = err.Error()
		return m, nil
	}

	req := models.BudgetUpsertRequest{
		Total:    total,
		Currency: m.form.value(1),
	}
	if err := req.Validate(); err != nil {
		m.localErr = err.Error()
		return m, nil
	}

	m.loading = true
	return m, tea.Batch(upsertBudget(m.client, m.seq, m.tripID, req), m.spin.Tick)
}

func (m Model) viewBudget() string {
	var b strings.Builder

	switch {
	case !m.budgetLoaded:
		b.WriteString(faintStyle.Render("Fetching budget…") + "\n")
	case m.budget == nil:
		b.WriteString("No budget set for this trip.\n")
	default:
		b.WriteString(cardLabelStyle.Render("Budget total   "))
		b.WriteString(cardValueStyle.Render(m.money(m.budget.Total)) + "\n")
		if m.budget.Currency != "" {
			b.WriteString(cardLabelStyle.Render("Currency       "))
			b.WriteString(cardValueStyle.Render(m.budget.Currency) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("e set budget • 1-5 tabs • esc back"))
	return b.String()
}
