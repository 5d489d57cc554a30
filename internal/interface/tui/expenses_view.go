package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck/tripdeck/internal/core/models"
)

func expenseCategoryChoices() []string {
	categories := models.ExpenseCategories()
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

func (m Model) updateExpenses(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.expCursor < len(m.expenses)-1 {
			m.expCursor++
		}
		return m, nil
	case "k", "up":
		if m.expCursor > 0 {
			m.expCursor--
		}
		return m, nil

	case "a":
		m.form = newForm("Add expense", 0,
			newTextField("Title", "Train tickets", ""),
			newTextField("Amount", "42.50", ""),
			newChoiceField("Category", expenseCategoryChoices(), string(models.ExpenseTransport)),
			newTextField("Date", "2026-05-01 or \"yesterday\"", ""),
		)
		return m, nil

	case "e":
		if m.expCursor >= len(m.expenses) {
			return m, nil
		}
		e := m.expenses[m.expCursor]
		m.form = newForm("Edit expense", e.ID,
			newTextField("Title", "", e.Title),
			newTextField("Amount", "", trimFloat(e.Amount)),
			newChoiceField("Category", expenseCategoryChoices(), string(e.Category)),
			newTextField("Date", "optional", shortDate(e.SpentAt)),
		)
		return m, nil

	case "d":
		if m.expCursor >= len(m.expenses) {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(deleteExpense(m.client, m.seq, m.expenses[m.expCursor].ID), m.spin.Tick)
	}
	return m, nil
}

func (m Model) submitExpenseForm() (tea.Model, tea.Cmd) {
	title := m.form.value(0)
	amount, err := parseAmount(m.form.value(1))
	if err != nil {
		m.localErr = err.Error()
		return m, nil
	}
	category := models.ExpenseCategory(m.form.value(2))
	date, err := parseDate(m.form.value(3))
	if err != nil {
		m.localErr = err.Error()
		return m, nil
	}

	// The backend expects a timestamp for spentAt.
	spentAt := ""
	if date != "" {
		spentAt = date + "T00:00:00"
	}

	if m.form.editID != 0 {
		req := models.ExpenseUpdateRequest{
			Title:    title,
			Amount:   amount,
			Category: category,
			SpentAt:  spentAt,
			Currency: m.cfg.Currency,
		}
		if err := req.Validate(); err != nil {
			m.localErr = err.Error()
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(updateExpense(m.client, m.seq, m.form.editID, req), m.spin.Tick)
	}

	req := models.ExpenseCreateRequest{
		TripID:   m.tripID,
		Title:    title,
		Amount:   amount,
		Category: category,
		SpentAt:  spentAt,
		Currency: m.cfg.Currency,
	}
	if err := req.Validate(); err != nil {
		m.localErr = err.Error()
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(createExpense(m.client, m.seq, req), m.spin.Tick)
}

func (m Model) viewExpenses() string {
	var b strings.Builder

	var total float64
	for _, e := range m.expenses {
		total += e.Amount
	}
	b.WriteString(faintStyle.Render(fmt.Sprintf("%d expenses, %s total", len(m.expenses), m.money(total))) + "\n\n")

	if len(m.expenses) == 0 {
		b.WriteString("No expenses yet.\n")
	}
	for i, e := range m.expenses {
		line := fmt.Sprintf("%-10s %-28s %12s  %s", e.Category, e.Title, m.money(e.Amount), shortDate(e.SpentAt))
		if i == m.expCursor {
			b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("a add • e edit • d delete • j/k move • 1-5 tabs • esc back"))
	return b.String()
}

// shortDate trims backend timestamps to the date part.
func shortDate(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}
