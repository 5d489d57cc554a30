package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck/tripdeck/internal/core/models"
)

func (m Model) updateItinerary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.dayCursor < len(m.days)-1 {
			m.dayCursor++
		}
		return m, nil
	case "k", "up":
		if m.dayCursor > 0 {
			m.dayCursor--
		}
		return m, nil
	case "a":
		m.form = newForm("Add itinerary day", 0,
			newTextField("Date", "2026-05-01 or \"tomorrow\"", ""),
		)
		return m, nil
	case "enter":
		// Jump to the selected day's activities.
		if len(m.days) == 0 {
			return m, nil
		}
		m.dayIdx = m.dayCursor
		return m.setTab(tabActivities)
	}
	return m, nil
}

func (m Model) submitItineraryForm() (tea.Model, tea.Cmd) {
	date, err := parseDate(m.form.value(0))
	if err != nil {
		m.localErr = err.Error()
		return m, nil
	}
	if date == "" {
		m.localErr = "date is required"
		return m, nil
	}

	req := models.ItineraryDayCreateRequest{TripID: m.tripID, Date: date}
	if err := req.Validate(); err != nil {
		m.localErr = err.Error()
		return m, nil
	}

	m.loading = true
	return m, tea.Batch(createDay(m.client, m.seq, req), m.spin.Tick)
}

func (m Model) viewItinerary() string {
	var b strings.Builder

	if len(m.days) == 0 {
		b.WriteString("No itinerary days yet.\n")
	}
	for i, day := range m.days {
		line := fmt.Sprintf("%s  (day %d)", day.Date, i+1)
		if i == m.dayCursor {
			b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("a add day • enter activities • j/k move • 1-5 tabs • esc back"))
	return b.String()
}
