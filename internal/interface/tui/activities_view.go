package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck/tripdeck/internal/core/models"
)

func activityTypeChoices() []string {
	types := models.ActivityTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func (m Model) updateActivities(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "[", "left":
		return m.cycleDay(-1)
	case "]", "right":
		return m.cycleDay(1)
	case "j", "down":
		if m.actCursor < len(m.activities)-1 {
			m.actCursor++
		}
		return m, nil
	case "k", "up":
		if m.actCursor > 0 {
			m.actCursor--
		}
		return m, nil

	case "a":
		if len(m.days) == 0 {
			m.localErr = "add an itinerary day first"
			return m, nil
		}
		m.form = newForm("Add activity", 0,
			newTextField("Title", "Sagrada Familia", ""),
			newChoiceField("Type", activityTypeChoices(), string(models.ActivitySightseeing)),
			newTextField("Place", "optional", ""),
			newTextField("Notes", "optional", ""),
			newTextField("Time", "HH:mm, optional", ""),
			newTextField("Cost", "optional", ""),
		)
		return m, nil

	case "e":
		if m.actCursor >= len(m.activities) {
			return m, nil
		}
		a := m.activities[m.actCursor]
		cost := ""
		if a.Cost != 0 {
			cost = trimFloat(a.Cost)
		}
		m.form = newForm("Edit activity", a.ID,
			newTextField("Title", "", a.Title),
			newChoiceField("Type", activityTypeChoices(), string(a.Type)),
			newTextField("Place", "optional", a.Place),
			newTextField("Notes", "optional", a.Notes),
			newTextField("Time", "HH:mm, optional", shortTime(a.Time)),
			newTextField("Cost", "optional", cost),
		)
		return m, nil

	case "d":
		if m.actCursor >= len(m.activities) {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(deleteActivity(m.client, m.seq, m.activities[m.actCursor].ID), m.spin.Tick)
	}
	return m, nil
}

func (m Model) cycleDay(delta int) (tea.Model, tea.Cmd) {
	if len(m.days) == 0 {
		return m, nil
	}
	m.dayIdx = (m.dayIdx + delta + len(m.days)) % len(m.days)
	m.actCursor = 0
	m.activities = nil
	m.loading = true
	return m, tea.Batch(loadActivities(m.client, m.seq, m.days[m.dayIdx].ID), m.spin.Tick)
}

func (m Model) submitActivityForm() (tea.Model, tea.Cmd) {
	title := m.form.value(0)
	actType := models.ActivityType(m.form.value(1))
	place := m.form.value(2)
	notes := m.form.value(3)
	timeOfDay := m.form.value(4)
	cost, err := parseOptionalAmount(m.form.value(5))
	if err != nil {
		m.localErr = err.Error()
		return m, nil
	}
	if timeOfDay != "" {
		if _, err := time.Parse("15:04", timeOfDay); err != nil {
			m.localErr = fmt.Sprintf("time must be HH:mm, got %q", timeOfDay)
			return m, nil
		}
	}

	if m.form.editID != 0 {
		req := models.ActivityUpdateRequest{
			Type:  actType,
			Title: title,
			Place: place,
			Notes: notes,
			Time:  timeOfDay,
			Cost:  cost,
		}
		if err := req.Validate(); err != nil {
			m.localErr = err.Error()
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(updateActivity(m.client, m.seq, m.form.editID, req), m.spin.Tick)
	}

	req := models.ActivityCreateRequest{
		ItineraryDayID: m.days[m.dayIdx].ID,
		Type:           actType,
		Title:          title,
		Place:          place,
		Notes:          notes,
		Time:           timeOfDay,
		Cost:           cost,
	}
	if err := req.Validate(); err != nil {
		m.localErr = err.Error()
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(createActivity(m.client, m.seq, req), m.spin.Tick)
}

func (m Model) viewActivities() string {
	var b strings.Builder

	if len(m.days) == 0 {
		b.WriteString("No itinerary days yet. Add one on the Itinerary tab.\n")
		b.WriteString("\n" + helpStyle.Render("2 itinerary • 1-5 tabs • esc back"))
		return b.String()
	}

	day := m.days[m.dayIdx]
	b.WriteString(faintStyle.Render(fmt.Sprintf("Day %d/%d — %s", m.dayIdx+1, len(m.days), day.Date)) + "\n\n")

	if len(m.activities) == 0 {
		b.WriteString("No activities for this day.\n")
	}
	for i, a := range m.activities {
		line := fmt.Sprintf("%-12s %s", a.Type, a.Title)
		var details []string
		if a.Time != "" {
			details = append(details, shortTime(a.Time))
		}
		if a.Place != "" {
			details = append(details, a.Place)
		}
		if a.Cost != 0 {
			details = append(details, m.money(a.Cost))
		}
		if len(details) > 0 {
			line += faintStyle.Render("  (" + strings.Join(details, ", ") + ")")
		}
		if i == m.actCursor {
			b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("a add • e edit • d delete • [/] switch day • j/k move • esc back"))
	return b.String()
}

// shortTime trims backend "HH:mm:ss" values to "HH:mm" for editing and
// display.
func shortTime(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
