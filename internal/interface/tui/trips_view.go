package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/tripdeck/tripdeck/internal/core/models"
)

type tripListItem struct {
	trip models.Trip
}

func (i tripListItem) FilterValue() string {
	return i.trip.Title + " " + i.trip.DestinationName
}

func (i tripListItem) Title() string {
	return i.trip.Title
}

func (i tripListItem) Description() string {
	return fmt.Sprintf("%s | %s | %s -> %s | created %s",
		i.trip.DestinationName, i.trip.Status,
		i.trip.StartDate, i.trip.EndDate, formatTime(i.trip.CreatedAt))
}

type tripDelegate struct {
	list.DefaultDelegate
}

func (d tripDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	t, ok := item.(tripListItem)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	title := t.Title()
	desc := t.Description()

	if index == m.Index() {
		title = selectedItemStyle.Render(title)
		desc = selectedItemStyle.Faint(true).Render(desc)
	} else {
		title = itemStyle.Render(title)
		desc = itemStyle.Render(desc)
	}

	fmt.Fprintf(w, "%s\n%s", title, desc)
}

func newTripsList(trips []models.Trip, width, height int) list.Model {
	items := make([]list.Item, len(trips))
	for i, t := range trips {
		items[i] = tripListItem{trip: t}
	}

	delegate := tripDelegate{DefaultDelegate: list.NewDefaultDelegate()}

	l := list.New(items, delegate, width, height-2)
	l.Title = ""
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)

	return l
}

func (m Model) updateTrips(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "enter":
		if !m.haveList {
			return m, nil
		}
		if selected, ok := m.trips.SelectedItem().(tripListItem); ok {
			m.tripTitle = selected.trip.Title
			return m.navigate(routeTrip, selected.trip.ID)
		}
		return m, nil

	case "r":
		return m.navigate(routeTrips, 0)

	case "L":
		// Explicit logout: the only writer of the session store besides
		// the login flow.
		if err := m.tokens.Clear(); err != nil {
			m.errMsg = "Could not clear the token: " + err.Error()
			return m, nil
		}
		m.hasPending = false
		return m.navigate(routeLogin, 0)
	}

	if !m.haveList {
		return m, nil
	}
	var cmd tea.Cmd
	m.trips, cmd = m.trips.Update(msg)
	return m, cmd
}

func (m Model) viewTrips() string {
	help := helpStyle.Render("↑/k up • ↓/j down • enter open • r reload • L logout • q quit • ? help")

	if !m.haveList {
		return titleStyle.Render("Trips") + "\n\n" + m.statusLine() + "\n" + help
	}
	if len(m.trips.Items()) == 0 {
		return titleStyle.Render("Trips") + "\n\nNo trips found.\n\n" + m.statusLine() + "\n" + help
	}
	return m.trips.View() + "\n" + m.statusLine() + "\n" + help
}

func formatTime(t string) string {
	for _, layout := range []string{
		"2006-01-02T15:04:05.999Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if parsed, err := time.Parse(layout, t); err == nil {
			return humanize.Time(parsed)
		}
	}
	return t
}
