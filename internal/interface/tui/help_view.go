package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tripdeck help") + "\n\n")

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Trips", [][2]string{
			{"enter", "open trip"},
			{"r", "reload"},
			{"L", "log out"},
			{"q", "quit"},
		}},
		{"Trip tabs", [][2]string{
			{"1-5", "summary / itinerary / activities / expenses / budget"},
			{"tab / shift+tab", "next / previous tab"},
			{"esc", "back to trips"},
		}},
		{"Editing", [][2]string{
			{"a", "add"},
			{"e", "edit selected"},
			{"d", "delete selected"},
			{"enter", "save (on last field)"},
			{"esc", "cancel form"},
		}},
		{"Summary", [][2]string{
			{"y", "copy summary to clipboard"},
			{"r", "reload"},
		}},
	}

	for _, section := range sections {
		b.WriteString(titleStyle.Render(section.title) + "\n")
		for _, k := range section.keys {
			b.WriteString("  " + selectedItemStyle.Render(k[0]))
			b.WriteString(strings.Repeat(" ", max(16-len(k[0]), 1)))
			b.WriteString(k[1] + "\n")
		}
		b.WriteString("\n")
	}

	note := "Date fields accept YYYY-MM-DD or natural language like \"tomorrow\" " +
		"and \"next friday\". Edits made on any tab refresh the summary the next " +
		"time you open it."
	b.WriteString(helpStyle.Render(wordwrap.String(note, max(m.width-2, 40))))
	b.WriteString("\n\n" + helpStyle.Render("press any key to close"))
	return b.String()
}
