package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
)

type formField struct {
	label   string
	kind    fieldKind
	input   textinput.Model
	choices []string
	choice  int
}

func newTextField(label, placeholder, value string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CharLimit = 120
	return formField{label: label, kind: fieldText, input: ti}
}

func newChoiceField(label string, choices []string, selected string) formField {
	f := formField{label: label, kind: fieldChoice, choices: choices}
	for i, c := range choices {
		if c == selected {
			f.choice = i
		}
	}
	return f
}

// entityForm is a small multi-field editor shared by all tabs. The shell
// owns submit and cancel; the form only manages focus and input.
type entityForm struct {
	title  string
	fields []formField
	focus  int
	editID int64 // 0 means create
}

func newForm(title string, editID int64, fields ...formField) *entityForm {
	f := &entityForm{title: title, fields: fields, editID: editID}
	if len(f.fields) > 0 && f.fields[0].kind == fieldText {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *entityForm) value(i int) string {
	fld := f.fields[i]
	if fld.kind == fieldChoice {
		return fld.choices[fld.choice]
	}
	return strings.TrimSpace(fld.input.Value())
}

func (f *entityForm) atLastField() bool {
	return f.focus == len(f.fields)-1
}

func (f *entityForm) setFocus(i int) {
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	f.focus = i
	if f.fields[i].kind == fieldText {
		f.fields[i].input.Focus()
	}
}

func (f *entityForm) nextField() {
	f.setFocus((f.focus + 1) % len(f.fields))
}

func (f *entityForm) prevField() {
	f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
}

// update routes a key to the form. Enter, esc and submit handling stay with
// the caller.
func (f *entityForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.nextField()
		return nil
	case "shift+tab", "up":
		f.prevField()
		return nil
	}

	fld := &f.fields[f.focus]
	if fld.kind == fieldChoice {
		switch msg.String() {
		case "left", "h":
			fld.choice = (fld.choice - 1 + len(fld.choices)) % len(fld.choices)
		case "right", "l", " ":
			fld.choice = (fld.choice + 1) % len(fld.choices)
		}
		return nil
	}

	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	return cmd
}

func (f *entityForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title) + "\n\n")
	for i, fld := range f.fields {
		label := formLabelStyle
		if i == f.focus {
			label = formFocusedLabelStyle
		}
		b.WriteString(label.Render(fld.label))
		if fld.kind == fieldChoice {
			marker := "  "
			if i == f.focus {
				marker = "< "
			}
			b.WriteString(marker + fld.choices[fld.choice])
			if i == f.focus {
				b.WriteString(" >")
			}
		} else {
			b.WriteString(fld.input.View())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter save • tab next field • esc cancel"))
	return b.String()
}

// parseDate accepts YYYY-MM-DD directly and falls back to natural language
// ("tomorrow", "next friday"). Empty input stays empty; optional dates are
// the caller's call.
func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	r, err := w.Parse(s, time.Now())
	if err != nil || r == nil {
		return "", fmt.Errorf("unrecognized date %q", s)
	}
	return r.Time.Format("2006-01-02"), nil
}

// parseAmount parses a required positive-or-zero decimal. The strictness of
// zero handling differs per caller (expenses reject it, costs allow it), so
// only the number format is checked here.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

// parseOptionalAmount returns nil for empty input.
func parseOptionalAmount(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := parseAmount(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
