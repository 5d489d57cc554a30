package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 120

	return loginForm{email: email, password: password}
}

func (f *loginForm) toggleFocus() {
	if f.focus == 0 {
		f.focus = 1
		f.email.Blur()
		f.password.Focus()
	} else {
		f.focus = 0
		f.password.Blur()
		f.email.Focus()
	}
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		// Only quit on bare q when nothing is being typed.
		if m.login.email.Value() == "" && m.login.password.Value() == "" {
			return m, tea.Quit
		}
	case "tab", "shift+tab", "up", "down":
		m.login.toggleFocus()
		return m, nil
	case "enter":
		if m.login.focus == 0 {
			m.login.toggleFocus()
			return m, nil
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	m.errMsg, m.localErr = "", ""

	email := strings.TrimSpace(m.login.email.Value())
	password := m.login.password.Value()
	if email == "" {
		m.localErr = "email is required"
		return m, nil
	}
	if password == "" {
		m.localErr = "password is required"
		return m, nil
	}

	m.loading = true
	return m, tea.Batch(attemptLogin(m.client, m.seq, email, password), m.spin.Tick)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tripdeck — log in") + "\n\n")

	emailLabel, pwLabel := formLabelStyle, formLabelStyle
	if m.login.focus == 0 {
		emailLabel = formFocusedLabelStyle
	} else {
		pwLabel = formFocusedLabelStyle
	}
	b.WriteString(emailLabel.Render("Email") + m.login.email.View() + "\n")
	b.WriteString(pwLabel.Render("Password") + m.login.password.View() + "\n")

	b.WriteString("\n" + m.statusLine() + "\n")
	b.WriteString(helpStyle.Render("enter log in • tab switch field • ctrl+c quit"))
	return b.String()
}
