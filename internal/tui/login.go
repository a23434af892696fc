// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-gazelle/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldTwoFA
)

// LoginModel is the Bubble Tea model of the credential prompt. It renders
// username, password and 2FA inputs and quits once the user submits a
// username and password, or cancels.
type LoginModel struct {
	host string

	inputs    []textinput.Model
	focus     int
	errMsg    string
	submitted bool
	cancelled bool
}

// NewLoginModel creates a [LoginModel] pre-filled with initial. Focus starts
// on the first empty field; the password and 2FA fields use masked echo.
func NewLoginModel(host string, initial models.Credentials) *LoginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.SetValue(initial.Username)

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.SetValue(initial.Password)

	twoFA := textinput.New()
	twoFA.Placeholder = "2FA code (optional)"
	twoFA.CharLimit = 16
	twoFA.Width = 40
	twoFA.EchoMode = textinput.EchoPassword
	twoFA.EchoCharacter = '*'
	twoFA.SetValue(initial.TwoFA)

	m := &LoginModel{
		host:   host,
		inputs: []textinput.Model{username, password, twoFA},
	}

	switch {
	case initial.Username == "":
		m.focus = fieldUsername
	case initial.Password == "":
		m.focus = fieldPassword
	default:
		m.focus = fieldTwoFA
	}
	m.inputs[m.focus].Focus()

	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - ctrl+c, esc     cancel the prompt.
//   - tab, shift+tab  move focus between inputs.
//   - enter           submit when username and password are set, otherwise
//     move to the next input.
//
// All other key events are forwarded to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			creds := m.Credentials()
			if creds.Complete() {
				m.errMsg = ""
				m.submitted = true
				return m, tea.Quit
			}
			if m.focus == len(m.inputs)-1 {
				m.errMsg = "username and password are required"
				return m, nil
			}
			m.focusNext()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Tracker   │ ")
	b.WriteString(m.host)
	b.WriteString("\n")
	b.WriteString("Username  │ ")
	b.WriteString(m.inputs[fieldUsername].View())
	b.WriteString("\n")
	b.WriteString("Password  │ ")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("\n")
	b.WriteString("2FA       │ ")
	b.WriteString(m.inputs[fieldTwoFA].View())

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("LOG IN", b.String(), "esc: cancel │ tab: next field │ enter: log in")
}

// Credentials returns the values currently typed in.
func (m *LoginModel) Credentials() models.Credentials {
	return models.Credentials{
		Username: strings.TrimSpace(m.inputs[fieldUsername].Value()),
		Password: m.inputs[fieldPassword].Value(),
		TwoFA:    strings.TrimSpace(m.inputs[fieldTwoFA].Value()),
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
