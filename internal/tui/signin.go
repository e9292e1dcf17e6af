// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SignInModel is the Bubble Tea model for the sign-in screen. It asks for a
// display name and dispatches an async sign-in command on enter. On success it
// navigates back to the leave page with a [sessionChangedMsg] so the side
// panel reloads.
type SignInModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	input      textinput.Model
	submitting bool
	errMsg     string
}

// NewSignInModel creates a [SignInModel] with a focused name input.
func NewSignInModel(ctx context.Context, auth service.ClientAuthService) *SignInModel {
	input := textinput.New()
	input.Placeholder = "display name"
	input.CharLimit = 280
	input.Width = 40
	input.Focus()

	return &SignInModel{
		ctx:   ctx,
		auth:  auth,
		input: input,
	}
}

func (m *SignInModel) Init() tea.Cmd {
	m.errMsg = ""
	m.input.SetValue("")
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [signInResultMsg] clears submitting state and either shows the error
//     or returns to the leave page.
//   - esc returns to the leave page.
//   - enter dispatches the async sign-in command.
//
// All other key events are forwarded to the input widget.
func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signInResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageLeaves, Payload: sessionChangedMsg{}} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageLeaves, Payload: sessionChangedMsg{}} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				m.errMsg = "Name is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(name)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SignInModel) View() string {
	var b strings.Builder
	b.WriteString("Name │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: sign in")
}

func (m *SignInModel) cmdSignIn(name string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.SignIn(ctx, name)
		return signInResultMsg{session: session, err: err}
	}
}
