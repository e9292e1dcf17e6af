package tui

import (
	"strings"

	"github.com/MKhiriev/go-leave-tracker/internal/page"
	"github.com/charmbracelet/bubbles/textinput"
)

// formLabels are shown in front of the create form inputs, in input order.
var formLabels = []string{"Name", "Start date", "End date", "Reason"}

type leaveFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLeaveFormModel() leaveFormModel {
	inputs := make([]textinput.Model, len(formLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 280
	}
	inputs[0].Placeholder = "name"
	inputs[1].Placeholder = "YYYY-MM-DD"
	inputs[1].CharLimit = 10
	inputs[2].Placeholder = "YYYY-MM-DD"
	inputs[2].CharLimit = 10
	inputs[3].Placeholder = "reason"

	inputs[0].Focus()
	return leaveFormModel{inputs: inputs}
}

// form returns the raw input values.
func (m leaveFormModel) form() page.Form {
	return page.Form{
		Name:      m.inputs[0].Value(),
		StartDate: m.inputs[1].Value(),
		EndDate:   m.inputs[2].Value(),
		Reason:    m.inputs[3].Value(),
	}
}

func (m *leaveFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *leaveFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m leaveFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Apply for leave"))
	b.WriteString("\n")
	for i, label := range formLabels {
		b.WriteString(padRight(label, 11))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Submitting...]")
	} else {
		b.WriteString("\n[Submit]")
	}
	return b.String()
}
