package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/internal/page"
	"github.com/charmbracelet/lipgloss"
)

const (
	nameColWidth   = 16
	dateColWidth   = 10
	reasonColWidth = 28
)

// renderLeaveList draws rows as a table with the row at cursor highlighted.
func renderLeaveList(v page.View, cursor int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Leave requests"))
	b.WriteString("\n")

	if text := v.LoadingText(); text != "" {
		b.WriteString(text)
		b.WriteString("\n")
	}
	if v.ListError != "" {
		b.WriteString(errorStyle.Render("Error: " + v.ListError))
		b.WriteString("\n")
	}
	if v.DeleteError != "" {
		b.WriteString(errorStyle.Render(v.DeleteError))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("  %s │ %s │ %s │ %s\n",
		padRight("Name", nameColWidth),
		padRight("Start", dateColWidth),
		padRight("End", dateColWidth),
		"Reason"))
	b.WriteString("  ")
	b.WriteString(strings.Repeat("─", nameColWidth+dateColWidth*2+reasonColWidth+9))
	b.WriteString("\n")

	if len(v.Rows) == 0 && !v.Loading {
		b.WriteString("  No leave requests\n")
	}

	for i, row := range v.Rows {
		line := fmt.Sprintf("%s │ %s │ %s │ %s",
			padRight(fitText(row.Name, nameColWidth), nameColWidth),
			padRight(row.StartDate, dateColWidth),
			padRight(row.EndDate, dateColWidth),
			fitText(row.Reason, reasonColWidth))

		if i == cursor {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderSidePanel draws the balance, the auth toggle and the version.
func renderSidePanel(v page.View) string {
	var lines []string

	if text := v.BalanceText(); text != "" {
		lines = append(lines, titleStyle.Render(text), "")
	}

	if v.Session.SignedIn {
		lines = append(lines, v.Session.Status())
		if v.Session.Greeting != "" {
			lines = append(lines, v.Session.Greeting)
		}
		if v.Session.SecretMessage != "" {
			lines = append(lines, v.Session.SecretMessage)
		}
		lines = append(lines, "", "[s] Sign out")
	} else {
		lines = append(lines, "[s] Sign in")
	}

	if v.Version != "" {
		lines = append(lines, "", helpStyle.Render("v"+v.Version))
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
