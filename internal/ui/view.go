package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateCatchForm:
		return m.viewCatchForm()
	case StateCatchList:
		return m.viewCatchList()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewLoading renders the first fetch
func (m Model) viewLoading() string {
	title := titleStyle.Render("≋ Strait Current")
	status := mutedStyle.Render("Fetching tides for " + m.date.Format("Mon Jan 2") + "...")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		title,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	errorMsg := "An unknown error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	help := helpStyle.Render("Press any key to continue • Q: Quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}

// viewDisplay renders the flow field beside the tide pane
func (m Model) viewDisplay() string {
	flow := m.renderFlowPane()
	tideWidth := m.width - lipgloss.Width(flow) - 1
	if tideWidth < 30 {
		tideWidth = 30
	}
	tides := m.renderTidePane(tideWidth)

	sections := []string{
		m.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, flow, " ", tides),
		m.renderStatus(),
	}
	if m.notice != "" {
		sections = append(sections, m.notice)
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewCatchForm() string {
	sections := []string{
		m.renderHeader(),
		"",
		titleStyle.Render("Log a catch"),
		"",
	}
	if m.form != nil {
		sections = append(sections, m.form.form.View())
	}
	sections = append(sections, helpStyle.Render("enter: next • esc: cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewCatchList() string {
	sections := []string{m.renderHeader(), "", m.catchList.View()}
	if m.notice != "" {
		sections = append(sections, m.notice)
	}
	sections = append(sections, helpStyle.Render("/: filter • esc: back • q: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader shows the title, the selected date and the estimate clock
func (m Model) renderHeader() string {
	title := titleStyle.Render("≋ Strait Current")
	date := valueStyle.Render(m.date.Format("Monday, Jan 2 2006"))

	var clock string
	if m.isLive() {
		clock = successStyle.Render("● live")
	} else {
		clock = mutedStyle.Render("at reference hour")
	}
	return fmt.Sprintf("%s  %s  %s", title, date, clock)
}
