package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is one back-office screen: the monthly report, the daily series
// table, or the CSV export form.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel holds state shared by every screen. Embedded by all views.
type CommonModel struct{}

// BackMsg is emitted by a screen when the user leaves it; the root model
// returns to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
