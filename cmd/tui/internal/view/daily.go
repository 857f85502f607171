package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mise-ops/chobo/internal/report"
)

type dailyState int

const (
	dailyStateInput dailyState = iota
	dailyStateBrowse
)

type DailyModel struct {
	CommonModel
	svc     *report.Service
	storeID string

	state dailyState
	form  *huh.Form
	month string
	table table.Model

	rows []report.DailyRow
	err  error
}

func NewDailyModel(svc *report.Service, storeID string) DailyModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Sales", Width: 12},
		{Title: "Cash", Width: 11},
		{Title: "Card", Width: 11},
		{Title: "Expenses", Width: 11},
		{Title: "COGS%", Width: 7},
		{Title: "Labor", Width: 7},
		{Title: "Diff", Width: 9},
		{Title: "Issue", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := DailyModel{
		svc:     svc,
		storeID: storeID,
		state:   dailyStateInput,
		month:   time.Now().Format("2006-01"),
		table:   t,
	}
	m.form = m.buildForm()

	return m
}

func (m DailyModel) Title() string { return "Daily Series" }

func (m DailyModel) ShortHelp() string {
	if m.state == dailyStateBrowse {
		return "Esc: back | ↑/↓: navigate"
	}

	return "Esc: back | Enter: confirm"
}

func (m DailyModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m DailyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dailyLoadedMsg:
		m.err = msg.err
		m.rows = msg.rows
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	switch m.state {
	case dailyStateInput:
		return m.updateInput(msg)
	case dailyStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m DailyModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = dailyStateBrowse
	m.month = m.form.GetString("month")

	return m, m.loadCmd(m.month)
}

func (m DailyModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m DailyModel) buildForm() *huh.Form {
	// Completed value is read back through form.GetString, see MonthlyModel.
	month := m.month

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("month").
				Title("Month").
				Description("YYYY-MM").
				Placeholder("2024-06").
				Validate(validateMonth).
				Value(&month),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m *DailyModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))

	for _, d := range m.rows {
		diff := ""
		issue := ""

		if d.ClosingDifference != nil {
			diff = FormatAmount(*d.ClosingDifference)
		}

		if d.ClosingIssueFlag != nil {
			issue = "ok"
			if *d.ClosingIssueFlag {
				issue = "NG"
			}
		}

		rows = append(rows, table.Row{
			d.DateKey,
			FormatAmount(d.SalesTotalInclTax),
			FormatAmount(d.SalesCashInclTax),
			FormatAmount(d.SalesCardInclTax),
			FormatAmount(d.ExpensesTotal),
			FormatRatio(d.COGSRatio),
			fmt.Sprintf("%d", d.LaborMinutesTotal),
			diff,
			issue,
		})
	}

	m.table.SetRows(rows)
}

func (m DailyModel) View() string {
	if m.state == dailyStateInput {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			errStyle.Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		titleStyle.Render("Daily Series "+m.month) + "\n" + m.table.View(),
	)
}

type dailyLoadedMsg struct {
	rows []report.DailyRow
	err  error
}

func (m DailyModel) loadCmd(month string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), computeTimeout)
		defer cancel()

		date, _ := time.Parse("2006-01", month)

		rows, err := m.svc.ComputeMonthlyDaily(ctx, m.storeID, date)

		return dailyLoadedMsg{rows: rows, err: err}
	}
}
