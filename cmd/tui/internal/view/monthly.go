package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mise-ops/chobo/internal/report"
)

type monthlyState int

const (
	monthlyStateInput monthlyState = iota
	monthlyStateLoading
	monthlyStateResult
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(24)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

type MonthlyModel struct {
	CommonModel
	svc     *report.Service
	storeID string

	state   monthlyState
	form    *huh.Form
	month   string
	spinner spinner.Model

	result *report.MonthlyReport
	err    error
}

func NewMonthlyModel(svc *report.Service, storeID string) MonthlyModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := MonthlyModel{
		svc:     svc,
		storeID: storeID,
		state:   monthlyStateInput,
		month:   time.Now().Format("2006-01"),
		spinner: s,
	}
	m.form = m.buildForm()

	return m
}

func (m MonthlyModel) Title() string { return "Monthly Report" }

func (m MonthlyModel) ShortHelp() string {
	if m.state == monthlyStateResult {
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: confirm"
}

func (m MonthlyModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m MonthlyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case monthlyStateInput:
		return m.updateInput(msg)
	case monthlyStateLoading:
		return m.updateLoading(msg)
	case monthlyStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m MonthlyModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	m.state = monthlyStateLoading
	m.err = nil
	m.month = m.form.GetString("month")

	return m, tea.Batch(m.spinner.Tick, m.loadCmd(m.month))
}

func (m MonthlyModel) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(monthlyLoadedMsg); ok {
		m.state = monthlyStateResult
		m.result = result.report
		m.err = result.err

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m MonthlyModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	return m, nil
}

func (m MonthlyModel) buildForm() *huh.Form {
	// The model is copied on every Update, so the completed value is read
	// back through form.GetString rather than a field binding.
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

func validateMonth(s string) error {
	if _, err := time.Parse("2006-01", s); err != nil {
		return fmt.Errorf("expected YYYY-MM")
	}

	return nil
}

func (m MonthlyModel) View() string {
	switch m.state {
	case monthlyStateInput:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case monthlyStateLoading:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Computing monthly report...", m.spinner.View()),
		)

	case monthlyStateResult:
		return m.viewResult()
	}

	return ""
}

func (m MonthlyModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			errStyle.Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	rep := m.result
	kpi := rep.KPI

	var b strings.Builder

	header := rep.Month
	if rep.StoreName != "" {
		header += " " + rep.StoreName
	}

	b.WriteString(titleStyle.Render(header) + "\n")

	line := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}

	b.WriteString(sectionStyle.Render("Sales") + "\n")
	line("Total (incl. tax)", FormatAmount(kpi.SalesTotalInclTax))
	line("Subtotal (excl. tax)", FormatAmount(kpi.SalesSubtotalExclTax))
	line("Receipts / Guests", fmt.Sprintf("%d / %d", kpi.ReceiptCount, kpi.GuestCount))
	line("Avg spend per guest", formatOptAmount(kpi.AvgSpendPerGuest))
	line("Avg spend per receipt", formatOptAmount(kpi.AvgSpendPerReceipt))

	b.WriteString(sectionStyle.Render("Payments") + "\n")
	line("Cash", fmt.Sprintf("%s (%s)", FormatAmount(kpi.PayCash), FormatRatio(kpi.CashRatio)))
	line("Card", fmt.Sprintf("%s (%s)", FormatAmount(kpi.PayCard), FormatRatio(kpi.CardRatio)))
	line("QR", fmt.Sprintf("%s (%s)", FormatAmount(kpi.PayQR), FormatRatio(kpi.QRRatio)))
	line("Other", fmt.Sprintf("%s (%s)", FormatAmount(kpi.PayOther), FormatRatio(kpi.OtherRatio)))

	b.WriteString(sectionStyle.Render("Costs") + "\n")
	line("COGS", fmt.Sprintf("%s (%s)", FormatAmount(kpi.COGSTotal), FormatRatio(kpi.COGSRatio)))
	line("Gross profit", fmt.Sprintf("%s (%s)", FormatAmount(kpi.GrossProfit), FormatRatio(kpi.GrossMarginRatio)))
	line("Expenses total", FormatAmount(kpi.ExpensesTotal))

	b.WriteString(sectionStyle.Render("Cash & Labor") + "\n")
	line("Closing difference", FormatAmount(kpi.ClosingDifferenceTotal))
	line("Closing issue days", fmt.Sprintf("%d", kpi.ClosingIssueDays))
	line("Bank deposits", FormatAmount(kpi.DepositToBankTotal))
	line("Labor minutes", fmt.Sprintf("%d", kpi.LaborMinutesTotal))
	line("Sales per labor hour", formatOptAmount(kpi.SalesPerLaborHour))

	if len(rep.Breakdowns.ExpensesByVendor) > 0 {
		b.WriteString(sectionStyle.Render("Top Vendors") + "\n")

		for _, v := range rep.Breakdowns.ExpensesByVendor {
			line(v.Name, FormatAmount(v.Amount))
		}
	}

	for _, warning := range rep.Warnings {
		b.WriteString("\n" + warnStyle.Render(
			fmt.Sprintf("⚠ %s (%s)", warning.Message, FormatAmount(warning.Value)),
		) + "\n")
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func formatOptAmount(v *float64) string {
	if v == nil {
		return "—"
	}

	return yenPrinter.Sprintf("¥%.0f", *v)
}

type monthlyLoadedMsg struct {
	report *report.MonthlyReport
	err    error
}

const computeTimeout = 5 * time.Second

func (m MonthlyModel) loadCmd(month string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), computeTimeout)
		defer cancel()

		// Validated by the form.
		date, _ := time.Parse("2006-01", month)

		rep, err := m.svc.ComputeMonth(ctx, m.storeID, date)

		return monthlyLoadedMsg{report: rep, err: err}
	}
}
