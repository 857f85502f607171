package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mise-ops/chobo/internal/report"
	"github.com/mise-ops/chobo/internal/reportcsv"
)

type exportState int

const (
	exportStateForm exportState = iota
	exportStateExporting
	exportStateResult
)

type exportKind string

const (
	exportKindSummary    exportKind = "summary"
	exportKindDaily      exportKind = "daily"
	exportKindAttendance exportKind = "attendance"
)

type ExportModel struct {
	CommonModel
	svc     *report.Service
	storeID string

	state   exportState
	form    *huh.Form
	spinner spinner.Model

	month string
	kind  exportKind
	path  string

	written string
	err     error
}

func NewExportModel(svc *report.Service, storeID string) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		svc:     svc,
		storeID: storeID,
		state:   exportStateForm,
		month:   time.Now().Format("2006-01"),
		kind:    exportKindSummary,
		path:    "./exports",
		spinner: s,
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) Title() string { return "Export CSV" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStateForm:
		return m.updateForm(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	m.state = exportStateExporting
	m.err = nil
	m.month = m.form.GetString("month")
	m.kind = m.form.Get("kind").(exportKind)
	m.path = m.form.GetString("path")

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd())
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportDoneMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.written = result.path

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	return m, nil
}

func (m ExportModel) buildForm() *huh.Form {
	// Completed values are read back through form.Get*, see MonthlyModel.
	month := m.month
	kind := m.kind
	path := m.path

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("month").
				Title("Month").
				Description("YYYY-MM").
				Placeholder("2024-06").
				Validate(validateMonth).
				Value(&month),
			huh.NewSelect[exportKind]().
				Key("kind").
				Title("Report").
				Options(
					huh.NewOption("Monthly summary", exportKindSummary),
					huh.NewOption("Monthly daily series", exportKindDaily),
					huh.NewOption("Attendance", exportKindAttendance),
				).
				Value(&kind),
			huh.NewInput().
				Key("path").
				Title("Output Directory").
				Description("Created if it doesn't exist").
				Placeholder("./exports").
				Value(&path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Writing CSV...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			errStyle.Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			"Written: "+m.written,
		),
	)
}

type exportDoneMsg struct {
	path string
	err  error
}

func (m ExportModel) runExportCmd() tea.Cmd {
	month := m.month
	kind := m.kind
	dir := m.path

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), computeTimeout)
		defer cancel()

		date, _ := time.Parse("2006-01", month)

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportDoneMsg{err: fmt.Errorf("creating output directory: %w", err)}
		}

		path := filepath.Join(dir, fmt.Sprintf("%s-%s.csv", kind, month))

		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: fmt.Errorf("creating file: %w", err)}
		}
		defer f.Close()

		switch kind {
		case exportKindSummary:
			summary, err := m.svc.MonthlySummary(ctx, m.storeID, date)
			if err != nil {
				return exportDoneMsg{err: err}
			}

			if err := reportcsv.WriteMonthlySummary(f, summary); err != nil {
				return exportDoneMsg{err: err}
			}

		case exportKindDaily:
			rows, err := m.svc.ComputeMonthlyDaily(ctx, m.storeID, date)
			if err != nil {
				return exportDoneMsg{err: err}
			}

			if err := reportcsv.WriteMonthlyDaily(f, rows); err != nil {
				return exportDoneMsg{err: err}
			}

		case exportKindAttendance:
			rows, err := m.svc.AttendanceRows(ctx, m.storeID, date)
			if err != nil {
				return exportDoneMsg{err: err}
			}

			if err := reportcsv.WriteAttendance(f, rows); err != nil {
				return exportDoneMsg{err: err}
			}
		}

		return exportDoneMsg{path: path}
	}
}
