package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/mise-ops/chobo/cmd/tui/internal/view"
	"github.com/mise-ops/chobo/internal/config"
	"github.com/mise-ops/chobo/internal/fixture"
	"github.com/mise-ops/chobo/internal/report"
	"github.com/mise-ops/chobo/internal/timecard"

	cashflowStore "github.com/mise-ops/chobo/internal/cashflow/store"
	closingStore "github.com/mise-ops/chobo/internal/closing/store"
	costsettingStore "github.com/mise-ops/chobo/internal/costsetting/store"
	expenseStore "github.com/mise-ops/chobo/internal/expense/store"
	salesStore "github.com/mise-ops/chobo/internal/sales/store"
	timecardStore "github.com/mise-ops/chobo/internal/timecard/store"
	vendorStore "github.com/mise-ops/chobo/internal/vendors/store"
)

type model struct {
	reportService *report.Service
	storeID       string

	currentView View

	monthlyView view.MonthlyModel
	dailyView   view.DailyModel
	exportView  view.ExportModel
}

type View int

const (
	ViewMenu    View = 0
	ViewMonthly View = 1
	ViewDaily   View = 2
	ViewExport  View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		sales        = salesStore.New()
		expenses     = expenseStore.New()
		cash         = cashflowStore.New()
		closings     = closingStore.New()
		timeRecords  = timecardStore.New()
		costSettings = costsettingStore.New()
		vendors      = vendorStore.New()
		employees    = timecard.NewEmployeeDirectory()
	)

	loader := fixture.NewLoader(fixture.Stores{
		Sales:       sales,
		Expenses:    expenses,
		Cash:        cash,
		Closings:    closings,
		TimeRecords: timeRecords,
		Vendors:     vendors,
		Employees:   employees,
	}, cfg.Store.ID)

	if err := loader.Load(context.Background(), cfg.Fixture.Dir); err != nil {
		slog.Error("failed to load fixtures", "dir", cfg.Fixture.Dir, "error", err)
		os.Exit(1)
	}

	svc := report.NewService(report.Stores{
		Sales:        sales,
		Expenses:     expenses,
		Cash:         cash,
		Closings:     closings,
		TimeRecords:  timeRecords,
		CostSettings: costSettings,
		Vendors:      vendors,
	}, employees, cfg.Store.Name)

	return model{
		reportService: svc,
		storeID:       cfg.Store.ID,
		currentView:   ViewMenu,
		monthlyView:   view.NewMonthlyModel(svc, cfg.Store.ID),
		dailyView:     view.NewDailyModel(svc, cfg.Store.ID),
		exportView:    view.NewExportModel(svc, cfg.Store.ID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewMonthly
				m.monthlyView = view.NewMonthlyModel(m.reportService, m.storeID)

				return m, m.monthlyView.Init()
			case "2":
				m.currentView = ViewDaily
				m.dailyView = view.NewDailyModel(m.reportService, m.storeID)

				return m, m.dailyView.Init()
			case "3":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.reportService, m.storeID)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewMonthly:
		var newModel tea.Model
		newModel, cmd = m.monthlyView.Update(msg)
		m.monthlyView = newModel.(view.MonthlyModel)
	case ViewDaily:
		var newModel tea.Model
		newModel, cmd = m.dailyView.Update(msg)
		m.dailyView = newModel.(view.DailyModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Chobo TUI\n\n" +
				"1. Monthly Report\n" +
				"2. Daily Series\n" +
				"3. Export CSV\n\n" +
				"q. Quit",
		)
	case ViewMonthly:
		return m.monthlyView.View()
	case ViewDaily:
		return m.dailyView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
