package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mise-ops/chobo/internal/config"
	"github.com/mise-ops/chobo/internal/fixture"
	choboHttp "github.com/mise-ops/chobo/internal/http"
	exportHandler "github.com/mise-ops/chobo/internal/http/export"
	reportHandler "github.com/mise-ops/chobo/internal/http/report"
	vendorHandler "github.com/mise-ops/chobo/internal/http/vendors"
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

func main() {
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

	if cfg.Fixture.Dir != "" {
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

		slog.Info("fixtures loaded", "dir", cfg.Fixture.Dir)
	}

	reportService := report.NewService(report.Stores{
		Sales:        sales,
		Expenses:     expenses,
		Cash:         cash,
		Closings:     closings,
		TimeRecords:  timeRecords,
		CostSettings: costSettings,
		Vendors:      vendors,
	}, employees, cfg.Store.Name)

	var (
		reportH = reportHandler.NewHandler(reportService, cfg.Store.ID)
		exportH = exportHandler.NewHandler(reportService, cfg.Store.ID)
		vendorH = vendorHandler.NewHandler(vendors, cfg.Store.ID)
	)

	router := choboHttp.New(reportH, exportH, vendorH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr, "store", cfg.Store.ID)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
