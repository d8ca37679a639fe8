package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"tuilab/internal/database"
	"tuilab/internal/loan"
	"tuilab/internal/preview"
	"tuilab/internal/series"
	"tuilab/internal/session"
	"tuilab/internal/todo"
)

// runValidation exercises the headless services end to end without
// starting the TUI: session counter, todos, EMI math, CSV preview and
// the cached series source.
func runValidation() error {
	ctx := context.Background()

	db, err := database.Open("")
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	store := session.NewStore(db)
	if err := store.Begin(ctx); err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	if _, err := store.AdjustCounter(ctx, 2); err != nil {
		return fmt.Errorf("adjust counter: %w", err)
	}
	value, err := store.AdjustCounter(ctx, -1)
	if err != nil {
		return fmt.Errorf("adjust counter: %w", err)
	}
	if value != 1 {
		return fmt.Errorf("counter = %d, want 1", value)
	}
	if _, err := store.ResetCounter(ctx); err != nil {
		return fmt.Errorf("reset counter: %w", err)
	}

	todos := &todo.Service{Store: store}
	if _, err := todos.Add(ctx, "validate the build"); err != nil {
		return fmt.Errorf("add todo: %w", err)
	}
	if err := todos.Toggle(ctx, 0, true); err != nil {
		return fmt.Errorf("toggle todo: %w", err)
	}
	removed, err := todos.ClearCompleted(ctx)
	if err != nil {
		return fmt.Errorf("clear todos: %w", err)
	}
	if removed != 1 {
		return fmt.Errorf("cleared %d todos, want 1", removed)
	}

	result, err := loan.Calculate(loan.Input{Principal: 500000, AnnualRate: 9, TermMonths: 60})
	if err != nil {
		return fmt.Errorf("calculate emi: %w", err)
	}
	if math.Abs(result.Monthly-10379.18) > 0.01 {
		return fmt.Errorf("monthly emi = %.2f, want 10379.18", result.Monthly)
	}

	dir, err := os.MkdirTemp("", "tuilab-validate-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)
	csvPath := filepath.Join(dir, "sample.csv")
	if err := os.WriteFile(csvPath, []byte("date,amount\n2026-01-01,10\n2026-01-02,20\n"), 0o644); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	svc := &preview.Service{Dir: dir, Rows: 10}
	files, err := svc.ListFiles()
	if err != nil {
		return fmt.Errorf("list csv files: %w", err)
	}
	if len(files) != 1 {
		return fmt.Errorf("found %d csv files, want 1", len(files))
	}
	table, err := svc.Load(files[0])
	if err != nil {
		return fmt.Errorf("load csv: %w", err)
	}
	if got := table.Summary(); got != "2 rows × 2 cols" {
		return fmt.Errorf("summary = %q, want \"2 rows × 2 cols\"", got)
	}

	source := series.NewSource(42, 30, series.NewMemoryCache())
	anchor := database.Now()
	first, fromCache, err := source.Snapshot(ctx, anchor)
	if err != nil {
		return fmt.Errorf("first snapshot: %w", err)
	}
	if fromCache {
		return fmt.Errorf("first snapshot unexpectedly served from cache")
	}
	second, fromCache, err := source.Snapshot(ctx, anchor)
	if err != nil {
		return fmt.Errorf("second snapshot: %w", err)
	}
	if !fromCache {
		return fmt.Errorf("second snapshot missed the cache")
	}
	if len(first.Points) != len(second.Points) {
		return fmt.Errorf("snapshot length changed between reads")
	}
	for i := range first.Points {
		a, b := first.Points[i], second.Points[i]
		if !a.Date.Equal(b.Date) || a.Sales != b.Sales || a.Revenue != b.Revenue {
			return fmt.Errorf("snapshot point %d changed between reads", i)
		}
	}
	return nil
}
