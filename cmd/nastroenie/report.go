package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ktagirov/nastroenie/internal/config"
	"github.com/ktagirov/nastroenie/internal/engine"
	"github.com/ktagirov/nastroenie/internal/storage"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a sentiment report from stored records",
		Long: `Read one day's stored records and append a summary to that day's report
file. Useful for regenerating a report or summarizing a past day.`,
		RunE: runReport,
	}

	cmd.Flags().String("date", "", "day to report on (YYYY-MM-DD, default today)")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	store, err := storage.NewJSONStore(cfg.Storage.LogDir, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	records, err := store.ReadDay(date)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No records stored for %s\n", date)
		return nil
	}

	report := engine.BuildReport(date, time.Now(), records)
	if err := store.AppendReport(date, report); err != nil {
		return err
	}

	fmt.Printf("Daily report for %s\n", report.Date)
	fmt.Printf("  Messages:          %d\n", report.TotalMessages)
	fmt.Printf("  Average sentiment: %.2f\n", report.AverageSentiment)
	fmt.Printf("  Distribution:      %d positive / %d neutral / %d negative\n",
		report.Distribution.Positive, report.Distribution.Neutral, report.Distribution.Negative)
	fmt.Printf("  Outliers:          %d\n", report.OutliersCount)
	fmt.Printf("  Top positive:      %.1f\n", report.TopPositive)
	fmt.Printf("  Top negative:      %.1f\n", report.TopNegative)

	return nil
}
