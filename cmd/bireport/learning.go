package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/GTDGit/gtd_bi/internal/analytics"
	"github.com/GTDGit/gtd_bi/internal/export"
	"github.com/GTDGit/gtd_bi/internal/service"
)

func newLearningCmd(a *app) *cobra.Command {
	var (
		region string
		out    string
		asCSV  bool
	)

	cmd := &cobra.Command{
		Use:   "learning",
		Short: "Build the learning-platform report (subscriptions, progress, books, revenues)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := analytics.ParseRegionFilter(region)
			if err != nil {
				return err
			}

			db, err := a.connect()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := contextWithTimeout(cmd, a.cfg.Report.Timeout)
			defer cancel()

			report, err := service.NewLearningReportService(db, a.formatter()).Build(ctx, filter)
			if err != nil {
				return err
			}

			if out == "" {
				return printJSON(cmd.OutOrStdout(), report)
			}

			now := time.Now()
			if err := export.ExportJSON(export.TimestampedFilename(out, "learning_report", "json", now), report); err != nil {
				return err
			}
			if asCSV {
				return export.ExportProgressCSV(export.TimestampedFilename(out, "learning_progress", "csv", now), report.Progress)
			}
			return nil
		},
	}

	addReportFlags(cmd, &region, &out)
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Also export the progress rows as CSV (with --out)")
	return cmd
}

func contextWithTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}
