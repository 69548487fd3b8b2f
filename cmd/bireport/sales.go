package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/GTDGit/gtd_bi/internal/analytics"
	"github.com/GTDGit/gtd_bi/internal/export"
	"github.com/GTDGit/gtd_bi/internal/service"
)

func newSalesCmd(a *app) *cobra.Command {
	var (
		region string
		out    string
		asCSV  bool
	)

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Build the sales report (clients, products, sales)",
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

			report, err := service.NewSalesReportService(db, a.formatter()).Build(ctx, filter)
			if err != nil {
				return err
			}

			if out == "" {
				return printJSON(cmd.OutOrStdout(), report)
			}

			now := time.Now()
			if err := export.ExportJSON(export.TimestampedFilename(out, "sales_report", "json", now), report); err != nil {
				return err
			}
			if asCSV {
				return export.ExportSalesCSV(export.TimestampedFilename(out, "sales_rows", "csv", now), report.Rows)
			}
			return nil
		},
	}

	addReportFlags(cmd, &region, &out)
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Also export the detail rows as CSV (with --out)")
	return cmd
}
