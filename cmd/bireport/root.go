package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GTDGit/gtd_bi/internal/analytics"
	"github.com/GTDGit/gtd_bi/internal/config"
	"github.com/GTDGit/gtd_bi/internal/database"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg     *config.Config
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bireport",
		Short:         "Compute sales and learning-platform KPI reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			setupLogger(cmd.ErrOrStderr(), a.verbose)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(newSalesCmd(a), newLearningCmd(a), newMigrateCmd(a))
	return root
}

// setupLogger writes human-readable logs to w so stdout stays clean for JSON.
func setupLogger(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

func (a *app) connect() (*sqlx.DB, error) {
	return database.Connect(&a.cfg.DB)
}

func (a *app) formatter() *analytics.Formatter {
	return analytics.NewFormatter(a.cfg.Report.Currency)
}

// addReportFlags registers the flags shared by the report subcommands.
func addReportFlags(cmd *cobra.Command, region *string, out *string) {
	cmd.Flags().StringVarP(region, "region", "r", analytics.AllRegionsValue, `Region to report on, or "all"`)
	cmd.Flags().StringVarP(out, "out", "o", "", "Export to timestamped files in this folder instead of printing")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
