package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gurtar/gurtarctl/internal/api"
)

func newStatsCmd() *cobra.Command {
	var filters api.StatsFilters
	var exportFormat string
	var outFile string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show platform statistics",
		Long: `Show the statistics dashboard payload for an optional date window.
With --export the server-rendered export (csv, json or excel) is written
to --out instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}

			if exportFormat != "" {
				if outFile == "" {
					return fmt.Errorf("--out is required with --export")
				}
				data, err := app.svc.Dashboard.Export(cmd.Context(), api.ExportFormat(exportFormat), filters)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outFile, data, 0o644); err != nil {
					return fmt.Errorf("failed to write export: %w", err)
				}
				pterm.Success.Printfln("Exported statistics to %s", outFile)
				return nil
			}

			stats, err := app.svc.Dashboard.Stats(cmd.Context(), filters)
			if err != nil {
				return err
			}
			return app.printer.Object(stats)
		},
	}

	cmd.Flags().StringVar(&filters.StartDate, "start", "", "Window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filters.EndDate, "end", "", "Window end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&exportFormat, "export", "", "Export format (csv|json|excel)")
	cmd.Flags().StringVar(&outFile, "out", "", "Export destination file")
	return cmd
}
