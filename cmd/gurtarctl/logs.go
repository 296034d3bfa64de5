package main

import (
	"github.com/spf13/cobra"

	"github.com/gurtar/gurtarctl/internal/api"
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Inspect admin action logs",
	}
	cmd.AddCommand(newLogsListCmd())
	return cmd
}

func newLogsListCmd() *cobra.Command {
	var filters api.LogsFilters

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List admin log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}

			resp, err := app.svc.Logs.List(cmd.Context(), filters)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Data))
			for _, l := range resp.Data {
				admin := "-"
				if l.Admin != nil {
					admin = l.Admin.Email
				}
				rows = append(rows, []string{
					l.CreatedAt, admin, l.ActionType, l.TargetType, l.TargetID, l.Description,
				})
			}
			if err := app.printer.Table(
				[]string{"When", "Admin", "Action", "Target", "Target ID", "Description"},
				rows, resp,
			); err != nil {
				return err
			}
			printMeta(resp.Meta)
			return nil
		},
	}

	cmd.Flags().IntVar(&filters.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&filters.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&filters.ActionType, "action", "", "Filter by action type")
	cmd.Flags().StringVar(&filters.TargetType, "target", "", "Filter by target type")
	cmd.Flags().StringVar(&filters.Search, "search", "", "Search term")
	cmd.Flags().StringVar(&filters.Sort, "sort", "", "Sort field")
	cmd.Flags().Var(newSortOrderValue(&filters.Order), "order", "Sort order (ASC|DESC)")
	return cmd
}
