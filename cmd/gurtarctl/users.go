package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/messages"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform users",
	}
	cmd.AddCommand(newUsersListCmd(), newUsersBanCmd(), newUsersUnbanCmd())
	return cmd
}

func newUsersListCmd() *cobra.Command {
	var filters api.UsersFilters
	var banned bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List platform users",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if cmd.Flags().Changed("banned") {
				filters.IsBanned = &banned
			}

			resp, err := app.svc.Users.List(cmd.Context(), filters)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Data))
			for _, u := range resp.Data {
				rows = append(rows, []string{
					u.ID, u.Email, u.FullName, u.Role,
					fmt.Sprintf("%t", u.IsBanned), fmt.Sprintf("%d", u.TotalOrders),
				})
			}
			if err := app.printer.Table(
				[]string{"ID", "Email", "Name", "Role", "Banned", "Orders"},
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
	cmd.Flags().StringVar(&filters.Role, "role", "", "Filter by role")
	cmd.Flags().BoolVar(&banned, "banned", false, "Filter by ban state")
	cmd.Flags().StringVar(&filters.Search, "search", "", "Search term")
	cmd.Flags().StringVar(&filters.Sort, "sort", "", "Sort field")
	cmd.Flags().Var(newSortOrderValue(&filters.Order), "order", "Sort order (ASC|DESC)")
	return cmd
}

func newUsersBanCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "ban USER_ID",
		Short: "Ban a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if err := app.svc.Users.Ban(cmd.Context(), args[0], reason); err != nil {
				return err
			}
			pterm.Success.Println(messages.BanSuccess)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the ban (required)")
	return cmd
}

func newUsersUnbanCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "unban USER_ID",
		Short: "Lift a user's ban",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if err := app.svc.Users.Unban(cmd.Context(), args[0], reason); err != nil {
				return err
			}
			pterm.Success.Println(messages.UnbanSuccess)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for lifting the ban (required)")
	return cmd
}
