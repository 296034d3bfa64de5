package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/messages"
)

func newBusinessesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "businesses",
		Short: "Manage marketplace businesses",
	}
	cmd.AddCommand(
		newBusinessesListCmd(),
		newBusinessesVerifyCmd(),
		newBusinessesUnverifyCmd(),
		newBusinessesToggleStatusCmd(),
		newBusinessesOrdersCmd(),
	)
	return cmd
}

func newBusinessesListCmd() *cobra.Command {
	var filters api.BusinessesFilters
	var verified, active bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List businesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if cmd.Flags().Changed("verified") {
				filters.IsVerified = &verified
			}
			if cmd.Flags().Changed("active") {
				filters.IsActive = &active
			}

			resp, err := app.svc.Businesses.List(cmd.Context(), filters)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Data))
			for _, b := range resp.Data {
				rows = append(rows, []string{
					b.ID, b.Name, b.City, b.Email,
					fmt.Sprintf("%t", b.IsVerified), fmt.Sprintf("%t", b.IsActive),
				})
			}
			if err := app.printer.Table(
				[]string{"ID", "Name", "City", "Email", "Verified", "Active"},
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
	cmd.Flags().BoolVar(&verified, "verified", false, "Filter by verification state")
	cmd.Flags().BoolVar(&active, "active", false, "Filter by active state")
	cmd.Flags().StringVar(&filters.City, "city", "", "Filter by city")
	cmd.Flags().StringVar(&filters.Search, "search", "", "Search term")
	cmd.Flags().StringVar(&filters.Sort, "sort", "", "Sort field")
	cmd.Flags().Var(newSortOrderValue(&filters.Order), "order", "Sort order (ASC|DESC)")
	return cmd
}

func newBusinessesVerifyCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "verify BUSINESS_ID",
		Short: "Mark a business as verified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if err := app.svc.Businesses.Verify(cmd.Context(), args[0], reason); err != nil {
				return err
			}
			pterm.Success.Println(messages.VerifySuccess)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the change (required)")
	return cmd
}

// Verify and unverify share one endpoint; the backend toggles on the
// business's current state.
func newBusinessesUnverifyCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "unverify BUSINESS_ID",
		Short: "Remove a business's verified flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if err := app.svc.Businesses.Verify(cmd.Context(), args[0], reason); err != nil {
				return err
			}
			pterm.Success.Println(messages.UnverifySuccess)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the change (required)")
	return cmd
}

func newBusinessesToggleStatusCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "toggle-status BUSINESS_ID",
		Short: "Flip a business between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if err := app.svc.Businesses.ToggleStatus(cmd.Context(), args[0], reason); err != nil {
				return err
			}
			pterm.Success.Println(messages.StatusUpdated)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the change (required)")
	return cmd
}

func newBusinessesOrdersCmd() *cobra.Command {
	var filters api.BusinessOrdersFilters
	var status string

	cmd := &cobra.Command{
		Use:   "orders BUSINESS_ID",
		Short: "List one business's orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			filters.Status = api.OrderStatus(status)

			resp, err := app.svc.Businesses.Orders(cmd.Context(), args[0], filters)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Data))
			for _, o := range resp.Data {
				buyer := "-"
				if o.User != nil {
					buyer = o.User.Email
				}
				rows = append(rows, []string{
					o.ID, o.CreatedAt, string(o.Status),
					fmt.Sprintf("%d", o.Quantity), o.TotalPrice, buyer,
				})
			}
			if err := app.printer.Table(
				[]string{"ID", "Created", "Status", "Qty", "Total", "Buyer"},
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
	cmd.Flags().StringVar(&status, "status", "", "Filter by order status")
	cmd.Flags().StringVar(&filters.Sort, "sort", "", "Sort field")
	cmd.Flags().Var(newSortOrderValue(&filters.Order), "order", "Sort order (ASC|DESC)")
	return cmd
}
