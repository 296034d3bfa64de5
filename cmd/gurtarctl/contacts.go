package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/messages"
)

func newContactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage contact messages",
	}
	cmd.AddCommand(newContactsListCmd(), newContactsResolveCmd(), newContactsSendCmd())
	return cmd
}

func newContactsSendCmd() *cobra.Command {
	var input api.CreateContactInput

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message through the public contact form",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The contact form is public; no session required.
			app, err := newApplication()
			if err != nil {
				return err
			}
			if err := app.svc.Contacts.Create(cmd.Context(), input); err != nil {
				return err
			}
			pterm.Success.Println("Message sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Sender name (required)")
	cmd.Flags().StringVar(&input.Email, "email", "", "Sender email (required)")
	cmd.Flags().StringVar(&input.Subject, "subject", "", "Subject (required)")
	cmd.Flags().StringVar(&input.Message, "message", "", "Message body (required)")
	return cmd
}

func newContactsListCmd() *cobra.Command {
	var filters api.ContactsFilters
	var resolved bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contact messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if cmd.Flags().Changed("resolved") {
				filters.IsResolved = &resolved
			}

			resp, err := app.svc.Contacts.List(cmd.Context(), filters)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Data))
			for _, c := range resp.Data {
				rows = append(rows, []string{
					c.ID, c.Name, c.Email, c.Subject, fmt.Sprintf("%t", c.IsResolved),
				})
			}
			if err := app.printer.Table(
				[]string{"ID", "From", "Email", "Subject", "Resolved"},
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
	cmd.Flags().BoolVar(&resolved, "resolved", false, "Filter by resolution state")
	cmd.Flags().StringVar(&filters.Search, "search", "", "Search term")
	cmd.Flags().StringVar(&filters.Sort, "sort", "", "Sort field")
	cmd.Flags().Var(newSortOrderValue(&filters.Order), "order", "Sort order (ASC|DESC)")
	return cmd
}

func newContactsResolveCmd() *cobra.Command {
	var unresolve bool

	cmd := &cobra.Command{
		Use:   "resolve MESSAGE_ID",
		Short: "Mark a contact message resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if err := app.svc.Contacts.SetResolved(cmd.Context(), args[0], !unresolve); err != nil {
				return err
			}
			if unresolve {
				pterm.Success.Println(messages.ContactUnresolved)
			} else {
				pterm.Success.Println(messages.ContactResolved)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unresolve, "unresolve", false, "Mark unresolved instead")
	return cmd
}
