package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/messages"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage marketplace categories",
	}
	cmd.AddCommand(
		newCategoriesListCmd(),
		newCategoriesSubcategoriesCmd(),
		newCategoriesCreateCmd(),
		newCategoriesUpdateCmd(),
		newCategoriesDeleteCmd(),
	)
	return cmd
}

func newCategoriesSubcategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subcategories CATEGORY_ID",
		Short: "List the children of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}

			subs, err := app.svc.Categories.Subcategories(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(subs))
			for _, c := range subs {
				rows = append(rows, []string{c.ID, c.Name, c.Description})
			}
			return app.printer.Table([]string{"ID", "Name", "Description"}, rows, subs)
		},
	}
}

func newCategoriesListCmd() *cobra.Command {
	var filters api.CategoriesFilters

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}

			resp, err := app.svc.Categories.List(cmd.Context(), filters)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Data))
			for _, c := range resp.Data {
				parent := "-"
				if c.ParentID != nil {
					parent = *c.ParentID
				}
				rows = append(rows, []string{c.ID, c.Name, c.Description, parent})
			}
			if err := app.printer.Table(
				[]string{"ID", "Name", "Description", "Parent"},
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
	cmd.Flags().StringVar(&filters.Search, "search", "", "Search term")
	cmd.Flags().StringVar(&filters.ParentID, "parent", "", "Filter by parent category")
	cmd.Flags().BoolVar(&filters.IncludeSubcategories, "subcategories", false, "Include nested subcategories")
	cmd.Flags().StringVar(&filters.Sort, "sort", "", "Sort field")
	cmd.Flags().Var(newSortOrderValue(&filters.Order), "order", "Sort order (ASC|DESC)")
	return cmd
}

func newCategoriesCreateCmd() *cobra.Command {
	var input api.CategoryInput
	var parent string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if parent != "" {
				input.ParentID = &parent
			}

			created, err := app.svc.Categories.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			pterm.Success.Printfln("%s (id %s)", messages.CategoryCreated, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Category name (required)")
	cmd.Flags().StringVar(&input.Description, "description", "", "Category description")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent category id")
	return cmd
}

func newCategoriesUpdateCmd() *cobra.Command {
	var input api.CategoryInput
	var parent string

	cmd := &cobra.Command{
		Use:   "update CATEGORY_ID",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if parent != "" {
				input.ParentID = &parent
			}

			if _, err := app.svc.Categories.Update(cmd.Context(), args[0], input); err != nil {
				return err
			}
			pterm.Success.Println(messages.CategoryUpdated)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Category name (required)")
	cmd.Flags().StringVar(&input.Description, "description", "", "Category description")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent category id")
	return cmd
}

func newCategoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CATEGORY_ID",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			if err := app.svc.Categories.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			pterm.Success.Println(messages.CategoryDeleted)
			return nil
		},
	}
}
