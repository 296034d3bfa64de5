package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/gurtar/gurtarctl/internal/api"
)

func usersPage(svc *api.UsersService) TablePageModel {
	columns := []table.Column{
		{Title: "Email", Width: 28},
		{Title: "Name", Width: 20},
		{Title: "Role", Width: 14},
		{Title: "Banned", Width: 7},
		{Title: "Orders", Width: 7},
		{Title: "Eco level", Width: 10},
	}
	load := func(ctx context.Context, page, limit int) ([]table.Row, api.Meta, error) {
		resp, err := svc.List(ctx, api.UsersFilters{Page: page, Limit: limit})
		if err != nil {
			return nil, api.Meta{}, err
		}
		rows := make([]table.Row, 0, len(resp.Data))
		for _, u := range resp.Data {
			rows = append(rows, table.Row{
				u.Email, u.FullName, u.Role, yesNo(u.IsBanned),
				fmt.Sprintf("%d", u.TotalOrders), u.EcoLevel,
			})
		}
		return rows, resp.Meta, nil
	}
	return NewTablePageModel(pageUsers, "Users", columns, load)
}

func businessesPage(svc *api.BusinessesService) TablePageModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "City", Width: 14},
		{Title: "Email", Width: 24},
		{Title: "Verified", Width: 8},
		{Title: "Active", Width: 6},
	}
	load := func(ctx context.Context, page, limit int) ([]table.Row, api.Meta, error) {
		resp, err := svc.List(ctx, api.BusinessesFilters{Page: page, Limit: limit})
		if err != nil {
			return nil, api.Meta{}, err
		}
		rows := make([]table.Row, 0, len(resp.Data))
		for _, b := range resp.Data {
			rows = append(rows, table.Row{
				b.Name, b.City, b.Email, yesNo(b.IsVerified), yesNo(b.IsActive),
			})
		}
		return rows, resp.Meta, nil
	}
	return NewTablePageModel(pageBusinesses, "Businesses", columns, load)
}

func categoriesPage(svc *api.CategoriesService) TablePageModel {
	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Description", Width: 38},
		{Title: "Parent", Width: 10},
	}
	load := func(ctx context.Context, page, limit int) ([]table.Row, api.Meta, error) {
		resp, err := svc.List(ctx, api.CategoriesFilters{Page: page, Limit: limit})
		if err != nil {
			return nil, api.Meta{}, err
		}
		rows := make([]table.Row, 0, len(resp.Data))
		for _, c := range resp.Data {
			parent := "-"
			if c.ParentID != nil {
				parent = shortID(*c.ParentID)
			}
			rows = append(rows, table.Row{c.Name, truncate(c.Description, 38), parent})
		}
		return rows, resp.Meta, nil
	}
	return NewTablePageModel(pageCategories, "Categories", columns, load)
}

func contactsPage(svc *api.ContactsService) TablePageModel {
	columns := []table.Column{
		{Title: "From", Width: 18},
		{Title: "Email", Width: 24},
		{Title: "Subject", Width: 28},
		{Title: "Resolved", Width: 8},
	}
	load := func(ctx context.Context, page, limit int) ([]table.Row, api.Meta, error) {
		resp, err := svc.List(ctx, api.ContactsFilters{Page: page, Limit: limit})
		if err != nil {
			return nil, api.Meta{}, err
		}
		rows := make([]table.Row, 0, len(resp.Data))
		for _, c := range resp.Data {
			rows = append(rows, table.Row{c.Name, c.Email, truncate(c.Subject, 28), yesNo(c.IsResolved)})
		}
		return rows, resp.Meta, nil
	}
	return NewTablePageModel(pageContacts, "Contact Messages", columns, load)
}

func logsPage(svc *api.LogsService) TablePageModel {
	columns := []table.Column{
		{Title: "When", Width: 20},
		{Title: "Admin", Width: 22},
		{Title: "Action", Width: 20},
		{Title: "Target", Width: 10},
		{Title: "Description", Width: 30},
	}
	load := func(ctx context.Context, page, limit int) ([]table.Row, api.Meta, error) {
		resp, err := svc.List(ctx, api.LogsFilters{Page: page, Limit: limit})
		if err != nil {
			return nil, api.Meta{}, err
		}
		rows := make([]table.Row, 0, len(resp.Data))
		for _, l := range resp.Data {
			admin := "-"
			if l.Admin != nil {
				admin = l.Admin.Email
			}
			rows = append(rows, table.Row{
				l.CreatedAt, admin, l.ActionType, l.TargetType, truncate(l.Description, 30),
			})
		}
		return rows, resp.Meta, nil
	}
	return NewTablePageModel(pageLogs, "Admin Logs", columns, load)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
