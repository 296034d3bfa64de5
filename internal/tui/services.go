package tui

import (
	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/session"
	"go.uber.org/fx"
)

// Services bundles everything the dashboard needs from the rest of the
// application.
type Services struct {
	fx.In

	Auth       *api.AuthService
	Users      *api.UsersService
	Businesses *api.BusinessesService
	Categories *api.CategoriesService
	Contacts   *api.ContactsService
	Logs       *api.LogsService
	Dashboard  *api.DashboardService
	Session    *session.Manager
}
