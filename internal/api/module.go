package api

import (
	"go.uber.org/fx"
)

// Module provides the API services
var Module = fx.Options(
	fx.Provide(
		NewCache,
		NewAuthService,
		NewUsersService,
		NewBusinessesService,
		NewCategoriesService,
		NewContactsService,
		NewLogsService,
		NewDashboardService,
	),
)
