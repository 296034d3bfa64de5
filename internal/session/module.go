package session

import (
	"go.uber.org/fx"
)

// Module provides the session store and state manager
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewManager,
	),
)
