package httpclient

import (
	"go.uber.org/fx"
)

// Module provides the shared HTTP client
var Module = fx.Options(
	fx.Provide(
		NewClient,
	),
)
