package main

import (
	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/config"
	"github.com/gurtar/gurtarctl/internal/httpclient"
	"github.com/gurtar/gurtarctl/internal/logger"
	"github.com/gurtar/gurtarctl/internal/output"
	"github.com/gurtar/gurtarctl/internal/session"
	"github.com/gurtar/gurtarctl/internal/tui"
	"go.uber.org/fx"
)

// application bundles the wired services for one command invocation.
type application struct {
	cfg     *config.Config
	svc     tui.Services
	printer *output.Printer
}

// newApplication loads configuration, initializes logging and wires the
// service graph. Every command calls it once at the start of its RunE.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.InitLogger(&cfg.Logging); err != nil {
		return nil, err
	}

	app := &application{cfg: cfg}
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			func(c *config.Config) *config.APIConfig { return &c.API },
			func(c *config.Config) *config.StorageConfig { return &c.Storage },
		),
		session.Module,
		httpclient.Module,
		api.Module,
		fx.Populate(&app.svc),
	)
	if err := fxApp.Err(); err != nil {
		return nil, err
	}

	app.printer = output.NewPrinter(cfg)
	app.svc.Auth.Initialize()
	return app, nil
}

// requireAuth fails fast when the initialized session is anonymous.
func (a *application) requireAuth() (*session.User, error) {
	return a.svc.Auth.RequireAuth()
}
