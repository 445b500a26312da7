package http

import (
	"time"

	"github.com/raydent/raydent_backend/config"
	"github.com/raydent/raydent_backend/internal/api/http/router"
	"github.com/raydent/raydent_backend/internal/app"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Modules is the full fx composition of the API server: infra,
// services, NATS workers, router and the fiber app itself.
func Modules(cfg *config.Config) []fx.Option {
	return []fx.Option{
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module,

		// Invoking *fiber.App forces its construction, which registers
		// the listener through the OnStart hook.
		fx.Invoke(func(*fiber.App) {}),
	}
}

// Start runs the API server and blocks until shutdown.
func Start(cfg *config.Config, shutdownTimeout time.Duration) {
	opts := append(Modules(cfg),
		fx.StopTimeout(shutdownTimeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	)
	fx.New(opts...).Run()
}
