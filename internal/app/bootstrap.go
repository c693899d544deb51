package app

import (
	"errors"

	"github.com/banarasikart/bsk-api/internal/config"
	"github.com/banarasikart/bsk-api/internal/http/handlers/admin"
	"github.com/banarasikart/bsk-api/internal/http/handlers/public"
	"github.com/banarasikart/bsk-api/internal/provider"
	"github.com/banarasikart/bsk-api/internal/router"
	"github.com/banarasikart/bsk-api/internal/worker"
)

// BuildRunner assembles the services for the requested mode.
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)

	var services []Service

	if mode == ModeAll || mode == ModeAPI {
		publicHandler := public.NewHandler(
			container.CartService,
			container.ProductService,
			container.CategoryService,
			container.OrderService,
			cfg.Cart.SessionHeader,
		)
		adminHandler := admin.NewHandler(
			container.ProductService,
			container.CategoryService,
			container.OrderService,
			container.StatsService,
			container.UploadService,
		)
		engine := router.New(router.Options{
			Config: cfg,
			Public: publicHandler,
			Admin:  adminHandler,
		})
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		services = append(services, NewHTTPService(addr, engine))
	}

	// ModeAll tolerates a disabled queue; an explicit worker mode does not.
	if mode == ModeWorker || (mode == ModeAll && cfg.Queue.Enabled) {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, &cfg.Cart, consumer)
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}
	return NewRunner(services...), nil
}

// Run is the application entrypoint.
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
