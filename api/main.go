package api

import (
	"context"
	"fmt"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/frontdesk-org/frontdesk/calendar"
	"github.com/frontdesk-org/frontdesk/config"
	"github.com/frontdesk-org/frontdesk/errors"
	"github.com/frontdesk-org/frontdesk/forms"
	"github.com/frontdesk-org/frontdesk/links"
	"github.com/frontdesk-org/frontdesk/logger"
	"github.com/frontdesk-org/frontdesk/reconcile"
	"github.com/frontdesk-org/frontdesk/store"
)

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, zapLogger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip request logging for the readiness probe
	skipper := RouteSkipper([]string{"/ready"})
	loggerMiddleware := echozap.ZapLogger(zapLogger)

	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := loggerMiddleware(next)
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return logged(c)
		}
	})

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterRoutes(e, handler)

	return e, nil
}

func RegisterRoutes(e *echo.Echo, handler *Handler) {
	e.GET("/v1/reconciliation", handler.GetReconciliation)

	e.POST("/v1/appointments/:appointmentId/confirmation", func(c echo.Context) error {
		return handler.ConfirmSuggestion(c, c.Param("appointmentId"))
	})
	e.POST("/v1/appointments/:appointmentId/link", func(c echo.Context) error {
		return handler.ManualLink(c, c.Param("appointmentId"))
	})
	e.POST("/v1/appointments/:appointmentId/skip", func(c echo.Context) error {
		return handler.SkipSuggestion(c, c.Param("appointmentId"))
	})
	e.GET("/v1/appointments/:appointmentId/candidates", func(c echo.Context) error {
		return handler.GetCandidates(c, c.Param("appointmentId"))
	})

	e.POST("/v1/forms", handler.CreateForm)
	e.GET("/v1/forms", handler.ListForms)
	e.GET("/v1/forms/:formId", func(c echo.Context) error {
		return handler.GetForm(c, c.Param("formId"))
	})
	e.POST("/v1/forms/:formId/submit", func(c echo.Context) error {
		return handler.SubmitForm(c, c.Param("formId"))
	})
	e.POST("/v1/forms/:formId/process", func(c echo.Context) error {
		return handler.ProcessForm(c, c.Param("formId"))
	})
	e.DELETE("/v1/forms/:formId", func(c echo.Context) error {
		return handler.DeleteForm(c, c.Param("formId"))
	})
}

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			func() (*config.Config, error) {
				cfg := config.New()
				return cfg, cfg.LoadFromEnv()
			},
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			forms.NewRepository,
			forms.NewService,
			links.NewRepository,
			func(repo links.Repository) links.Service { return repo },
			calendar.NewConfig,
			calendar.NewProvider,
			reconcile.NewConfig,
			reconcile.NewResultCache,
			reconcile.NewReconciler,
			reconcile.NewWorkflow,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	options := append(
		Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(options...).Run()
}
