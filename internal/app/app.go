package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/e-commerce/config"
	"github.com/alimikegami/e-commerce/internal/infrastructure/tracing"
	localmiddleware "github.com/alimikegami/e-commerce/internal/middleware"
	"github.com/alimikegami/e-commerce/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Server *echo.Echo
	Group  *echo.Group

	metrics       *echo.Echo
	traceProvider *sdktrace.TracerProvider
}

// InitLogger installs the JSON logger globally and as the fallback for
// contexts that carry no request logger.
func InitLogger(level string) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
}

func CreateApp(config *config.Config) *App {
	app := &App{Config: config}

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost, config.ServiceName)
	if err != nil {
		log.Error().Err(err).Str("component", "CreateApp").Msg("Failed to initialize tracing")
	}
	app.traceProvider = traceProvider

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler

	if traceProvider != nil {
		e.Use(localmiddleware.Tracing(traceProvider.Tracer(config.ServiceName)))
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(localmiddleware.Logger)

	app.metrics = echo.New()
	app.metrics.HideBanner = true
	app.metrics.GET("/metrics", echoprometheus.NewHandler())

	e.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, map[string]string{"message": "pong"})
	})

	app.Server = e
	app.Group = e.Group("")

	return app
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (app *App) Start() error {
	go func() {
		if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("component", "Start").Msg("Failed to start metrics server")
		}
	}()

	log.Info().Str("component", "Start").Str("service", app.Config.ServiceName).Str("address", app.Config.ServiceAddress).Msg("starting server")

	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves until ctx is cancelled and then shuts the server down.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Str("component", "Run").Msg("shutting down")
	return app.StopServer()
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := errors.Join(
		app.Server.Shutdown(ctx),
		app.metrics.Shutdown(ctx),
	)

	if app.traceProvider != nil {
		if shutdownErr := app.traceProvider.Shutdown(ctx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Str("component", "StopServer").Msg("Failed to shutdown tracing")
		}
	}

	return err
}
