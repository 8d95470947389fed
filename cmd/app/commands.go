package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderflow/cmd"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/production"
	"orderflow/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	serviceName     = "orderflow"
	serviceVersion  = "0.1.0"
	shutdownTimeout = 10 * time.Second
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and the report jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, appLogger, err := bootstrap(c)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
				ServiceName:    serviceName,
				ServiceVersion: serviceVersion,
				Endpoint:       cfg.Telemetry.Endpoint,
				Insecure:       cfg.Telemetry.Insecure,
			})
			if err != nil {
				return err
			}
			defer func() { _ = shutdownTelemetry(context.Background()) }()

			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			publisher, closePublisher, err := cmd.NewEventPublisher(cfg.Kafka, appLogger)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := closePublisher(); closeErr != nil {
					appLogger.Error("failed to close event publisher", "error", closeErr)
				}
			}()

			app := cmd.NewCompositionRoot(cfg, db, publisher, appLogger)

			jobManager := app.CreateJobManager()
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			return startWebServer(ctx, app, cfg.HTTP.Port)
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, appLogger, err := bootstrap(c)
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			if err = postgres.Migrate(c.Context(), db); err != nil {
				return err
			}
			appLogger.Info("schema migrated")
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default production steps that are missing",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, appLogger, err := bootstrap(c)
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			publisher, closePublisher, err := cmd.NewEventPublisher(cfg.Kafka, appLogger)
			if err != nil {
				return err
			}
			defer func() { _ = closePublisher() }()

			app := cmd.NewCompositionRoot(cfg, db, publisher, appLogger)
			seed, err := commands.NewSeedProductionStepsCommand(production.DefaultDefinitions())
			if err != nil {
				return err
			}

			handler := app.CreateSeedProductionStepsCommandHandler()
			inserted, err := handler.Handle(c.Context(), seed)
			if err != nil {
				return err
			}
			appLogger.Info("production steps seeded", "inserted", inserted)
			return nil
		},
	}
}

func bootstrap(c *cobra.Command) (cmd.Config, *slog.Logger, error) {
	envFile, err := c.Flags().GetString("env-file")
	if err != nil {
		return cmd.Config{}, nil, err
	}
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(appLogger)
	return cfg, appLogger, nil
}

func openDB(cfg cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(cfg.DB.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	app.CreateHTTPServer().Register(e)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
