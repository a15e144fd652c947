package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vbls/standconsole/internal/api"
	"github.com/vbls/standconsole/internal/config"
	"github.com/vbls/standconsole/internal/db"
	"github.com/vbls/standconsole/internal/logger"
	"github.com/vbls/standconsole/internal/repository"
	"github.com/vbls/standconsole/internal/repository/dao"
	"github.com/vbls/standconsole/internal/seed"
	"github.com/vbls/standconsole/internal/telemetry"
)

const (
	defaultConfigPath = "./cmd/app/config.yml"
	shutdownTimeout   = 10 * time.Second
)

// bootstrap loads the config, installs the global logger and opens the
// database. DATABASE_URL wins over the postgres section of the config.
func bootstrap(configPath string) (*config.AppConfig, *gorm.DB, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if err = logger.SetLevel(conf.API.LogLevel); err != nil {
		return nil, nil, fmt.Errorf("failed to set log level -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database -> %w", err)
	}

	return conf, postgresDB, nil
}

// Start serves the API until SIGINT or SIGTERM.
func Start(configPath string) error {
	conf, postgresDB, err := bootstrap(configPath)
	if err != nil {
		return err
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	err = config.Watch(configPath, func(c *config.AppConfig) {
		if err := logger.SetLevel(c.API.LogLevel); err != nil {
			zap.L().Warn("ignoring log level from reloaded config", zap.Error(err))
			return
		}
		zap.L().Info("log level reloaded", zap.String("level", logger.Level().String()))
	}, func(err error) {
		zap.L().Warn("config reload failed", zap.Error(err))
	})
	if err != nil {
		zap.L().Warn("config watch disabled", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry := telemetry.Setup(ctx, conf.Telemetry)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			zap.L().Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	s := api.NewServer(conf, postgresDB)
	server := &http.Server{
		Addr:         ":" + s.Config.API.Port,
		Handler:      otelhttp.NewHandler(s.Router, conf.Telemetry.ServiceName),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

func Migrate(configPath string) error {
	_, postgresDB, err := bootstrap(configPath)
	if err != nil {
		return err
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}
	zap.L().Info("tables migrated")

	return nil
}

func Seed(ctx context.Context, configPath string) error {
	_, postgresDB, err := bootstrap(configPath)
	if err != nil {
		return err
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	seeder := seed.NewSeeder(
		repository.NewStandRepository(dao.NewStandDAO(postgresDB)),
		repository.NewPresetRepository(dao.NewPresetDAO(postgresDB)),
	)
	if err = seeder.Run(ctx); err != nil {
		return fmt.Errorf("failed to seed -> %w", err)
	}

	return nil
}
