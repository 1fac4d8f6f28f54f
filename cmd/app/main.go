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

	"jobboard/cmd"
	"jobboard/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	configs, err := cmd.LoadConfig(os.Getenv("JOBBOARD_CONFIG"))
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err = configs.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	appLogger := logger.New(os.Stdout, logger.Config{Level: configs.LogLevel, Format: configs.LogFormat})
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, appLogger)
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			appLogger.Error("Failed to release resources", "error", closeErr)
		}
	}()

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		appLogger.Error("Failed to start jobs", "error", err)
		return
	}
	defer jobManager.StopAll()

	e, err := app.NewRouter()
	if err != nil {
		appLogger.Error("Failed to build router", "error", err)
		return
	}

	if err = startWebServer(ctx, e, configs.HTTPPort, appLogger); err != nil {
		appLogger.Error("Web server stopped with error", "error", err)
	}
}

// startWebServer serves until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
