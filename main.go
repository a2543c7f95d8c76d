package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cylaba/internal/config"
	"cylaba/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cylaba",
		Short: "Cylaba uniform shop backend",
		Long:  "Cylaba serves the orders, product catalog and school list of a school-uniform shop.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create the data documents with their initial content and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	appLog, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, appLog, nil
}

func runServer() error {
	cfg, appLog, err := setup()
	if err != nil {
		log.Print(err)
		return err
	}
	defer appLog.Close()

	app, err := NewApp(cfg, appLog)
	if err != nil {
		appLog.Errorw("Failed to initialize application", "error", err)
		return err
	}

	if err := app.StartEventLog(); err != nil {
		appLog.Warnw("Failed to start event consumer", "error", err)
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		appLog.Infow("Starting server", "addr", cfg.AppPort, "store", cfg.StoreBackend, "data_dir", cfg.DataDir)
		listenErr <- app.Fiber.Listen(cfg.AppPort)
	}()

	select {
	case <-quit:
		appLog.Infow("Shutting down server")
	case err := <-listenErr:
		if err != nil {
			appLog.Errorw("Server failed", "error", err)
			app.Shutdown()
			return err
		}
	}

	if err := app.Shutdown(); err != nil {
		appLog.Errorw("Error during shutdown", "error", err)
		return err
	}
	appLog.Infow("Server gracefully stopped")
	return nil
}

func runSeed() error {
	cfg, appLog, err := setup()
	if err != nil {
		log.Print(err)
		return err
	}
	defer appLog.Close()

	colls, err := openCollections(cfg, appLog)
	if err != nil {
		appLog.Errorw("Failed to open store", "error", err)
		return err
	}
	defer colls.backend.Close()

	if err := colls.seed(context.Background()); err != nil {
		appLog.Errorw("Failed to seed collections", "error", err)
		return err
	}
	appLog.Infow("Collections ready", "store", cfg.StoreBackend, "data_dir", cfg.DataDir)
	return nil
}
