package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/application/services"
	"github.com/mergington/activities/internal/infrastructure/config"
	"github.com/mergington/activities/internal/infrastructure/logger"
	"github.com/mergington/activities/internal/infrastructure/server"
	"github.com/mergington/activities/internal/infrastructure/storage"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the activities API server",
		Long:  "Start the activities API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the initial activity catalog",
		Long:  "Load the initial activity catalog into the data file when it is empty",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			fmt.Printf("%s %s\n", cfg.App.Name, cfg.App.Version)
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	store, err := storage.New(cfg.Storage)
	if err != nil {
		appLogger.Fatalw("Failed to open activity store", "error", err)
	}

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize server", "error", err)
	}

	if cfg.Storage.SeedOnStart {
		inserted, err := srv.Service().Seed(context.Background())
		if err != nil {
			appLogger.Fatalw("Failed to seed activity catalog", "error", err)
		}
		if inserted > 0 {
			appLogger.Infow("Activity catalog seeded", "count", inserted)
		}
	}

	appLogger.Infow("Starting activities API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"data_file", cfg.Storage.DataFile,
	)

	go func() {
		if err := srv.Start(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)); err != nil {
			appLogger.Infow("Server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("Server shutdown failed", "error", err)
	}
}

func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	store, err := storage.New(cfg.Storage)
	if err != nil {
		appLogger.Fatalw("Failed to open activity store", "error", err)
	}

	repo := repository.NewActivityRepository(store)
	service := services.NewActivityService(repo, appLogger)

	inserted, err := service.Seed(context.Background())
	if err != nil {
		appLogger.Fatalw("Failed to seed activity catalog", "error", err)
	}

	if inserted == 0 {
		fmt.Println("Activity catalog already populated, nothing to do")
	} else {
		fmt.Printf("Seeded %d activities into %s\n", inserted, cfg.Storage.DataFile)
	}
}
