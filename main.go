package main

import (
	"context"
	"flag"
	"log"

	"github.com/fantakl/votes-admin/app"
	"github.com/fantakl/votes-admin/config"
	"github.com/fantakl/votes-admin/pkg/attr"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := app.ShutdownContext(context.Background())
	defer stop()

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := application.Start(ctx); err != nil {
		application.Observability.Logger.Error("Server stopped with error", attr.Error(err))
	}

	if err := application.Close(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	application.Observability.Logger.Info("Application shut down gracefully")
}
