package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/task-tracker/internal/adapter"
	"github.com/MKhiriev/task-tracker/internal/client"
	"github.com/MKhiriev/task-tracker/internal/config"
	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		printBuildInfo()
		return
	}

	log := logger.NewConsoleLogger(os.Stderr, "task-tracker-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	taskAdapter, err := adapter.NewHTTPTaskTrackerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(taskAdapter, os.Stdout, log).Run(ctx, os.Args[1:]); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
