package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/creator-hub/internal/adapter"
	"github.com/MKhiriev/creator-hub/internal/client"
	"github.com/MKhiriev/creator-hub/internal/config"
	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("creator-hub-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	apiClient, err := adapter.NewHTTPAPIClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.State, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer db.Close()

	localStorages := store.NewClientStorages(db, log)

	app, err := client.NewApp(apiClient, localStorages.LocalStateRepository, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
