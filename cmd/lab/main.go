package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/docker-lab/internal/app"
	"github.com/MKhiriev/docker-lab/internal/config"
	"github.com/MKhiriev/docker-lab/internal/logger"
	"github.com/MKhiriev/docker-lab/models"
)

// Set with -ldflags "-X main.viteAPIURL=... -X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
	viteAPIURL   string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("docker-lab")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// The terminal UI owns stdout, so it logs to a file.
	if !cfg.WebMode() {
		fileLog, closer, err := logger.NewFileLogger("docker-lab-tui", cfg.Log.File)
		if err != nil {
			log.Fatal().Err(err).Msg("error opening log file")
		}
		defer closer.Close()
		log = fileLog
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit, viteAPIURL)

	a, err := app.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = a.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("app run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", valueOrNA(buildVersion))
	fmt.Printf("Build date: %s\n", valueOrNA(buildDate))
	fmt.Printf("Build commit: %s\n", valueOrNA(buildCommit))
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
