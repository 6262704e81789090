package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/lifedrawing-art/backend/internal/config"
	"github.com/lifedrawing-art/backend/internal/export"
	"github.com/lifedrawing-art/backend/pkg/logger"
)

// Runs the legacy export pipeline once: raw sheets in, parsed tables
// document out. The run is deterministic, so re-running over the same
// inputs overwrites the output with identical content.
func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	rawPath := flag.String("raw", cfg.Export.RawDatabasePath, "path to the raw legacy export")
	venuesPath := flag.String("venues", cfg.Export.StaticVenues, "path to the static venues dictionary")
	contactsPath := flag.String("contacts", cfg.Export.HostContacts, "path to the static host contacts")
	outputPath := flag.String("out", cfg.Export.OutputPath, "path to write the parsed tables document")
	reportPath := flag.String("report", "", "optional path to write the run report")
	anchorVenue := flag.String("anchor", "", "anchor venue name override")
	skipRates := flag.Bool("skip-rates", false, "skip the exchange rate fetch")
	flag.Parse()

	raw, err := export.LoadRawExport(*rawPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *rawPath).Msg("Failed to load raw export")
	}

	staticVenues, err := export.LoadStaticVenues(*venuesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *venuesPath).Msg("Failed to load static venues")
	}

	hostContacts, err := export.LoadHostContacts(*contactsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *contactsPath).Msg("Failed to load host contacts")
	}

	var rates *export.RatesDocument
	if !*skipRates {
		client := &export.RatesClient{
			URL: cfg.Export.RatesURL,
			Cache: export.RatesCache{
				Path: cfg.Export.RatesCachePath,
				TTL:  cfg.Export.RatesTTL,
			},
			Log: log,
		}
		rates, err = client.Fetch(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to fetch exchange rates")
		}
	}

	pipeline := &export.Pipeline{
		Raw:          raw,
		StaticVenues: staticVenues,
		HostContacts: hostContacts,
		Rates:        rates,
		Options: export.PipelineOptions{
			AdminEmail:    cfg.Auth.AdminEmail,
			AdminPassword: cfg.Auth.AdminPassword,
			AnchorVenue:   *anchorVenue,
		},
		Log: log,
	}

	tables, report, err := pipeline.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Pipeline run failed")
	}

	if err := export.SaveTables(tables, *outputPath, log); err != nil {
		log.Fatal().Err(err).Str("path", *outputPath).Msg("Failed to save tables")
	}

	if *reportPath != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to serialize report")
		}
		if err := os.WriteFile(*reportPath, data, 0644); err != nil {
			log.Fatal().Err(err).Str("path", *reportPath).Msg("Failed to write report")
		}
		log.Info().Str("path", *reportPath).Msg("Saved run report")
	}
}
