// Command pipeline runs one full ingestion and derivation pass over a
// battery cycling-test dataset and logs a per-battery summary for the
// operator. Presentation layers consume the same pipeline as a library.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"battpulse/internal/config"
	"battpulse/internal/dataprocessing"
	"battpulse/internal/files"
	"battpulse/internal/infrastructure"
)

func main() {
	dataDir := flag.String("data", "", "dataset root holding the metadata table (overrides config)")
	metadata := flag.String("metadata", "", "explicit metadata table path (overrides discovery)")
	workers := flag.Int("workers", 0, "concurrent measurement-file reads (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
		cfg.Paths.MeasurementDir = filepath.Join(*dataDir, "data")
	}

	logger, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if *metadata != "" {
		cfg.Paths.MetadataFile = *metadata
	}
	if *workers > 0 {
		cfg.Pipeline.Workers = *workers
	}

	disco := files.NewDiscovery(cfg.Paths.DataDir, cfg.Paths.MeasurementDir)
	metaPath, err := disco.MetadataPath(cfg.Paths.MetadataFile)
	if err != nil {
		logger.Error("Failed to locate metadata table", "error", err)
		os.Exit(1)
	}

	pipeline := dataprocessing.NewPipeline(logger, disco, dataprocessing.PipelineConfig{
		MetadataPath: metaPath,
		Workers:      cfg.Pipeline.Workers,
	})

	dataset, err := pipeline.Run(context.Background())
	if err != nil {
		logger.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}

	for _, id := range dataset.BatteryIDs() {
		logger.Info("battery summary",
			slog.String("battery_id", id),
			slog.Int("impedance_cycles", len(dataset.ImpedanceFor(id))),
			slog.Int("discharge_cycles", len(dataset.DischargeFor(id))))
	}
}
