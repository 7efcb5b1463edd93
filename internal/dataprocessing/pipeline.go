package dataprocessing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"battpulse/internal/files"
	"battpulse/pkg/contracts/domain"
)

// PipelineConfig holds the tunables for a pipeline run.
type PipelineConfig struct {
	// MetadataPath is the resolved location of the metadata table.
	MetadataPath string
	// Workers bounds the concurrent measurement-file reads; values below
	// one degrade to sequential reads.
	Workers int
}

// Pipeline executes the full single-pass ingestion and derivation:
// load metadata, classify and rank partitions, derive per-measurement
// rectified impedance, clean, and assemble the dataset handed to the
// presentation layer.
type Pipeline struct {
	logger *slog.Logger
	reader *MeasurementReader
	cfg    PipelineConfig
}

// NewPipeline creates a pipeline resolving measurement files through the
// given discovery.
func NewPipeline(logger *slog.Logger, disco *files.Discovery, cfg PipelineConfig) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Pipeline{
		logger: logger,
		reader: NewMeasurementReader(logger, disco),
		cfg:    cfg,
	}
}

// Run performs one complete pass and returns the assembled dataset. The
// only error condition is failing to load the metadata table; everything
// row-local degrades to exclusion from the cleaned output.
func (p *Pipeline) Run(ctx context.Context) (*domain.Dataset, error) {
	logger := p.logger.With(slog.String("run_id", uuid.NewString()))

	records, err := LoadMetadata(p.cfg.MetadataPath)
	if err != nil {
		logger.ErrorContext(ctx, "metadata load failed",
			slog.String("path", p.cfg.MetadataPath),
			slog.String("error", err.Error()))
		return nil, err
	}
	logger.InfoContext(ctx, "metadata loaded",
		slog.String("path", p.cfg.MetadataPath),
		slog.Int("rows", len(records)))

	parts := Classify(records)

	impedance := buildImpedance(RankByStartTime(parts[domain.OpImpedance]))
	discharge := buildDischarge(RankByStartTime(parts[domain.OpDischarge]))

	if err := p.deriveRectified(ctx, impedance); err != nil {
		return nil, err
	}

	cleaned := CleanImpedance(impedance)
	logger.InfoContext(ctx, "impedance partition cleaned",
		slog.Int("ranked", len(impedance)),
		slog.Int("kept", len(cleaned)))

	return domain.NewDataset(batteryIDs(records), cleaned, discharge), nil
}

// deriveRectified fans the measurement reads out over the worker pool.
// Every result lands in its record's own slot, so the partition order is
// identical to the sequential case regardless of read completion order.
func (p *Pipeline) deriveRectified(ctx context.Context, records []domain.ImpedanceRecord) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for i := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i].RectifiedImpedance = p.reader.RectifiedImpedance(ctx, records[i].Filename)
			return nil
		})
	}
	return g.Wait()
}

func buildImpedance(ranked []domain.Record) []domain.ImpedanceRecord {
	out := make([]domain.ImpedanceRecord, len(ranked))
	for i, rec := range ranked {
		out[i] = domain.ImpedanceRecord{Record: rec, CycleNumber: i + 1}
	}
	return out
}

func buildDischarge(ranked []domain.Record) []domain.DischargeRecord {
	out := make([]domain.DischargeRecord, len(ranked))
	for i, rec := range ranked {
		out[i] = domain.DischargeRecord{Record: rec, CycleNumber: i + 1}
	}
	return out
}

// batteryIDs returns the distinct battery identifiers in first-seen
// order, taken from the full normalized record set.
func batteryIDs(records []domain.Record) []string {
	seen := make(map[string]struct{}, len(records))
	var ids []string
	for _, rec := range records {
		if _, ok := seen[rec.BatteryID]; ok {
			continue
		}
		seen[rec.BatteryID] = struct{}{}
		ids = append(ids, rec.BatteryID)
	}
	return ids
}
