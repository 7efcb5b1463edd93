package dataprocessing

import (
	"context"
	"log/slog"
	"sort"

	apperrors "battpulse/internal/errors"
	"battpulse/internal/files"
	"battpulse/pkg/contracts/domain"
)

// rectifiedColumn is the expected column in per-measurement files.
const rectifiedColumn = "Rectified_Impedance"

// MeasurementReader derives the rectified-impedance summary statistic for
// individual impedance measurement files. It never returns an error: all
// failure kinds degrade to a missing value and are logged with their
// distinct kind.
type MeasurementReader struct {
	logger *slog.Logger
	disco  *files.Discovery
}

// NewMeasurementReader creates a measurement reader resolving filenames
// through the given discovery.
func NewMeasurementReader(logger *slog.Logger, disco *files.Discovery) *MeasurementReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &MeasurementReader{logger: logger, disco: disco}
}

// RectifiedImpedance reduces the Rectified_Impedance column of the named
// measurement file to the median of its coerced real parts. Missing file,
// unreadable content, absent column, or an entirely-missing column all
// yield a missing value.
func (r *MeasurementReader) RectifiedImpedance(ctx context.Context, name string) domain.Float {
	path, ok := r.disco.MeasurementPath(name)
	if !ok {
		r.report(ctx, apperrors.NewRead(apperrors.KindNotFound, name, nil))
		return domain.Float{}
	}

	table, err := files.ReadTable(path)
	if err != nil {
		if re, ok := apperrors.AsRead(err); ok {
			r.report(ctx, re)
		} else {
			r.report(ctx, apperrors.NewRead(apperrors.KindUnreadable, path, err))
		}
		return domain.Float{}
	}

	col := table.Column(rectifiedColumn)
	if col < 0 {
		r.report(ctx, apperrors.NewRead(apperrors.KindMissingColumn, path, nil))
		return domain.Float{}
	}

	values := make([]float64, 0, len(table.Rows))
	for i := range table.Rows {
		if v := CoerceReal(table.Field(i, col)); v.Valid {
			values = append(values, v.Float64)
		}
	}
	return median(values)
}

func (r *MeasurementReader) report(ctx context.Context, re *apperrors.ReadError) {
	attrs := []any{
		slog.String("kind", string(re.Kind)),
		slog.String("path", re.Path),
	}
	if re.Err != nil {
		attrs = append(attrs, slog.String("error", re.Err.Error()))
	}
	r.logger.WarnContext(ctx, "measurement file degraded to missing", attrs...)
}

// median returns the middle value of the inputs, averaging the two middle
// values for an even count. An empty input is missing.
func median(values []float64) domain.Float {
	if len(values) == 0 {
		return domain.Float{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return domain.NewFloat(sorted[mid])
	}
	return domain.NewFloat((sorted[mid-1] + sorted[mid]) / 2)
}
