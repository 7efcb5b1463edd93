package dataprocessing

import (
	"fmt"

	apperrors "battpulse/internal/errors"
	"battpulse/internal/files"
	"battpulse/pkg/contracts/domain"
)

// Metadata table columns.
const (
	colBatteryID = "battery_id"
	colType      = "type"
	colStartTime = "start_time"
	colRe        = "Re"
	colRct       = "Rct"
	colCapacity  = "Capacity"
	colFilename  = "filename"
)

// LoadMetadata reads the metadata table and normalizes every row into a
// domain.Record: vector timestamps become optional instants, numeric
// fields become optional reals. Row-level problems degrade to missing
// values; only an unloadable table (or one missing required columns) is
// an error, wrapping errors.ErrMetadataLoad.
func LoadMetadata(path string) ([]domain.Record, error) {
	table, err := files.ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMetadataLoad, err)
	}

	cols := make(map[string]int)
	for _, name := range []string{colBatteryID, colType, colStartTime, colRe, colRct, colCapacity, colFilename} {
		idx := table.Column(name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s: missing column %q", apperrors.ErrMetadataLoad, path, name)
		}
		cols[name] = idx
	}

	records := make([]domain.Record, 0, len(table.Rows))
	for i := range table.Rows {
		records = append(records, domain.Record{
			Row:       i,
			BatteryID: table.Field(i, cols[colBatteryID]),
			Type:      domain.ParseOpType(table.Field(i, cols[colType])),
			StartTime: ParseVectorTime(table.Field(i, cols[colStartTime])),
			Re:        CoerceReal(table.Field(i, cols[colRe])),
			Rct:       CoerceReal(table.Field(i, cols[colRct])),
			Capacity:  CoerceReal(table.Field(i, cols[colCapacity])),
			Filename:  table.Field(i, cols[colFilename]),
		})
	}
	return records, nil
}
