package dataprocessing

import (
	"sort"

	"battpulse/pkg/contracts/domain"
)

// Classify partitions normalized records by operation type. Partitions
// keep the original load order; ranking happens separately.
func Classify(records []domain.Record) map[domain.OpType][]domain.Record {
	parts := make(map[domain.OpType][]domain.Record)
	for _, rec := range records {
		parts[rec.Type] = append(parts[rec.Type], rec)
	}
	return parts
}

// RankByStartTime returns a copy of the partition sorted ascending by
// start time. Records with a missing start time sort after all present
// ones; ties, and order among the missing, fall back to the original row
// index so the ordering is deterministic. Position i in the result is
// cycle number i+1.
func RankByStartTime(partition []domain.Record) []domain.Record {
	out := append([]domain.Record(nil), partition...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.StartTime.Valid && b.StartTime.Valid:
			if a.StartTime.Time.Equal(b.StartTime.Time) {
				return a.Row < b.Row
			}
			return a.StartTime.Time.Before(b.StartTime.Time)
		case a.StartTime.Valid:
			return true
		case b.StartTime.Valid:
			return false
		default:
			return a.Row < b.Row
		}
	})
	return out
}
