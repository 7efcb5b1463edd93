package dataprocessing

import "battpulse/pkg/contracts/domain"

// Physical plausibility bounds for the key impedance metrics, in Ohms.
// The interval is open: boundary values are excluded.
const (
	cleanLowerBound = 0.0
	cleanUpperBound = 10.0
)

// CleanImpedance keeps the impedance records whose Re, Rct and derived
// rectified impedance are all present and strictly inside the
// plausibility interval. Surviving records are untouched; in particular
// their cycle numbers keep the pre-filter chronological ranks.
func CleanImpedance(records []domain.ImpedanceRecord) []domain.ImpedanceRecord {
	out := make([]domain.ImpedanceRecord, 0, len(records))
	for _, rec := range records {
		if plausible(rec.Re) && plausible(rec.Rct) && plausible(rec.RectifiedImpedance) {
			out = append(out, rec)
		}
	}
	return out
}

func plausible(f domain.Float) bool {
	return f.Valid && f.Float64 > cleanLowerBound && f.Float64 < cleanUpperBound
}
