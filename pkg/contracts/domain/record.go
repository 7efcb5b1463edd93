package domain

import (
	"strings"
	"time"
)

// OpType classifies a cycling-test operation.
type OpType string

const (
	OpDischarge OpType = "discharge"
	OpImpedance OpType = "impedance"
	OpCharge    OpType = "charge"
	OpOther     OpType = "other"
)

// ParseOpType maps a raw metadata type field onto an OpType. Unknown or
// empty values classify as OpOther so an unexpected operation type never
// aborts a load.
func ParseOpType(s string) OpType {
	switch OpType(strings.ToLower(strings.TrimSpace(s))) {
	case OpDischarge:
		return OpDischarge
	case OpImpedance:
		return OpImpedance
	case OpCharge:
		return OpCharge
	default:
		return OpOther
	}
}

// Float is an optional real number. Valid reports whether Float64 carries
// a value; a missing field is never encoded as zero or NaN.
type Float struct {
	Float64 float64 `json:"value"`
	Valid   bool    `json:"valid"`
}

// NewFloat returns a present Float.
func NewFloat(v float64) Float {
	return Float{Float64: v, Valid: true}
}

// Time is an optional instant.
type Time struct {
	Time  time.Time `json:"time"`
	Valid bool      `json:"valid"`
}

// NewTime returns a present Time.
func NewTime(t time.Time) Time {
	return Time{Time: t, Valid: true}
}

// Record is one normalized row of the cycling-test metadata table.
// Row keeps the original 0-based position in the source table; it is the
// stable tie-break when ordering records with equal or missing start
// times. Records are never mutated after load.
type Record struct {
	Row       int    `json:"row"`
	BatteryID string `json:"battery_id"`
	Type      OpType `json:"type"`
	StartTime Time   `json:"start_time"`
	Re        Float  `json:"re"`
	Rct       Float  `json:"rct"`
	Capacity  Float  `json:"capacity"`
	Filename  string `json:"filename"`
}

// ImpedanceRecord is a Record of type impedance, ranked within the
// impedance partition and carrying its derived summary statistic.
// CycleNumber is a dense 1-based chronological rank assigned before
// cleaning; cleaned subsets keep their original ranks.
type ImpedanceRecord struct {
	Record
	CycleNumber        int   `json:"impedance_cycle_number"`
	RectifiedImpedance Float `json:"rectified_impedance"`
}

// DischargeRecord is a Record of type discharge with its own cycle
// numbering space, unrelated to impedance ranks.
type DischargeRecord struct {
	Record
	CycleNumber int `json:"cycle_number"`
}
