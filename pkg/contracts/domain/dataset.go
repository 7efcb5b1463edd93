package domain

// Dataset is the assembled pipeline output handed to the presentation
// layer. It is read-only: accessors return copies, so a consumer cannot
// disturb another consumer's view.
type Dataset struct {
	batteries []string
	impedance []ImpedanceRecord
	discharge []DischargeRecord
}

// NewDataset builds a Dataset from the cleaned impedance partition, the
// discharge partition and the distinct battery identifiers in first-seen
// order. The input slices are copied.
func NewDataset(batteries []string, impedance []ImpedanceRecord, discharge []DischargeRecord) *Dataset {
	return &Dataset{
		batteries: append([]string(nil), batteries...),
		impedance: append([]ImpedanceRecord(nil), impedance...),
		discharge: append([]DischargeRecord(nil), discharge...),
	}
}

// BatteryIDs returns the distinct battery identifiers in first-seen order.
func (d *Dataset) BatteryIDs() []string {
	return append([]string(nil), d.batteries...)
}

// Impedance returns the cleaned impedance partition across all batteries,
// ordered by cycle number.
func (d *Dataset) Impedance() []ImpedanceRecord {
	return append([]ImpedanceRecord(nil), d.impedance...)
}

// Discharge returns the discharge partition across all batteries, ordered
// by cycle number.
func (d *Dataset) Discharge() []DischargeRecord {
	return append([]DischargeRecord(nil), d.discharge...)
}

// ImpedanceFor returns the ordered cleaned impedance sub-sequence for one
// battery.
func (d *Dataset) ImpedanceFor(batteryID string) []ImpedanceRecord {
	var out []ImpedanceRecord
	for _, rec := range d.impedance {
		if rec.BatteryID == batteryID {
			out = append(out, rec)
		}
	}
	return out
}

// DischargeFor returns the ordered discharge sub-sequence for one battery.
func (d *Dataset) DischargeFor(batteryID string) []DischargeRecord {
	var out []DischargeRecord
	for _, rec := range d.discharge {
		if rec.BatteryID == batteryID {
			out = append(out, rec)
		}
	}
	return out
}
