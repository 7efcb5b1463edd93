package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battpulse/pkg/contracts/domain"
)

func impRec(cycle int, re, rct, rectified domain.Float) domain.ImpedanceRecord {
	return domain.ImpedanceRecord{
		Record:             domain.Record{BatteryID: "B0005", Type: domain.OpImpedance, Re: re, Rct: rct},
		CycleNumber:        cycle,
		RectifiedImpedance: rectified,
	}
}

func TestCleanImpedanceBounds(t *testing.T) {
	f := domain.NewFloat

	tests := []struct {
		name string
		rec  domain.ImpedanceRecord
		keep bool
	}{
		{"all in range", impRec(1, f(5), f(5), f(5)), true},
		{"re at lower boundary", impRec(2, f(0), f(5), f(5)), false},
		{"rct at upper boundary", impRec(3, f(5), f(10), f(5)), false},
		{"rectified negative", impRec(4, f(5), f(5), f(-0.1)), false},
		{"re missing", impRec(5, domain.Float{}, f(5), f(5)), false},
		{"rectified missing", impRec(6, f(5), f(5), domain.Float{}), false},
		{"just inside bounds", impRec(7, f(0.0001), f(9.9999), f(5)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanImpedance([]domain.ImpedanceRecord{tt.rec})
			if tt.keep {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestCleanImpedanceKeepsCycleNumbers(t *testing.T) {
	f := domain.NewFloat
	records := []domain.ImpedanceRecord{
		impRec(1, f(1), f(1), f(1)),
		impRec(2, f(0), f(1), f(1)), // dropped
		impRec(3, f(2), f(2), f(2)),
	}

	got := CleanImpedance(records)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].CycleNumber)
	assert.Equal(t, 3, got[1].CycleNumber)
}
