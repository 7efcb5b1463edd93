package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battpulse/pkg/contracts/domain"
)

func rec(row int, op domain.OpType, start domain.Time) domain.Record {
	return domain.Record{Row: row, BatteryID: "B0005", Type: op, StartTime: start}
}

func at(day int) domain.Time {
	return domain.NewTime(time.Date(2008, 4, day, 0, 0, 0, 0, time.UTC))
}

func TestClassifyPartitionsAreDisjoint(t *testing.T) {
	records := []domain.Record{
		rec(0, domain.OpImpedance, at(1)),
		rec(1, domain.OpDischarge, at(2)),
		rec(2, domain.OpCharge, at(3)),
		rec(3, domain.OpImpedance, at(4)),
		rec(4, domain.OpOther, at(5)),
	}

	parts := Classify(records)

	assert.Len(t, parts[domain.OpImpedance], 2)
	assert.Len(t, parts[domain.OpDischarge], 1)
	assert.Len(t, parts[domain.OpCharge], 1)
	assert.Len(t, parts[domain.OpOther], 1)

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	assert.Equal(t, len(records), total)
}

func TestRankByStartTimeChronological(t *testing.T) {
	// Out of chronological order on purpose.
	partition := []domain.Record{
		rec(0, domain.OpDischarge, at(20)),
		rec(1, domain.OpDischarge, at(5)),
		rec(2, domain.OpDischarge, at(12)),
	}

	ranked := RankByStartTime(partition)

	require.Len(t, ranked, 3)
	assert.Equal(t, []int{1, 2, 0}, []int{ranked[0].Row, ranked[1].Row, ranked[2].Row})
	for i := 1; i < len(ranked); i++ {
		assert.True(t, ranked[i-1].StartTime.Time.Before(ranked[i].StartTime.Time))
	}
}

func TestRankByStartTimeMissingSortsLast(t *testing.T) {
	partition := []domain.Record{
		rec(0, domain.OpImpedance, domain.Time{}),
		rec(1, domain.OpImpedance, at(9)),
		rec(2, domain.OpImpedance, domain.Time{}),
		rec(3, domain.OpImpedance, at(2)),
	}

	ranked := RankByStartTime(partition)

	require.Len(t, ranked, 4)
	// Present timestamps first in time order, then missing in row order.
	assert.Equal(t, 3, ranked[0].Row)
	assert.Equal(t, 1, ranked[1].Row)
	assert.Equal(t, 0, ranked[2].Row)
	assert.Equal(t, 2, ranked[3].Row)
}

func TestRankByStartTimeTiesKeepRowOrder(t *testing.T) {
	partition := []domain.Record{
		rec(4, domain.OpImpedance, at(7)),
		rec(2, domain.OpImpedance, at(7)),
		rec(9, domain.OpImpedance, at(7)),
	}

	ranked := RankByStartTime(partition)

	assert.Equal(t, 2, ranked[0].Row)
	assert.Equal(t, 4, ranked[1].Row)
	assert.Equal(t, 9, ranked[2].Row)
}

func TestRankByStartTimeDoesNotMutateInput(t *testing.T) {
	partition := []domain.Record{
		rec(0, domain.OpDischarge, at(20)),
		rec(1, domain.OpDischarge, at(5)),
	}

	_ = RankByStartTime(partition)

	assert.Equal(t, 0, partition[0].Row)
	assert.Equal(t, 1, partition[1].Row)
}
