package timelog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entryWithHours(kind Kind, hours string) Entry {
	return Entry{Kind: kind, RenderedHours: decimal.RequireFromString(hours)}
}

func TestAggregateEmptySets(t *testing.T) {
	totals := Aggregate(nil, nil)
	assert.True(t, totals.Attendance.IsZero())
	assert.True(t, totals.Overtime.IsZero())
	assert.True(t, totals.Grand.IsZero())
}

func TestAggregateSumsBothKinds(t *testing.T) {
	attendance := []Entry{
		entryWithHours(KindAttendance, "8"),
		entryWithHours(KindAttendance, "7.5"),
	}
	overtime := []Entry{
		entryWithHours(KindOvertime, "9.25"),
	}

	totals := Aggregate(attendance, overtime)
	assert.Equal(t, "15.5", totals.Attendance.String())
	assert.Equal(t, "9.25", totals.Overtime.String())
	assert.Equal(t, "24.75", totals.Grand.String())
}

func TestAggregateIsIdempotent(t *testing.T) {
	attendance := []Entry{entryWithHours(KindAttendance, "4")}
	overtime := []Entry{entryWithHours(KindOvertime, "8.5")}

	first := Aggregate(attendance, overtime)
	second := Aggregate(attendance, overtime)
	assert.True(t, first.Grand.Equal(second.Grand))
}

func TestPartition(t *testing.T) {
	mixed := []Entry{
		entryWithHours(KindAttendance, "8"),
		entryWithHours(KindOvertime, "9"),
		entryWithHours(KindAttendance, "6"),
	}

	attendance, overtime := Partition(mixed)
	assert.Len(t, attendance, 2)
	assert.Len(t, overtime, 1)
	assert.Equal(t, "14", SumRendered(attendance).String())
}
