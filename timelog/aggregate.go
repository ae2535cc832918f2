/*
aggregate.go - Totals over a person's entries

CONTRACT:
  Aggregate(attendance, overtime) -> {AttendanceTotal, OvertimeTotal, Grand}

  Pure reduction, defined for the empty set, never fails, idempotent. The
  caller is responsible for persisting Grand into the person's cached
  TotalHoursRendered field; this function does not persist anything.
*/
package timelog

import "github.com/shopspring/decimal"

// Aggregate sums rendered hours over a person's attendance and overtime
// entries. Entries of the wrong kind in either slice are still summed by the
// slice they arrive in; callers are expected to pass pre-partitioned sets.
func Aggregate(attendance, overtime []Entry) Totals {
	t := ZeroTotals()
	for _, e := range attendance {
		t.Attendance = t.Attendance.Add(e.RenderedHours)
	}
	for _, e := range overtime {
		t.Overtime = t.Overtime.Add(e.RenderedHours)
	}
	t.Grand = t.Attendance.Add(t.Overtime)
	return t
}

// Partition splits a mixed entry list by kind, preserving order.
func Partition(entries []Entry) (attendance, overtime []Entry) {
	for _, e := range entries {
		if e.Kind == KindOvertime {
			overtime = append(overtime, e)
		} else {
			attendance = append(attendance, e)
		}
	}
	return attendance, overtime
}

// SumRendered is a convenience reduction over a single entry list.
func SumRendered(entries []Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.RenderedHours)
	}
	return sum
}
