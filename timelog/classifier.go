/*
classifier.go - Attendance vs. overtime classification

CONTRACT:
  A submitted log whose rendered hours exceed the daily threshold (strictly
  greater than 8.00 by default) is re-expressed as an overtime record: same
  time fields, same report text, routed to overtime instead of attendance.
  The original attendance save is abandoned.

  Classification is driven entirely by the computed value - it is never a
  property the caller sets directly - and it fires only when a log is first
  created. An edit recomputes rendered hours but keeps the record where it
  already lives.

OUTCOMES:
  The submission flow has three terminal outcomes, surfaced to the caller so
  the UI can show the matching notice:
    - OutcomeAttendance: plain attendance save
    - OutcomeOvertime:   plain overtime save
    - OutcomeRedirected: attendance submission converted to overtime
*/
package timelog

import "github.com/shopspring/decimal"

// DefaultOvertimeThreshold is the daily attendance cap in hours. Rendered
// hours at exactly the threshold stay attendance; only strictly more
// converts to overtime.
var DefaultOvertimeThreshold = decimal.NewFromInt(8)

// Outcome is the terminal result of a submission.
type Outcome string

const (
	OutcomeAttendance Outcome = "attendance_saved"
	OutcomeOvertime   Outcome = "overtime_saved"
	OutcomeRedirected Outcome = "redirected_to_overtime"
)

// Classify decides the kind a newly computed log belongs to. Pure function.
func Classify(renderedHours, threshold decimal.Decimal) Kind {
	if renderedHours.GreaterThan(threshold) {
		return KindOvertime
	}
	return KindAttendance
}

// outcomeFor maps the requested kind and the classified kind to the
// three-way outcome of the submission flow.
func outcomeFor(requested, classified Kind) Outcome {
	switch {
	case requested == KindAttendance && classified == KindOvertime:
		return OutcomeRedirected
	case classified == KindOvertime:
		return OutcomeOvertime
	default:
		return OutcomeAttendance
	}
}
