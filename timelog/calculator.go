/*
calculator.go - Rendered-hours computation

CONTRACT:
  ComputeRenderedHours(clockIn, clockOut, breakStart, breakEnd) -> hours

  hours = (clockOut - clockIn) - (breakEnd - breakStart), expressed in
  decimal hours and rounded to 2 places. All four values are times of day on
  the same reference day; there is no overnight-shift support.

VALIDATION:
  One symmetric ordering rule is applied to attendance and overtime alike:

      clockIn <= breakStart <= breakEnd <= clockOut

  Every violated rule produces its own message; the full list is returned in
  a single ValidationError. Once validation passes the computation is total:
  it returns a value and never fails.
*/
package timelog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// ComputeRenderedHours converts the four time fields of a log into decimal
// worked hours, net of break time. Pure function; no side effects.
func ComputeRenderedHours(clockIn, clockOut, breakStart, breakEnd TimeOfDay) (decimal.Decimal, error) {
	if err := validateInterval(clockIn, clockOut, breakStart, breakEnd); err != nil {
		return decimal.Zero, err
	}

	workMinutes := clockOut.MinuteOfDay() - clockIn.MinuteOfDay()
	breakMinutes := breakEnd.MinuteOfDay() - breakStart.MinuteOfDay()

	rendered := decimal.NewFromInt(int64(workMinutes - breakMinutes)).
		Div(minutesPerHour).
		Round(2)
	return rendered, nil
}

func validateInterval(clockIn, clockOut, breakStart, breakEnd TimeOfDay) error {
	var msgs []string

	if clockIn.After(clockOut) {
		msgs = append(msgs, fmt.Sprintf("clock-in %s must not be after clock-out %s", clockIn, clockOut))
	}
	if breakStart.Before(clockIn) {
		msgs = append(msgs, fmt.Sprintf("break start %s must not be before clock-in %s", breakStart, clockIn))
	}
	if breakEnd.Before(breakStart) {
		msgs = append(msgs, fmt.Sprintf("break end %s must not be before break start %s", breakEnd, breakStart))
	}
	if breakStart.After(clockOut) {
		msgs = append(msgs, fmt.Sprintf("break start %s must not be after clock-out %s", breakStart, clockOut))
	}
	if breakEnd.After(clockOut) {
		msgs = append(msgs, fmt.Sprintf("break end %s must not be after clock-out %s", breakEnd, clockOut))
	}

	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}
