package timelog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyThresholdBoundary(t *testing.T) {
	tests := []struct {
		hours string
		want  Kind
	}{
		{"7.99", KindAttendance},
		{"8", KindAttendance}, // exactly at the threshold stays attendance
		{"8.00", KindAttendance},
		{"8.01", KindOvertime},
		{"11", KindOvertime},
		{"0", KindAttendance},
	}

	for _, tt := range tests {
		t.Run(tt.hours, func(t *testing.T) {
			got := Classify(decimal.RequireFromString(tt.hours), DefaultOvertimeThreshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyCustomThreshold(t *testing.T) {
	six := decimal.NewFromInt(6)
	assert.Equal(t, KindAttendance, Classify(decimal.NewFromInt(6), six))
	assert.Equal(t, KindOvertime, Classify(decimal.RequireFromString("6.5"), six))
}

func TestOutcomeFor(t *testing.T) {
	assert.Equal(t, OutcomeAttendance, outcomeFor(KindAttendance, KindAttendance))
	assert.Equal(t, OutcomeRedirected, outcomeFor(KindAttendance, KindOvertime))
	assert.Equal(t, OutcomeOvertime, outcomeFor(KindOvertime, KindOvertime))
}
