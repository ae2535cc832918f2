package roster

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusBackout, true},
		{StatusPending, StatusOffboarding, false},
		{StatusPending, StatusOffboarded, false},
		{StatusApproved, StatusOffboarding, true},
		{StatusApproved, StatusOffboarded, true},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusBackout, false},
		{StatusOffboarding, StatusOffboarded, true},
		{StatusOffboarding, StatusApproved, false},
		{StatusBackout, StatusPending, false},
		{StatusBackout, StatusApproved, false},
		{StatusOffboarded, StatusOffboarding, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, StatusBackout.Terminal())
	assert.True(t, StatusOffboarded.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.False(t, StatusOffboarding.Terminal())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusOffboarding))
	assert.False(t, ValidStatus(Status("fired")))
	assert.False(t, ValidStatus(Status("")))
}

func TestDeriveStatusOffboardingBoundary(t *testing.T) {
	tests := []struct {
		name        string
		current     Status
		hoursNeeded string
		grandTotal  string
		want        Status
	}{
		{"well short of the margin", StatusApproved, "100", "30", StatusApproved},
		{"just outside the margin", StatusApproved, "100", "59.99", StatusApproved},
		{"exactly at the margin", StatusApproved, "100", "60", StatusOffboarding},
		{"inside the margin", StatusApproved, "500", "461", StatusOffboarding},
		{"overshot the requirement", StatusApproved, "100", "120", StatusOffboarding},
		{"pending never auto-offboards", StatusPending, "100", "100", StatusPending},
		{"backout never auto-offboards", StatusBackout, "100", "100", StatusBackout},
		{"offboarding never reverts", StatusOffboarding, "100", "10", StatusOffboarding},
		{"offboarded stays offboarded", StatusOffboarded, "100", "100", StatusOffboarded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.current,
				decimal.RequireFromString(tt.hoursNeeded),
				decimal.RequireFromString(tt.grandTotal))
			assert.Equal(t, tt.want, got)
		})
	}
}
