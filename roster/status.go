/*
status.go - Onboarding lifecycle state machine

STATES:
  pending -> approved -> offboarding -> offboarded
  pending -> backout
  approved -> offboarded            (manual skip of the offboarding window)

  Terminal: offboarded, backout.

TRANSITIONS:
  - pending->approved and all transitions into backout/offboarded are manual
    admin actions. Approval stamps StartDate and triggers batch assignment
    (registry.go).
  - approved->offboarding is automatic: it fires whenever hours are recorded
    and hoursNeeded - grandTotal <= 40 (about one work-week remaining).
  - The automatic transition is a one-way ratchet: rendering fewer remaining
    hours never reverts offboarding back to approved.

Anything not in the table is rejected with a TransitionError.
*/
package roster

import "github.com/shopspring/decimal"

type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusBackout     Status = "backout"
	StatusOffboarding Status = "offboarding"
	StatusOffboarded  Status = "offboarded"
)

// OffboardingMargin is the remaining-hours threshold at which an approved
// intern automatically enters offboarding.
var OffboardingMargin = decimal.NewFromInt(40)

var transitions = map[Status][]Status{
	StatusPending:     {StatusApproved, StatusBackout},
	StatusApproved:    {StatusOffboarding, StatusOffboarded},
	StatusOffboarding: {StatusOffboarded},
	StatusBackout:     {},
	StatusOffboarded:  {},
}

// ValidStatus reports whether s names a known lifecycle state.
func ValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether the state machine allows from -> to.
func (s Status) CanTransition(to Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves this state.
func (s Status) Terminal() bool { return len(transitions[s]) == 0 }

// DeriveStatus applies the automatic offboarding rule. It only ever moves
// approved forward to offboarding; every other state is returned unchanged,
// including offboarding itself when hours drop back under the margin.
func DeriveStatus(current Status, hoursNeeded, grandTotal decimal.Decimal) Status {
	if current != StatusApproved {
		return current
	}
	if hoursNeeded.Sub(grandTotal).LessThanOrEqual(OffboardingMargin) {
		return StatusOffboarding
	}
	return StatusApproved
}
