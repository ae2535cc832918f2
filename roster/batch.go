/*
batch.go - Cohort window matching and auto-creation

A person approved on a date with no covering batch gets a fresh batch named
after that date's year and month, spanning 5 days from the approval date.
A second approval inside the same window reuses the batch; no duplicate is
created. Re-running assignment is safe - it only matches by date window.
*/
package roster

import (
	"fmt"
	"time"
)

// BatchWindowDays is the span of an auto-created batch, start date inclusive.
const BatchWindowDays = 5

// BatchNameFor derives the auto-created batch name from a start date,
// e.g. "Batch-2026-08".
func BatchNameFor(startDate time.Time) string {
	return fmt.Sprintf("Batch-%04d-%02d", startDate.Year(), int(startDate.Month()))
}

// FindBatchFor returns the first batch whose window contains day, or nil.
func FindBatchFor(batches []Batch, day time.Time) *Batch {
	for i := range batches {
		if batches[i].Contains(day) {
			return &batches[i]
		}
	}
	return nil
}

// NewBatchFor builds the auto-created batch for a start date. The ID is left
// for the store to assign.
func NewBatchFor(startDate time.Time) Batch {
	start := truncateDay(startDate)
	return Batch{
		Name:      BatchNameFor(start),
		StartDate: start,
		EndDate:   start.AddDate(0, 0, BatchWindowDays),
	}
}
