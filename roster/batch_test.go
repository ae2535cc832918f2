package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBatchNameFor(t *testing.T) {
	assert.Equal(t, "Batch-2026-08", BatchNameFor(day("2026-08-31")))
	assert.Equal(t, "Batch-2026-01", BatchNameFor(day("2026-01-02")))
}

func TestNewBatchForWindow(t *testing.T) {
	b := NewBatchFor(day("2026-08-28"))
	assert.Equal(t, "Batch-2026-08", b.Name)
	assert.Equal(t, day("2026-08-28"), b.StartDate)
	assert.Equal(t, day("2026-09-02"), b.EndDate)
}

func TestBatchContainsInclusive(t *testing.T) {
	b := NewBatchFor(day("2026-08-28"))
	assert.True(t, b.Contains(day("2026-08-28")), "start date is inside")
	assert.True(t, b.Contains(day("2026-09-02")), "end date is inside")
	assert.True(t, b.Contains(day("2026-08-30")))
	assert.False(t, b.Contains(day("2026-08-27")))
	assert.False(t, b.Contains(day("2026-09-03")))
}

func TestFindBatchFor(t *testing.T) {
	batches := []Batch{
		NewBatchFor(day("2026-07-01")),
		NewBatchFor(day("2026-08-28")),
	}

	match := FindBatchFor(batches, day("2026-08-30"))
	require.NotNil(t, match)
	assert.Equal(t, "Batch-2026-08", match.Name)

	assert.Nil(t, FindBatchFor(batches, day("2026-08-15")))
	assert.Nil(t, FindBatchFor(nil, day("2026-08-30")))
}
