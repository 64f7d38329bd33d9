package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tbAt(hour, min, duration int) TimeBlock {
	return TimeBlock{
		ID:              "b",
		StartTime:       time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC),
		DurationMinutes: duration,
	}
}

func TestTimeBlockOverlaps(t *testing.T) {
	base := tbAt(9, 0, 60)

	assert.True(t, base.Overlaps(tbAt(9, 30, 60)))
	assert.True(t, base.Overlaps(tbAt(8, 30, 60)))
	assert.True(t, base.Overlaps(tbAt(9, 15, 15)))

	// Half-open intervals: touching blocks do not overlap.
	assert.False(t, base.Overlaps(tbAt(10, 0, 60)))
	assert.False(t, base.Overlaps(tbAt(8, 0, 60)))
}
