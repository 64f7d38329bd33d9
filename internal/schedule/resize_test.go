package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/model"
)

func TestResize_ExtendEnd(t *testing.T) {
	b := block("b1", at(9, 0), 60)

	resized, ok := Resize(b, EdgeEnd, at(11, 0), nil, DefaultRules())

	require.True(t, ok)
	assert.Equal(t, at(9, 0), resized.StartTime)
	assert.Equal(t, 120, resized.DurationMinutes)
}

func TestResize_SnapsBoundaryToNearestMark(t *testing.T) {
	b := block("b1", at(9, 0), 60)

	// 10:07 rounds down to 10:00, 10:08 rounds up to 10:15.
	resized, ok := Resize(b, EdgeEnd, at(10, 7), nil, DefaultRules())
	require.True(t, ok)
	assert.Equal(t, 60, resized.DurationMinutes)

	resized, ok = Resize(b, EdgeEnd, at(10, 8), nil, DefaultRules())
	require.True(t, ok)
	assert.Equal(t, 75, resized.DurationMinutes)
}

func TestResize_RejectsBelowMinimumDuration(t *testing.T) {
	b := block("b1", at(9, 0), 60)

	// 09:05 snaps to 09:00, collapsing the block to nothing.
	_, ok := Resize(b, EdgeEnd, at(9, 5), nil, DefaultRules())
	assert.False(t, ok)

	// Inverted interval is rejected too, not clamped.
	_, ok = Resize(b, EdgeStart, at(10, 30), nil, DefaultRules())
	assert.False(t, ok)
}

func TestResize_AcceptsMinimumDurationExactly(t *testing.T) {
	b := block("b1", at(9, 0), 60)

	// 09:10 snaps up to 09:15, which is exactly the minimum.
	resized, ok := Resize(b, EdgeEnd, at(9, 10), nil, DefaultRules())

	require.True(t, ok)
	assert.Equal(t, 15, resized.DurationMinutes)
}

func TestResize_RejectsSiblingOverlap(t *testing.T) {
	first := block("b1", at(9, 0), 60)
	second := block("b2", at(10, 0), 60)

	// Dragging the first block's end into [10:00,11:00) must be rejected
	// whole, not clamped to 10:00.
	_, ok := Resize(first, EdgeEnd, at(10, 30), []model.TimeBlock{second}, DefaultRules())
	assert.False(t, ok)
}

func TestResize_AllowsTouchingSibling(t *testing.T) {
	first := block("b1", at(9, 0), 30)
	second := block("b2", at(10, 0), 60)

	resized, ok := Resize(first, EdgeEnd, at(10, 0), []model.TimeBlock{second}, DefaultRules())

	require.True(t, ok)
	assert.Equal(t, 60, resized.DurationMinutes)
	assert.Equal(t, at(10, 0), resized.End())
}

func TestResize_StartEdgeMovesStart(t *testing.T) {
	b := block("b1", at(10, 0), 60)

	resized, ok := Resize(b, EdgeStart, at(9, 30), nil, DefaultRules())

	require.True(t, ok)
	assert.Equal(t, at(9, 30), resized.StartTime)
	assert.Equal(t, 90, resized.DurationMinutes)
	assert.Equal(t, at(11, 0), resized.End())
}

func TestResize_UnknownEdgeRejected(t *testing.T) {
	b := block("b1", at(9, 0), 60)

	_, ok := Resize(b, Edge("middle"), at(10, 0), nil, DefaultRules())
	assert.False(t, ok)
}
