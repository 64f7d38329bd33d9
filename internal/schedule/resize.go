package schedule

import (
	"time"

	"tempo/internal/model"
)

// Edge identifies which boundary of a block an edge-drag is moving.
type Edge string

const (
	EdgeStart Edge = "start"
	EdgeEnd   Edge = "end"
)

func ValidEdge(e Edge) bool {
	return e == EdgeStart || e == EdgeEnd
}

// Resize applies an edge-drag to block, snapping the proposed boundary to the
// nearest Snap-minute mark. The resize is accepted or rejected as a whole:
// a resulting duration under MinDuration, or any half-open intersection with a
// sibling interval, rejects it with no partial clamping. Siblings must not
// include the block itself.
func Resize(block model.TimeBlock, edge Edge, proposed time.Time, siblings []model.TimeBlock, r Rules) (model.TimeBlock, bool) {
	snapped := snapNearest(proposed, r.Snap)

	newStart := block.StartTime
	newEnd := block.End()
	switch edge {
	case EdgeStart:
		newStart = snapped
	case EdgeEnd:
		newEnd = snapped
	default:
		return model.TimeBlock{}, false
	}

	duration := int(newEnd.Sub(newStart) / time.Minute)
	if duration < r.MinDuration {
		return model.TimeBlock{}, false
	}

	block.StartTime = newStart
	block.DurationMinutes = duration

	for _, other := range siblings {
		if block.Overlaps(other) {
			return model.TimeBlock{}, false
		}
	}

	return block, true
}

func snapNearest(t time.Time, snapMinutes int) time.Time {
	if snapMinutes <= 0 {
		return t
	}
	return t.Round(time.Duration(snapMinutes) * time.Minute)
}
