package schedule

import (
	"sort"
	"time"

	"tempo/internal/model"
)

// Placement is the result of a drop-to-schedule computation. When Possible is
// false, Start and DurationMinutes are sentinels (the unsnapped target and the
// default duration) and no block must be created.
type Placement struct {
	Start           time.Time
	DurationMinutes int
	Possible        bool
}

// Place converts an imprecise drop instant into a conflict-free interval
// within the day starting at dayStart.
//
// The target is snapped down to the nearest Snap-minute boundary. A snapped
// point landing inside an existing block advances to that block's end. The gap
// up to the next block (or end of day) then decides the outcome: a gap of at
// least DefaultDuration places the default; a gap of at least MinDuration
// shrinks to the raw gap (not rounded down to a snap multiple, so the block
// stays flush against its neighbor); anything smaller skips past the
// neighboring block and tries again. When no usable gap remains before end of
// day, Possible is false.
//
// Pure and deterministic for a fixed input snapshot.
func Place(target, dayStart time.Time, blocks []model.TimeBlock, r Rules) Placement {
	none := Placement{Start: target, DurationMinutes: r.DefaultDuration, Possible: false}

	dayEnd := dayStart.AddDate(0, 0, 1)
	if target.Before(dayStart) || !target.Before(dayEnd) {
		return none
	}

	sorted := make([]model.TimeBlock, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	search := snapDown(target, dayStart, r.Snap)

	for search.Before(dayEnd) {
		// Conflict skip: a search point inside a committed interval moves to
		// that interval's end.
		moved := true
		for moved {
			moved = false
			for _, b := range sorted {
				if !search.Before(b.StartTime) && search.Before(b.End()) {
					search = b.End()
					moved = true
				}
			}
		}
		if !search.Before(dayEnd) {
			break
		}

		availEnd := dayEnd
		next := -1
		for i, b := range sorted {
			if !b.StartTime.Before(search) {
				availEnd = b.StartTime
				next = i
				break
			}
		}

		gap := int(availEnd.Sub(search) / time.Minute)
		switch {
		case gap >= r.DefaultDuration:
			return Placement{Start: search, DurationMinutes: r.DefaultDuration, Possible: true}
		case gap >= r.MinDuration:
			return Placement{Start: search, DurationMinutes: gap, Possible: true}
		}

		if next < 0 {
			// Dead sliver against end of day.
			break
		}
		search = sorted[next].End()
	}

	return none
}

// snapDown floors t to the nearest snap-minute boundary counted from dayStart.
func snapDown(t, dayStart time.Time, snapMinutes int) time.Time {
	if snapMinutes <= 0 {
		return t
	}
	step := time.Duration(snapMinutes) * time.Minute
	off := t.Sub(dayStart)
	if off < 0 {
		return dayStart
	}
	return dayStart.Add(off - off%step)
}
