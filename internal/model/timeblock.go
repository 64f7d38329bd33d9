package model

import "time"

type TimeBlockID string

// TimeBlock is a scheduled interval on the calendar, owned by a task.
// The task reference is validated at creation time only; a block whose task
// was later deleted is tolerated and rendered as untitled by the UI.
type TimeBlock struct {
	ID              TimeBlockID `json:"id"`
	TaskID          TaskID      `json:"task_id"`
	StartTime       time.Time   `json:"start_time"`
	DurationMinutes int         `json:"duration_in_minutes"`
}

// End returns the exclusive end instant of the block's half-open interval.
func (b TimeBlock) End() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Overlaps reports whether two half-open intervals intersect.
func (b TimeBlock) Overlaps(other TimeBlock) bool {
	return b.StartTime.Before(other.End()) && b.End().After(other.StartTime)
}
