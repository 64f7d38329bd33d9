package model

import (
	"strings"
	"time"
)

type TaskID string

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single to-do item. Field names on the wire follow the assistant
// backend contract.
type Task struct {
	ID          TaskID    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	IsCompleted bool      `json:"is_completed"`
	Priority    *Priority `json:"priority,omitempty"`

	CreationDate time.Time  `json:"creation_date"`
	Deadline     *time.Time `json:"deadline,omitempty"`

	PredictedDurationMinutes *int `json:"predicted_duration_in_minutes,omitempty"`
}

// TrimmedTitle returns the title with surrounding whitespace removed.
// A task title must be non-empty after trimming.
func (t Task) TrimmedTitle() string {
	return strings.TrimSpace(t.Title)
}
