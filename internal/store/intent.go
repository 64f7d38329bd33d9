package store

import (
	"time"

	"tempo/internal/model"
	"tempo/internal/schedule"
)

// Intent is a minimal change request, identified by opaque ids only. Intents
// are the sole inputs the store accepts, whether they come from UI callbacks
// or from the assistant; the translator resolves them against current state
// into fully-detailed actions.
type Intent interface {
	isIntent()
}

// CreateTask inserts a task at the top of the list. ID and CreationDate are
// assigned at translation when unset (the assistant supplies both).
type CreateTask struct {
	Task model.Task
}

// UpdateTask replaces the stored task's editable fields wholesale.
type UpdateTask struct {
	ID   model.TaskID
	Task model.Task
}

type ToggleTask struct {
	ID model.TaskID
}

type DeleteTask struct {
	ID model.TaskID
}

// MoveTask reorders a task to a drop offset, Swift List-style: ToOffset is
// the insertion point counted before removal.
type MoveTask struct {
	ID       model.TaskID
	ToOffset int
}

// ScheduleTask drops a task onto the day grid at an imprecise target instant;
// the placement engine decides the actual slot.
type ScheduleTask struct {
	TaskID   model.TaskID
	Target   time.Time
	DayStart time.Time
}

// CreateTimeBlock schedules at an explicit start and duration (assistant
// path); placement is not re-run.
type CreateTimeBlock struct {
	TaskID          model.TaskID
	Start           time.Time
	DurationMinutes int
}

// MoveTimeBlock moves a block to an explicit start and duration.
type MoveTimeBlock struct {
	ID              model.TimeBlockID
	Start           time.Time
	DurationMinutes int
}

// ResizeTimeBlock drags one edge of a block to a proposed boundary, subject
// to resize validation.
type ResizeTimeBlock struct {
	ID       model.TimeBlockID
	Edge     schedule.Edge
	Boundary time.Time
}

type DeleteTimeBlock struct {
	ID model.TimeBlockID
}

// SendChat appends the user's message plus a transient loading placeholder.
type SendChat struct {
	Text string
}

// ReceiveChat replaces any loading placeholder with the assistant's reply.
type ReceiveChat struct {
	Text string
}

// ChatError replaces any loading placeholder with a bot-authored error or
// apology message.
type ChatError struct {
	Text string
}

func (CreateTask) isIntent()      {}
func (UpdateTask) isIntent()      {}
func (ToggleTask) isIntent()      {}
func (DeleteTask) isIntent()      {}
func (MoveTask) isIntent()        {}
func (ScheduleTask) isIntent()    {}
func (CreateTimeBlock) isIntent() {}
func (MoveTimeBlock) isIntent()   {}
func (ResizeTimeBlock) isIntent() {}
func (DeleteTimeBlock) isIntent() {}
func (SendChat) isIntent()        {}
func (ReceiveChat) isIntent()     {}
func (ChatError) isIntent()       {}
