package store

import (
	"errors"
	"fmt"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// NotFoundError reports an intent that targets an entity missing from current
// state. Callers decide how to surface it: user-originated intents get an
// alert, assistant-originated ones get an apology chat message, since the
// assistant's view of state may be stale by the time its instructions arrive.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ValidationError reports a well-formed intent carrying unusable values
// (empty title, non-positive duration, unknown edge).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid intent: " + e.Reason
}

// PlacementError reports a scheduling intent with no acceptable slot: either
// the day has no usable gap or a resize would violate the minimum duration or
// intersect a sibling. Never fatal; the caller refuses the drop or drag.
type PlacementError struct {
	Reason string
}

func (e *PlacementError) Error() string {
	return "placement rejected: " + e.Reason
}

// InconsistencyError reports a mismatch between an action's assumptions and
// current state detected at apply time (out-of-bounds index, vanished id).
// A rejected action is never recorded on the undo stack.
type InconsistencyError struct {
	Reason string
}

func (e *InconsistencyError) Error() string {
	return "inconsistent action: " + e.Reason
}
