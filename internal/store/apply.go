package store

import (
	"fmt"
	"slices"

	"tempo/internal/model"
)

// apply is the only code path that produces a new AppState. Mutation is by
// value replacement on a cloned state; index-bearing actions are bounds- and
// identity-checked against the current collections before anything changes.
// Time-block overlap is deliberately NOT re-checked here: it is enforced at
// placement and resize validation, and explicit assistant times are trusted.
func apply(st model.AppState, a action) (model.AppState, error) {
	next := st.Clone()

	switch v := a.(type) {
	case createTask:
		if v.Index < 0 || v.Index > len(next.Tasks) {
			return st, &InconsistencyError{Reason: fmt.Sprintf("task insert index %d out of range 0..%d", v.Index, len(next.Tasks))}
		}
		next.Tasks = slices.Insert(next.Tasks, v.Index, v.Task)

	case deleteTask:
		if v.Index < 0 || v.Index >= len(next.Tasks) {
			return st, &InconsistencyError{Reason: fmt.Sprintf("task delete index %d out of range", v.Index)}
		}
		if next.Tasks[v.Index].ID != v.Task.ID {
			return st, &InconsistencyError{Reason: fmt.Sprintf("task at index %d is not %s", v.Index, v.Task.ID)}
		}
		next.Tasks = slices.Delete(next.Tasks, v.Index, v.Index+1)

	case updateTask:
		// Look the entity up again at apply time; state may have moved since
		// translation.
		_, idx, ok := next.TaskByID(v.New.ID)
		if !ok {
			return st, &InconsistencyError{Reason: "task vanished before apply: " + string(v.New.ID)}
		}
		next.Tasks[idx] = v.New

	case moveTask:
		n := len(next.Tasks)
		if v.From < 0 || v.From >= n || v.To < 0 || v.To >= n {
			return st, &InconsistencyError{Reason: fmt.Sprintf("move %d -> %d out of range for %d tasks", v.From, v.To, n)}
		}
		t := next.Tasks[v.From]
		next.Tasks = slices.Delete(next.Tasks, v.From, v.From+1)
		next.Tasks = slices.Insert(next.Tasks, v.To, t)

	case createBlock:
		if v.Index < 0 || v.Index > len(next.TimeBlocks) {
			return st, &InconsistencyError{Reason: fmt.Sprintf("block insert index %d out of range 0..%d", v.Index, len(next.TimeBlocks))}
		}
		next.TimeBlocks = slices.Insert(next.TimeBlocks, v.Index, v.Block)

	case deleteBlock:
		if v.Index < 0 || v.Index >= len(next.TimeBlocks) {
			return st, &InconsistencyError{Reason: fmt.Sprintf("block delete index %d out of range", v.Index)}
		}
		if next.TimeBlocks[v.Index].ID != v.Block.ID {
			return st, &InconsistencyError{Reason: fmt.Sprintf("block at index %d is not %s", v.Index, v.Block.ID)}
		}
		next.TimeBlocks = slices.Delete(next.TimeBlocks, v.Index, v.Index+1)

	case updateBlock:
		_, idx, ok := next.TimeBlockByID(v.New.ID)
		if !ok {
			return st, &InconsistencyError{Reason: "time block vanished before apply: " + string(v.New.ID)}
		}
		next.TimeBlocks[idx] = v.New

	case sendChat:
		next.ChatHistory = append(next.ChatHistory, v.Message, v.Placeholder)

	case receiveChat:
		next.ChatHistory = append(withoutLoading(next.ChatHistory), v.Message)

	case chatError:
		next.ChatHistory = append(withoutLoading(next.ChatHistory), v.Message)

	default:
		return st, &InconsistencyError{Reason: "unhandled action variant"}
	}

	return next, nil
}

func withoutLoading(msgs []model.ChatMessage) []model.ChatMessage {
	out := make([]model.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		if !m.IsLoading {
			out = append(out, m)
		}
	}
	return out
}
