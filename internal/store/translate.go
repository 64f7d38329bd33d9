package store

import (
	"strings"

	"github.com/google/uuid"

	"tempo/internal/model"
	"tempo/internal/schedule"
)

// translate resolves a minimal intent against current state into a
// self-contained action, or a typed failure. It is the only place entity
// lookups and placement run; the reducer re-checks indices but trusts the
// action's content.
func (s *Store) translate(in Intent) (action, error) {
	switch v := in.(type) {
	case CreateTask:
		t := v.Task
		t.Title = t.TrimmedTitle()
		if t.Title == "" {
			return nil, &ValidationError{Reason: "task title is empty"}
		}
		if t.Priority != nil && !model.ValidPriority(*t.Priority) {
			return nil, &ValidationError{Reason: "unknown priority: " + string(*t.Priority)}
		}
		if t.ID == "" {
			t.ID = model.TaskID(uuid.NewString())
		}
		if t.CreationDate.IsZero() {
			t.CreationDate = s.clock.Now()
		}
		// New tasks go to the top of the list.
		return createTask{Task: t, Index: 0}, nil

	case UpdateTask:
		old, _, ok := s.state.TaskByID(v.ID)
		if !ok {
			return nil, &NotFoundError{Kind: "task", ID: string(v.ID)}
		}
		next := v.Task
		next.ID = old.ID
		next.Title = next.TrimmedTitle()
		if next.Title == "" {
			return nil, &ValidationError{Reason: "task title is empty"}
		}
		if next.Priority != nil && !model.ValidPriority(*next.Priority) {
			return nil, &ValidationError{Reason: "unknown priority: " + string(*next.Priority)}
		}
		if next.CreationDate.IsZero() {
			next.CreationDate = old.CreationDate
		}
		return updateTask{Old: old, New: next}, nil

	case ToggleTask:
		old, _, ok := s.state.TaskByID(v.ID)
		if !ok {
			return nil, &NotFoundError{Kind: "task", ID: string(v.ID)}
		}
		next := old
		next.IsCompleted = !old.IsCompleted
		return updateTask{Old: old, New: next}, nil

	case DeleteTask:
		t, idx, ok := s.state.TaskByID(v.ID)
		if !ok {
			return nil, &NotFoundError{Kind: "task", ID: string(v.ID)}
		}
		// Capture the current index so the inverse reinserts positionally.
		return deleteTask{Task: t, Index: idx}, nil

	case MoveTask:
		_, from, ok := s.state.TaskByID(v.ID)
		if !ok {
			return nil, &NotFoundError{Kind: "task", ID: string(v.ID)}
		}
		to := dropOffsetToIndex(from, v.ToOffset, len(s.state.Tasks))
		return moveTask{From: from, To: to}, nil

	case ScheduleTask:
		_, _, ok := s.state.TaskByID(v.TaskID)
		if !ok {
			return nil, &NotFoundError{Kind: "task", ID: string(v.TaskID)}
		}
		p := schedule.Place(v.Target, v.DayStart, s.state.BlocksOnDay(v.DayStart), s.rules)
		if !p.Possible {
			return nil, &PlacementError{Reason: "no usable gap before end of day"}
		}
		b := model.TimeBlock{
			ID:              model.TimeBlockID(uuid.NewString()),
			TaskID:          v.TaskID,
			StartTime:       p.Start,
			DurationMinutes: p.DurationMinutes,
		}
		return createBlock{Block: b, Index: len(s.state.TimeBlocks)}, nil

	case CreateTimeBlock:
		_, _, ok := s.state.TaskByID(v.TaskID)
		if !ok {
			return nil, &NotFoundError{Kind: "task", ID: string(v.TaskID)}
		}
		if v.DurationMinutes <= 0 {
			return nil, &ValidationError{Reason: "duration must be positive"}
		}
		// Explicit times are trusted; placement is not re-run here.
		b := model.TimeBlock{
			ID:              model.TimeBlockID(uuid.NewString()),
			TaskID:          v.TaskID,
			StartTime:       v.Start,
			DurationMinutes: v.DurationMinutes,
		}
		return createBlock{Block: b, Index: len(s.state.TimeBlocks)}, nil

	case MoveTimeBlock:
		old, _, ok := s.state.TimeBlockByID(v.ID)
		if !ok {
			return nil, &NotFoundError{Kind: "time block", ID: string(v.ID)}
		}
		if v.DurationMinutes <= 0 {
			return nil, &ValidationError{Reason: "duration must be positive"}
		}
		next := old
		next.StartTime = v.Start
		next.DurationMinutes = v.DurationMinutes
		return updateBlock{Old: old, New: next}, nil

	case ResizeTimeBlock:
		old, _, ok := s.state.TimeBlockByID(v.ID)
		if !ok {
			return nil, &NotFoundError{Kind: "time block", ID: string(v.ID)}
		}
		if !schedule.ValidEdge(v.Edge) {
			return nil, &ValidationError{Reason: "unknown edge: " + string(v.Edge)}
		}
		siblings := make([]model.TimeBlock, 0, len(s.state.TimeBlocks)-1)
		for _, b := range s.state.TimeBlocks {
			if b.ID != v.ID {
				siblings = append(siblings, b)
			}
		}
		next, ok := schedule.Resize(old, v.Edge, v.Boundary, siblings, s.rules)
		if !ok {
			return nil, &PlacementError{Reason: "resize below minimum or overlapping a sibling"}
		}
		return updateBlock{Old: old, New: next}, nil

	case DeleteTimeBlock:
		b, idx, ok := s.state.TimeBlockByID(v.ID)
		if !ok {
			return nil, &NotFoundError{Kind: "time block", ID: string(v.ID)}
		}
		return deleteBlock{Block: b, Index: idx}, nil

	case SendChat:
		text := strings.TrimSpace(v.Text)
		if text == "" {
			return nil, &ValidationError{Reason: "chat message is empty"}
		}
		return sendChat{
			Message: model.ChatMessage{
				ID:     model.MessageID(uuid.NewString()),
				Text:   text,
				Sender: model.SenderUser,
			},
			Placeholder: model.ChatMessage{
				ID:        model.MessageID(uuid.NewString()),
				Text:      "…",
				Sender:    model.SenderBot,
				IsLoading: true,
			},
		}, nil

	case ReceiveChat:
		return receiveChat{Message: model.ChatMessage{
			ID:     model.MessageID(uuid.NewString()),
			Text:   v.Text,
			Sender: model.SenderBot,
		}}, nil

	case ChatError:
		return chatError{Message: model.ChatMessage{
			ID:     model.MessageID(uuid.NewString()),
			Text:   v.Text,
			Sender: model.SenderBot,
		}}, nil

	default:
		return nil, &ValidationError{Reason: "unknown intent"}
	}
}

// dropOffsetToIndex converts a List-style drop offset, counted before the
// dragged element is removed, into the element's final index. Moving forward
// shifts the destination back by one; moving backward does not.
func dropOffsetToIndex(from, offset, length int) int {
	to := offset
	if from < offset {
		to = offset - 1
	}
	if to < 0 {
		to = 0
	}
	if to > length-1 {
		to = length - 1
	}
	return to
}
