package model

import "time"

// AppState is the aggregate of everything the app persists and everything a
// view may read. Ordering is significant: task order is user-controlled, chat
// history is append-only.
type AppState struct {
	Tasks       []Task        `json:"tasks"`
	TimeBlocks  []TimeBlock   `json:"timeBlocks"`
	ChatHistory []ChatMessage `json:"chatHistory"`
}

// Clone returns a copy whose slices are independent of the receiver's.
// Entities are values and are always replaced wholesale, never mutated in
// place, so element-level sharing of pointer fields is safe.
func (s AppState) Clone() AppState {
	out := AppState{
		Tasks:       make([]Task, len(s.Tasks)),
		TimeBlocks:  make([]TimeBlock, len(s.TimeBlocks)),
		ChatHistory: make([]ChatMessage, len(s.ChatHistory)),
	}
	copy(out.Tasks, s.Tasks)
	copy(out.TimeBlocks, s.TimeBlocks)
	copy(out.ChatHistory, s.ChatHistory)
	return out
}

// TaskByID returns the task with the given id and its current index.
func (s AppState) TaskByID(id TaskID) (Task, int, bool) {
	for i, t := range s.Tasks {
		if t.ID == id {
			return t, i, true
		}
	}
	return Task{}, -1, false
}

// TimeBlockByID returns the block with the given id and its current index.
func (s AppState) TimeBlockByID(id TimeBlockID) (TimeBlock, int, bool) {
	for i, b := range s.TimeBlocks {
		if b.ID == id {
			return b, i, true
		}
	}
	return TimeBlock{}, -1, false
}

// BlocksOnDay returns the blocks whose start falls within the calendar day
// beginning at dayStart.
func (s AppState) BlocksOnDay(dayStart time.Time) []TimeBlock {
	dayEnd := dayStart.AddDate(0, 0, 1)
	out := make([]TimeBlock, 0, len(s.TimeBlocks))
	for _, b := range s.TimeBlocks {
		if !b.StartTime.Before(dayStart) && b.StartTime.Before(dayEnd) {
			out = append(out, b)
		}
	}
	return out
}
