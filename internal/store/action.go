package store

import "tempo/internal/model"

// action is a fully-detailed, self-contained mutation record. Every variant
// carries enough data to be inverted without consulting current state; the
// chat variants are the non-reversible exceptions.
type action interface {
	isAction()
}

type createTask struct {
	Task  model.Task
	Index int
}

type deleteTask struct {
	Task  model.Task
	Index int
}

type updateTask struct {
	Old model.Task
	New model.Task
}

// moveTask uses plain remove-then-insert indices: To is the element's final
// index after the move. The drop-offset adjustment for move direction happens
// once, in the translator, so the inverse is a straight swap.
type moveTask struct {
	From int
	To   int
}

type createBlock struct {
	Block model.TimeBlock
	Index int
}

type deleteBlock struct {
	Block model.TimeBlock
	Index int
}

type updateBlock struct {
	Old model.TimeBlock
	New model.TimeBlock
}

// sendChat appends the user message and its loading placeholder.
type sendChat struct {
	Message     model.ChatMessage
	Placeholder model.ChatMessage
}

// receiveChat removes loading placeholders and appends the reply.
type receiveChat struct {
	Message model.ChatMessage
}

// chatError removes loading placeholders and appends a bot error message.
type chatError struct {
	Message model.ChatMessage
}

func (createTask) isAction()  {}
func (deleteTask) isAction()  {}
func (updateTask) isAction()  {}
func (moveTask) isAction()    {}
func (createBlock) isAction() {}
func (deleteBlock) isAction() {}
func (updateBlock) isAction() {}
func (sendChat) isAction()    {}
func (receiveChat) isAction() {}
func (chatError) isAction()   {}

// invert returns the action that exactly reverses a. The second return is
// false for the chat variants, which are append-only and excluded from undo.
func invert(a action) (action, bool) {
	switch v := a.(type) {
	case createTask:
		return deleteTask{Task: v.Task, Index: v.Index}, true
	case deleteTask:
		return createTask{Task: v.Task, Index: v.Index}, true
	case updateTask:
		return updateTask{Old: v.New, New: v.Old}, true
	case moveTask:
		return moveTask{From: v.To, To: v.From}, true
	case createBlock:
		return deleteBlock{Block: v.Block, Index: v.Index}, true
	case deleteBlock:
		return createBlock{Block: v.Block, Index: v.Index}, true
	case updateBlock:
		return updateBlock{Old: v.New, New: v.Old}, true
	default:
		return nil, false
	}
}
