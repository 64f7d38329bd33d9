package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/model"
)

func TestApply_InverseLaw(t *testing.T) {
	// For every undoable action a: apply(invert(a), apply(a, s)) == s.
	base := model.AppState{
		Tasks: []model.Task{
			seedTask("t0", "zero"),
			seedTask("t1", "one"),
			seedTask("t2", "two"),
		},
		TimeBlocks: []model.TimeBlock{
			{ID: "b0", TaskID: "t0", StartTime: testAt(9, 0), DurationMinutes: 60},
		},
		ChatHistory: []model.ChatMessage{},
	}

	toggled := seedTask("t1", "one")
	toggled.IsCompleted = true
	moved := model.TimeBlock{ID: "b0", TaskID: "t0", StartTime: testAt(14, 0), DurationMinutes: 30}

	cases := []struct {
		name string
		a    action
	}{
		{"createTask", createTask{Task: seedTask("t9", "nine"), Index: 0}},
		{"deleteTask", deleteTask{Task: seedTask("t1", "one"), Index: 1}},
		{"updateTask", updateTask{Old: seedTask("t1", "one"), New: toggled}},
		{"moveTaskForward", moveTask{From: 0, To: 2}},
		{"moveTaskBackward", moveTask{From: 2, To: 0}},
		{"createBlock", createBlock{Block: model.TimeBlock{ID: "b9", TaskID: "t2", StartTime: testAt(12, 0), DurationMinutes: 45}, Index: 1}},
		{"deleteBlock", deleteBlock{Block: model.TimeBlock{ID: "b0", TaskID: "t0", StartTime: testAt(9, 0), DurationMinutes: 60}, Index: 0}},
		{"updateBlock", updateBlock{Old: base.TimeBlocks[0], New: moved}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			after, err := apply(base, tc.a)
			require.NoError(t, err)

			inv, ok := invert(tc.a)
			require.True(t, ok)

			restored, err := apply(after, inv)
			require.NoError(t, err)
			assert.Equal(t, base, restored)
		})
	}
}

func TestApply_OutOfBoundsIsInconsistencyNotPanic(t *testing.T) {
	base := model.AppState{Tasks: []model.Task{seedTask("t0", "zero")}}

	cases := []action{
		createTask{Task: seedTask("t9", "nine"), Index: 5},
		createTask{Task: seedTask("t9", "nine"), Index: -1},
		deleteTask{Task: seedTask("t0", "zero"), Index: 3},
		moveTask{From: 0, To: 7},
		deleteBlock{Block: model.TimeBlock{ID: "b0"}, Index: 0},
	}

	for _, a := range cases {
		st, err := apply(base, a)
		var inc *InconsistencyError
		require.ErrorAs(t, err, &inc)
		assert.Equal(t, base, st)
	}
}

func TestApply_DeleteIdentityMismatchRejected(t *testing.T) {
	base := model.AppState{Tasks: []model.Task{seedTask("t0", "zero"), seedTask("t1", "one")}}

	_, err := apply(base, deleteTask{Task: seedTask("t1", "one"), Index: 0})

	var inc *InconsistencyError
	require.ErrorAs(t, err, &inc)
}

func TestApply_UpdateVanishedEntity(t *testing.T) {
	base := model.AppState{}

	_, err := apply(base, updateTask{Old: seedTask("t0", "a"), New: seedTask("t0", "b")})
	var inc *InconsistencyError
	require.ErrorAs(t, err, &inc)

	_, err = apply(base, updateBlock{New: model.TimeBlock{ID: "b0"}})
	require.ErrorAs(t, err, &inc)
}

func TestApply_ReceiveChatClearsLoadingPlaceholders(t *testing.T) {
	base := model.AppState{ChatHistory: []model.ChatMessage{
		{ID: "m1", Text: "hi", Sender: model.SenderUser},
		{ID: "m2", Text: "…", Sender: model.SenderBot, IsLoading: true},
	}}

	st, err := apply(base, receiveChat{Message: model.ChatMessage{ID: "m3", Text: "done", Sender: model.SenderBot}})
	require.NoError(t, err)

	require.Len(t, st.ChatHistory, 2)
	assert.Equal(t, model.MessageID("m1"), st.ChatHistory[0].ID)
	assert.Equal(t, model.MessageID("m3"), st.ChatHistory[1].ID)
	for _, m := range st.ChatHistory {
		assert.False(t, m.IsLoading)
	}
}

func TestApply_SendChatAppendsMessageAndPlaceholder(t *testing.T) {
	st, err := apply(model.AppState{}, sendChat{
		Message:     model.ChatMessage{ID: "m1", Text: "hello", Sender: model.SenderUser},
		Placeholder: model.ChatMessage{ID: "m2", Text: "…", Sender: model.SenderBot, IsLoading: true},
	})
	require.NoError(t, err)

	require.Len(t, st.ChatHistory, 2)
	assert.Equal(t, model.SenderUser, st.ChatHistory[0].Sender)
	assert.True(t, st.ChatHistory[1].IsLoading)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	base := model.AppState{
		Tasks:       []model.Task{seedTask("t0", "zero")},
		TimeBlocks:  []model.TimeBlock{},
		ChatHistory: []model.ChatMessage{},
	}
	snapshot := base.Clone()

	_, err := apply(base, createTask{Task: seedTask("t9", "nine"), Index: 0})
	require.NoError(t, err)

	assert.Equal(t, snapshot, base)
}

func TestInvert_ChatVariantsHaveNoInverse(t *testing.T) {
	for _, a := range []action{
		sendChat{},
		receiveChat{},
		chatError{},
	} {
		_, ok := invert(a)
		assert.False(t, ok)
	}
}
