package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/model"
)

func TestTranslate_DeleteCapturesCurrentIndex(t *testing.T) {
	s := newTestStore(model.AppState{Tasks: []model.Task{
		seedTask("t0", "zero"),
		seedTask("t1", "one"),
		seedTask("t2", "two"),
	}})

	a, err := s.translate(DeleteTask{ID: "t1"})
	require.NoError(t, err)

	del, ok := a.(deleteTask)
	require.True(t, ok)
	assert.Equal(t, 1, del.Index)
	assert.Equal(t, model.TaskID("t1"), del.Task.ID)
}

func TestTranslate_CreateTaskKeepsAssistantProvidedIdentity(t *testing.T) {
	s := newTestStore(model.AppState{})

	a, err := s.translate(CreateTask{Task: model.Task{
		ID:           "assistant-id",
		Title:        "from assistant",
		CreationDate: testAt(7, 0),
	}})
	require.NoError(t, err)

	created, ok := a.(createTask)
	require.True(t, ok)
	assert.Equal(t, model.TaskID("assistant-id"), created.Task.ID)
	assert.Equal(t, testAt(7, 0), created.Task.CreationDate)
	assert.Equal(t, 0, created.Index)
}

func TestTranslate_UpdatePreservesIdentityAndCreation(t *testing.T) {
	orig := seedTask("t1", "old title")
	s := newTestStore(model.AppState{Tasks: []model.Task{orig}})

	a, err := s.translate(UpdateTask{ID: "t1", Task: model.Task{Title: "new title"}})
	require.NoError(t, err)

	upd, ok := a.(updateTask)
	require.True(t, ok)
	assert.Equal(t, orig, upd.Old)
	assert.Equal(t, model.TaskID("t1"), upd.New.ID)
	assert.Equal(t, "new title", upd.New.Title)
	assert.Equal(t, orig.CreationDate, upd.New.CreationDate)
}

func TestTranslate_UnknownPriorityRejected(t *testing.T) {
	s := newTestStore(model.AppState{})
	bad := model.Priority("urgent")

	_, err := s.translate(CreateTask{Task: model.Task{Title: "a", Priority: &bad}})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestTranslate_BlockCreationAppendsAtEnd(t *testing.T) {
	s := newTestStore(model.AppState{
		Tasks: []model.Task{seedTask("t1", "one")},
		TimeBlocks: []model.TimeBlock{
			{ID: "b1", TaskID: "t1", StartTime: testAt(9, 0), DurationMinutes: 30},
		},
	})

	a, err := s.translate(CreateTimeBlock{TaskID: "t1", Start: testAt(11, 0), DurationMinutes: 30})
	require.NoError(t, err)

	created, ok := a.(createBlock)
	require.True(t, ok)
	assert.Equal(t, 1, created.Index)
}

func TestTranslate_MoveOffsets(t *testing.T) {
	s := newTestStore(model.AppState{Tasks: []model.Task{
		seedTask("t0", "zero"),
		seedTask("t1", "one"),
		seedTask("t2", "two"),
	}})

	cases := []struct {
		id       model.TaskID
		offset   int
		from, to int
	}{
		{"t0", 3, 0, 2}, // forward: offset shifts back by one
		{"t2", 0, 2, 0}, // backward: offset is the final index
		{"t1", 1, 1, 1}, // no-op drop right where it was
		{"t0", -2, 0, 0},
		{"t0", 99, 0, 2}, // clamped
	}

	for _, tc := range cases {
		a, err := s.translate(MoveTask{ID: tc.id, ToOffset: tc.offset})
		require.NoError(t, err)
		mv, ok := a.(moveTask)
		require.True(t, ok)
		assert.Equal(t, tc.from, mv.From, "offset %d", tc.offset)
		assert.Equal(t, tc.to, mv.To, "offset %d", tc.offset)
	}
}

func TestTranslate_SendChatBuildsPlaceholder(t *testing.T) {
	s := newTestStore(model.AppState{})

	a, err := s.translate(SendChat{Text: "  schedule my day  "})
	require.NoError(t, err)

	sc, ok := a.(sendChat)
	require.True(t, ok)
	assert.Equal(t, "schedule my day", sc.Message.Text)
	assert.Equal(t, model.SenderUser, sc.Message.Sender)
	assert.True(t, sc.Placeholder.IsLoading)
	assert.Equal(t, model.SenderBot, sc.Placeholder.Sender)
	assert.NotEqual(t, sc.Message.ID, sc.Placeholder.ID)
}
