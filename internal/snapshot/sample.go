package snapshot

import (
	"time"

	"tempo/internal/model"
)

// Sample is the fixed first-run dataset: a few tasks, one scheduled block and
// a greeting, so the app never starts on an empty screen.
func Sample() model.AppState {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	high := model.PriorityHigh
	medium := model.PriorityMedium
	groceries := "Milk, eggs, and something for dinner."
	thirty := 30

	return model.AppState{
		Tasks: []model.Task{
			{
				ID:           "sample-task-report",
				Title:        "Finish the quarterly report",
				IsCompleted:  false,
				Priority:     &high,
				CreationDate: now,
				PredictedDurationMinutes: func() *int {
					v := 90
					return &v
				}(),
			},
			{
				ID:                       "sample-task-groceries",
				Title:                    "Buy groceries",
				Description:              &groceries,
				IsCompleted:              false,
				Priority:                 &medium,
				CreationDate:             now,
				PredictedDurationMinutes: &thirty,
			},
			{
				ID:           "sample-task-plants",
				Title:        "Water the plants",
				IsCompleted:  true,
				CreationDate: now,
			},
		},
		TimeBlocks: []model.TimeBlock{
			{
				ID:              "sample-block-report",
				TaskID:          "sample-task-report",
				StartTime:       today.Add(9 * time.Hour),
				DurationMinutes: 90,
			},
		},
		ChatHistory: []model.ChatMessage{
			{
				ID:     "sample-msg-greeting",
				Text:   "Hi! Tell me what you need to get done and I can add it to your list or schedule it.",
				Sender: model.SenderBot,
			},
		},
	}
}
