package assistant

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"tempo/internal/model"
	"tempo/internal/store"
)

// UnmappableError reports an assistant action that could not be turned into
// an intent. The caller surfaces it as a bot apology rather than dropping the
// entry silently.
type UnmappableError struct {
	Type   string
	Reason string
}

func (e *UnmappableError) Error() string {
	if e.Type == "" {
		return "unmappable assistant action: " + e.Reason
	}
	return fmt.Sprintf("unmappable assistant action %q: %s", e.Type, e.Reason)
}

// MapAction converts one raw inbound action into exactly one intent.
// The assistant emits the discriminator as action_type (older revisions used
// type); payload shapes are tolerated loosely, but a missing id or target is
// an error, never a silent no-op.
func MapAction(raw json.RawMessage) (store.Intent, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &UnmappableError{Reason: "not a JSON object"}
	}
	doc := gjson.ParseBytes(raw)

	typ := doc.Get("action_type").String()
	if typ == "" {
		typ = doc.Get("type").String()
	}
	if typ == "" {
		return nil, &UnmappableError{Reason: "missing action_type"}
	}
	payload := doc.Get("payload")

	switch typ {
	case "createTask":
		t, err := taskFromJSON(payload.Get("task"))
		if err != nil {
			return nil, &UnmappableError{Type: typ, Reason: err.Error()}
		}
		return store.CreateTask{Task: t}, nil

	case "updateTask":
		id := payload.Get("id").String()
		if id == "" {
			return nil, &UnmappableError{Type: typ, Reason: "missing task id"}
		}
		t, err := taskFromJSON(payload.Get("updatedTask"))
		if err != nil {
			return nil, &UnmappableError{Type: typ, Reason: err.Error()}
		}
		return store.UpdateTask{ID: model.TaskID(id), Task: t}, nil

	case "deleteTask":
		id := payload.Get("id").String()
		if id == "" {
			return nil, &UnmappableError{Type: typ, Reason: "missing task id"}
		}
		return store.DeleteTask{ID: model.TaskID(id)}, nil

	case "toggleTaskCompletion":
		id := payload.Get("id").String()
		if id == "" {
			return nil, &UnmappableError{Type: typ, Reason: "missing task id"}
		}
		return store.ToggleTask{ID: model.TaskID(id)}, nil

	case "createTimeBlock":
		block := payload.Get("timeBlock")
		taskID := block.Get("task_id").String()
		if taskID == "" {
			return nil, &UnmappableError{Type: typ, Reason: "missing task_id"}
		}
		start, err := parseInstant(block.Get("start_time"))
		if err != nil {
			return nil, &UnmappableError{Type: typ, Reason: err.Error()}
		}
		duration := int(block.Get("duration_in_minutes").Int())
		if duration <= 0 {
			return nil, &UnmappableError{Type: typ, Reason: "duration must be positive"}
		}
		return store.CreateTimeBlock{
			TaskID:          model.TaskID(taskID),
			Start:           start,
			DurationMinutes: duration,
		}, nil

	case "updateTimeBlock":
		id := payload.Get("id").String()
		if id == "" {
			return nil, &UnmappableError{Type: typ, Reason: "missing time block id"}
		}
		updated := payload.Get("updatedTimeBlock")
		start, err := parseInstant(updated.Get("start_time"))
		if err != nil {
			return nil, &UnmappableError{Type: typ, Reason: err.Error()}
		}
		duration := int(updated.Get("duration_in_minutes").Int())
		if duration <= 0 {
			return nil, &UnmappableError{Type: typ, Reason: "duration must be positive"}
		}
		return store.MoveTimeBlock{
			ID:              model.TimeBlockID(id),
			Start:           start,
			DurationMinutes: duration,
		}, nil

	case "deleteTimeBlock":
		id := payload.Get("id").String()
		if id == "" {
			return nil, &UnmappableError{Type: typ, Reason: "missing time block id"}
		}
		return store.DeleteTimeBlock{ID: model.TimeBlockID(id)}, nil

	default:
		return nil, &UnmappableError{Type: typ, Reason: "unknown action type"}
	}
}

func taskFromJSON(v gjson.Result) (model.Task, error) {
	if !v.Exists() || !v.IsObject() {
		return model.Task{}, fmt.Errorf("missing task object")
	}
	title := v.Get("title").String()
	if title == "" {
		return model.Task{}, fmt.Errorf("missing task title")
	}

	t := model.Task{
		ID:          model.TaskID(v.Get("id").String()),
		Title:       title,
		IsCompleted: v.Get("is_completed").Bool(),
	}
	if d := v.Get("description"); d.Exists() && d.Type == gjson.String {
		desc := d.String()
		t.Description = &desc
	}
	if p := v.Get("priority"); p.Exists() && p.Type == gjson.String {
		prio := model.Priority(p.String())
		if !model.ValidPriority(prio) {
			return model.Task{}, fmt.Errorf("unknown priority %q", p.String())
		}
		t.Priority = &prio
	}
	if c := v.Get("creation_date"); c.Exists() && c.Type == gjson.String {
		ts, err := parseInstant(c)
		if err != nil {
			return model.Task{}, err
		}
		t.CreationDate = ts
	}
	if d := v.Get("deadline"); d.Exists() && d.Type == gjson.String {
		ts, err := parseInstant(d)
		if err != nil {
			return model.Task{}, err
		}
		t.Deadline = &ts
	}
	if m := v.Get("predicted_duration_in_minutes"); m.Exists() && m.Type == gjson.Number {
		mins := int(m.Int())
		t.PredictedDurationMinutes = &mins
	}
	return t, nil
}

func parseInstant(v gjson.Result) (time.Time, error) {
	if !v.Exists() || v.Type != gjson.String {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	ts, err := time.Parse(time.RFC3339, v.String())
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q", v.String())
	}
	return ts, nil
}
