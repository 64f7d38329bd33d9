// Package server exposes the store over a local HTTP API. Handlers translate
// requests into intents; the store does all the thinking.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"tempo/internal/assistant"
	"tempo/internal/model"
	"tempo/internal/schedule"
	"tempo/internal/store"
)

type Server struct {
	store     *store.Store
	assistant *assistant.Client

	// lastRequest is the payload of the most recent assistant round trip,
	// kept so a failed trip can be retried identically.
	mu          sync.Mutex
	lastRequest *assistant.Request
}

func New(st *store.Store, client *assistant.Client) *Server {
	return &Server{
		store:     st,
		assistant: client,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// writeStoreErr maps the store's error taxonomy onto status codes.
func writeStoreErr(w http.ResponseWriter, err error) {
	var notFound *store.NotFoundError
	var validation *store.ValidationError
	var placement *store.PlacementError

	switch {
	case errors.As(err, &notFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &placement):
		writeErr(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNothingToUndo), errors.Is(err, store.ErrNothingToRedo):
		writeErr(w, http.StatusConflict, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}

// stateEnvelope is the common success body: the new snapshot plus the derived
// undo/redo booleans the UI needs for its toolbar.
type stateEnvelope struct {
	State   model.AppState `json:"state"`
	CanUndo bool           `json:"can_undo"`
	CanRedo bool           `json:"can_redo"`
}

func (s *Server) envelope(st model.AppState) stateEnvelope {
	return stateEnvelope{
		State:   st,
		CanUndo: s.store.CanUndo(),
		CanRedo: s.store.CanRedo(),
	}
}

// submit runs one intent and writes the uniform response.
func (s *Server) submit(w http.ResponseWriter, in store.Intent) {
	st, err := s.store.Submit(in)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.envelope(st))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.envelope(s.store.State()))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Undo()
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.envelope(st))
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Redo()
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.envelope(st))
}

type taskBody struct {
	Title                    string          `json:"title"`
	Description              *string         `json:"description"`
	IsCompleted              bool            `json:"is_completed"`
	Priority                 *model.Priority `json:"priority"`
	Deadline                 *time.Time      `json:"deadline"`
	PredictedDurationMinutes *int            `json:"predicted_duration_in_minutes"`
}

func (b taskBody) task() model.Task {
	return model.Task{
		Title:                    b.Title,
		Description:              b.Description,
		IsCompleted:              b.IsCompleted,
		Priority:                 b.Priority,
		Deadline:                 b.Deadline,
		PredictedDurationMinutes: b.PredictedDurationMinutes,
	}
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var body taskBody
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.submit(w, store.CreateTask{Task: body.task()})
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var body taskBody
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.submit(w, store.UpdateTask{ID: model.TaskID(id), Task: body.task()})
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	s.submit(w, store.ToggleTask{ID: model.TaskID(r.PathValue("id"))})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	s.submit(w, store.DeleteTask{ID: model.TaskID(r.PathValue("id"))})
}

func (s *Server) handleMoveTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ToOffset int `json:"to_offset"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.submit(w, store.MoveTask{ID: model.TaskID(r.PathValue("id")), ToOffset: body.ToOffset})
}

// handleCreateBlock serves both scheduling paths: a drop target goes through
// the placement engine, an explicit start/duration is trusted as-is.
func (s *Server) handleCreateBlock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TaskID          string     `json:"task_id"`
		Target          *time.Time `json:"target_time"`
		DayStart        *time.Time `json:"day_start"`
		Start           *time.Time `json:"start_time"`
		DurationMinutes int        `json:"duration_in_minutes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch {
	case body.Start != nil:
		s.submit(w, store.CreateTimeBlock{
			TaskID:          model.TaskID(body.TaskID),
			Start:           *body.Start,
			DurationMinutes: body.DurationMinutes,
		})
	case body.Target != nil:
		day := dayStartOf(body.Target, body.DayStart)
		s.submit(w, store.ScheduleTask{
			TaskID:   model.TaskID(body.TaskID),
			Target:   *body.Target,
			DayStart: day,
		})
	default:
		writeErr(w, http.StatusBadRequest, "either start_time or target_time is required")
	}
}

func dayStartOf(target, explicit *time.Time) time.Time {
	if explicit != nil {
		return *explicit
	}
	t := *target
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *Server) handleUpdateBlock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Start           time.Time `json:"start_time"`
		DurationMinutes int       `json:"duration_in_minutes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.submit(w, store.MoveTimeBlock{
		ID:              model.TimeBlockID(r.PathValue("id")),
		Start:           body.Start,
		DurationMinutes: body.DurationMinutes,
	})
}

func (s *Server) handleResizeBlock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Edge     string    `json:"edge"`
		Boundary time.Time `json:"boundary"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.submit(w, store.ResizeTimeBlock{
		ID:       model.TimeBlockID(r.PathValue("id")),
		Edge:     schedule.Edge(body.Edge),
		Boundary: body.Boundary,
	})
}

func (s *Server) handleDeleteBlock(w http.ResponseWriter, r *http.Request) {
	s.submit(w, store.DeleteTimeBlock{ID: model.TimeBlockID(r.PathValue("id"))})
}
