package server

import "net/http"

// Register wires every API route onto mux.
func Register(mux *http.ServeMux, s *Server) {
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /api/state", s.handleState)

	mux.HandleFunc("POST /api/undo", s.handleUndo)
	mux.HandleFunc("POST /api/redo", s.handleRedo)

	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("PUT /api/tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("POST /api/tasks/{id}/toggle", s.handleToggleTask)
	mux.HandleFunc("POST /api/tasks/{id}/move", s.handleMoveTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)

	mux.HandleFunc("POST /api/timeblocks", s.handleCreateBlock)
	mux.HandleFunc("PUT /api/timeblocks/{id}", s.handleUpdateBlock)
	mux.HandleFunc("POST /api/timeblocks/{id}/resize", s.handleResizeBlock)
	mux.HandleFunc("DELETE /api/timeblocks/{id}", s.handleDeleteBlock)

	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/chat/retry", s.handleChatRetry)
}
