package server

import (
	"context"
	"errors"
	"net/http"

	"tempo/internal/assistant"
	"tempo/internal/observability"
	"tempo/internal/store"
)

const (
	apologyStale       = "Sorry, I tried to change something that's no longer there. It may have been edited or removed while I was thinking."
	apologyUnmappable  = "Sorry, part of my reply didn't make sense and was skipped."
	apologyUnreachable = "Sorry, I couldn't reach the assistant. Please try again."
)

// handleChat appends the user's message plus a loading placeholder, sends the
// full snapshot to the assistant and replays the reply into the store. The
// round trip is synchronous; the UI contract is to allow one outstanding
// request at a time.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	st, err := s.store.Submit(store.SendChat{Text: body.Text})
	if err != nil {
		writeStoreErr(w, err)
		return
	}

	req := assistant.BuildRequest(st)
	s.mu.Lock()
	s.lastRequest = &req
	s.mu.Unlock()

	s.roundTrip(r.Context(), w, req)
}

// handleChatRetry re-issues the identical stored payload of the last round
// trip. No new user message is appended.
func (s *Server) handleChatRetry(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	req := s.lastRequest
	s.mu.Unlock()

	if req == nil {
		writeErr(w, http.StatusConflict, "nothing to retry")
		return
	}
	s.roundTrip(r.Context(), w, *req)
}

func (s *Server) roundTrip(ctx context.Context, w http.ResponseWriter, req assistant.Request) {
	log := observability.LoggerFromContext(ctx)

	resp, err := s.assistant.Chat(ctx, req)
	if err != nil {
		log.Warn("assistant round trip failed", "err", err)
		st, subErr := s.store.Submit(store.ChatError{Text: apologyUnreachable})
		if subErr != nil {
			writeStoreErr(w, subErr)
			return
		}
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error": err.Error(),
			"state": st,
		})
		return
	}

	if _, err := s.store.Submit(store.ReceiveChat{Text: resp.ChatResponse}); err != nil {
		writeStoreErr(w, err)
		return
	}

	// Replay the actions one at a time, in order. A stale or malformed entry
	// becomes a bot apology; the rest of the batch still runs.
	for _, raw := range resp.Actions {
		in, err := assistant.MapAction(raw)
		if err != nil {
			log.Warn("skipping assistant action", "err", err)
			if _, subErr := s.store.Submit(store.ChatError{Text: apologyUnmappable}); subErr != nil {
				writeStoreErr(w, subErr)
				return
			}
			continue
		}
		if _, err := s.store.Submit(in); err != nil {
			var notFound *store.NotFoundError
			apology := apologyUnmappable
			if errors.As(err, &notFound) {
				apology = apologyStale
			}
			log.Warn("assistant action rejected", "err", err)
			if _, subErr := s.store.Submit(store.ChatError{Text: apology}); subErr != nil {
				writeStoreErr(w, subErr)
				return
			}
		}
	}

	writeJSON(w, http.StatusOK, s.envelope(s.store.State()))
}
