// Package assistant is the boundary with the external conversational
// assistant service. The core sends the full state snapshot and maps the
// returned action list onto intents; natural-language understanding lives
// entirely on the other side of this boundary.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tempo/internal/model"
)

// Request is the outbound payload: the complete task, time-block and chat
// snapshot. Loading placeholders are a local UI artifact and are excluded.
type Request struct {
	Tasks       []model.Task        `json:"tasks"`
	TimeBlocks  []model.TimeBlock   `json:"timeBlocks"`
	ChatHistory []model.ChatMessage `json:"chatHistory"`
}

// Response is the inbound payload. Actions stay raw here; each entry is
// mapped to exactly one intent by MapAction, so one malformed entry cannot
// poison the batch.
type Response struct {
	ChatResponse string            `json:"chat_response"`
	Actions      []json.RawMessage `json:"actions"`
}

// TransportError is the typed failure for an unreachable or misbehaving
// assistant. The retry contract is to re-issue the identical payload.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return "assistant unreachable: " + e.Err.Error()
	}
	return fmt.Sprintf("assistant returned status %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// BuildRequest snapshots st into an outbound payload.
func BuildRequest(st model.AppState) Request {
	history := make([]model.ChatMessage, 0, len(st.ChatHistory))
	for _, m := range st.ChatHistory {
		if !m.IsLoading {
			history = append(history, m)
		}
	}
	return Request{
		Tasks:       st.Tasks,
		TimeBlocks:  st.TimeBlocks,
		ChatHistory: history,
	}
}

// Chat posts the snapshot to the assistant and decodes its reply. Failures
// are always *TransportError.
func (c *Client) Chat(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{Status: resp.StatusCode}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return &out, nil
}
