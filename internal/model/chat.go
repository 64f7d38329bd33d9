package model

type MessageID string

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry in the append-only conversation history.
// IsLoading marks a transient placeholder shown while an assistant request is
// in flight; placeholders are removed when the reply (or an error) arrives.
type ChatMessage struct {
	ID        MessageID `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	IsLoading bool      `json:"is_loading,omitempty"`
}
