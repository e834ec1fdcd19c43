package model

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is one entry in the session transcript.
// The transcript is append-only; messages are never mutated or removed.
type ChatMessage struct {
	ID     string
	Text   string
	Sender Sender
}
