package assistant

import "scheduling-assistant/internal/model"

// HandleOutput carries the two messages appended by one HandleMessage call:
// the echoed user message and the assistant's reply.
type HandleOutput struct {
	UserMessage model.ChatMessage
	Reply       model.ChatMessage
}

// TranscriptOutput is the session's full message list.
type TranscriptOutput struct {
	Messages []model.ChatMessage
}
