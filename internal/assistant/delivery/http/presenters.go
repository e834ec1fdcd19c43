package http

import (
	"scheduling-assistant/internal/assistant"
	"scheduling-assistant/internal/model"
)

// --- Request DTOs ---

type sendReq struct {
	Text string `json:"text" binding:"required"`
}

// --- Response DTOs ---

type messageResp struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

func newMessageResp(msg model.ChatMessage) messageResp {
	return messageResp{
		ID:     msg.ID,
		Text:   msg.Text,
		Sender: string(msg.Sender),
	}
}

type sendResp struct {
	UserMessage messageResp `json:"user_message"`
	Reply       messageResp `json:"reply"`
}

func (h *handler) newSendResp(out assistant.HandleOutput) sendResp {
	return sendResp{
		UserMessage: newMessageResp(out.UserMessage),
		Reply:       newMessageResp(out.Reply),
	}
}

type listResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newListResp(out assistant.TranscriptOutput) listResp {
	msgs := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		msgs[i] = newMessageResp(m)
	}
	return listResp{Messages: msgs}
}
