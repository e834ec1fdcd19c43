package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/assistant"
	"scheduling-assistant/internal/middleware"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/internal/session"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	handleOut assistant.HandleOutput
	handleErr error
	listOut   assistant.TranscriptOutput
}

func (m *mockUseCase) HandleMessage(ctx context.Context, sc model.Scope, text string) (assistant.HandleOutput, error) {
	if m.handleErr != nil {
		return assistant.HandleOutput{}, m.handleErr
	}
	return m.handleOut, nil
}

func (m *mockUseCase) Transcript(ctx context.Context, sc model.Scope) (assistant.TranscriptOutput, error) {
	return m.listOut, nil
}

func newTestRouter(uc assistant.UseCase) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(16, time.Minute)
	s := sessions.Create(model.User{Email: "ada@example.com"}, "tok-1")

	mw := middleware.New(&mockLogger{}, sessions, 60)
	h := New(&mockLogger{}, uc)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r, s.ID
}

func doRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSend(t *testing.T) {
	uc := &mockUseCase{handleOut: assistant.HandleOutput{
		UserMessage: model.ChatMessage{ID: "u1", Text: "Lunch tomorrow", Sender: model.SenderUser},
		Reply:       model.ChatMessage{ID: "a1", Text: "What time?", Sender: model.SenderAI},
	}}
	r, token := newTestRouter(uc)

	w := doRequest(r, http.MethodPost, "/api/v1/chat/messages", token, `{"text":"Lunch tomorrow"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			UserMessage struct {
				Text   string `json:"text"`
				Sender string `json:"sender"`
			} `json:"user_message"`
			Reply struct {
				Text   string `json:"text"`
				Sender string `json:"sender"`
			} `json:"reply"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.Reply.Text != "What time?" || resp.Data.Reply.Sender != "ai" {
		t.Errorf("unexpected reply: %+v", resp.Data.Reply)
	}
	if resp.Data.UserMessage.Sender != "user" {
		t.Errorf("unexpected user message: %+v", resp.Data.UserMessage)
	}
}

func TestSend_Busy(t *testing.T) {
	r, token := newTestRouter(&mockUseCase{handleErr: assistant.ErrBusy})

	w := doRequest(r, http.MethodPost, "/api/v1/chat/messages", token, `{"text":"hi"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 while busy, got %d", w.Code)
	}
}

func TestSend_MissingText(t *testing.T) {
	r, token := newTestRouter(&mockUseCase{})

	w := doRequest(r, http.MethodPost, "/api/v1/chat/messages", token, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing text, got %d", w.Code)
	}
}

func TestSend_Unauthorized(t *testing.T) {
	r, _ := newTestRouter(&mockUseCase{})

	if w := doRequest(r, http.MethodPost, "/api/v1/chat/messages", "", `{"text":"hi"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodPost, "/api/v1/chat/messages", "bogus", `{"text":"hi"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for an unknown session, got %d", w.Code)
	}
}

func TestList(t *testing.T) {
	uc := &mockUseCase{listOut: assistant.TranscriptOutput{Messages: []model.ChatMessage{
		{ID: assistant.GreetingMessageID, Text: assistant.GreetingText, Sender: model.SenderAI},
	}}}
	r, token := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/api/v1/chat/messages", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			Messages []struct {
				ID string `json:"id"`
			} `json:"messages"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Data.Messages) != 1 || resp.Data.Messages[0].ID != assistant.GreetingMessageID {
		t.Errorf("unexpected transcript: %+v", resp.Data.Messages)
	}
}
