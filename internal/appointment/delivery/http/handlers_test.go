package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/appointment"
	"scheduling-assistant/internal/middleware"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/internal/session"
	"scheduling-assistant/pkg/response"
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
	listOut  appointment.ListOutput
	listErr  error
	statsOut appointment.StatsOutput
}

func (m *mockUseCase) Refresh(ctx context.Context, sc model.Scope) (appointment.ListOutput, error) {
	if m.listErr != nil {
		return appointment.ListOutput{}, m.listErr
	}
	return m.listOut, nil
}

func (m *mockUseCase) Schedule(ctx context.Context, sc model.Scope, ip appointment.ScheduleInput) (appointment.ScheduleOutput, error) {
	return appointment.ScheduleOutput{}, nil
}

func (m *mockUseCase) Stats(ctx context.Context, sc model.Scope) (appointment.StatsOutput, error) {
	return m.statsOut, nil
}

func newTestRouter(uc appointment.UseCase) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(16, time.Minute)
	s := sessions.Create(model.User{Email: "ada@example.com"}, "tok-1")

	mw := middleware.New(&mockLogger{}, sessions, 60)
	h := New(&mockLogger{}, uc)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r, s.ID
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	uc := &mockUseCase{listOut: appointment.ListOutput{Appointments: []model.Appointment{
		{
			ID:       "evt-1",
			Title:    "Standup",
			Date:     time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC),
			Category: model.CategoryWork,
		},
	}}}
	r, token := newTestRouter(uc)

	w := doRequest(r, "/api/v1/appointments", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Appointments []struct {
				ID        string   `json:"id"`
				Title     string   `json:"title"`
				Date      string   `json:"date"`
				Category  string   `json:"category"`
				Attendees []string `json:"attendees"`
			} `json:"appointments"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Data.Appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(resp.Data.Appointments))
	}
	got := resp.Data.Appointments[0]
	if got.ID != "evt-1" || got.Title != "Standup" || got.Category != "Work" {
		t.Errorf("unexpected appointment: %+v", got)
	}
	wantDate := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC).Local().Format(response.DateTimeFormat)
	if got.Date != wantDate {
		t.Errorf("expected date %q, got %q", wantDate, got.Date)
	}
	if got.Attendees == nil {
		t.Error("attendees must marshal as an empty list, not null")
	}
}

func TestList_CalendarAuthError(t *testing.T) {
	uc := &mockUseCase{listErr: fmt.Errorf("%w: token expired", appointment.ErrCalendarAuth)}
	r, token := newTestRouter(uc)

	w := doRequest(r, "/api/v1/appointments", token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	want := "Calendar access denied or expired. Please log out and sign in again to re-authorize."
	if resp.Message != want {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestList_CalendarUnavailable(t *testing.T) {
	uc := &mockUseCase{listErr: fmt.Errorf("%w: backend error", appointment.ErrCalendarUnavailable)}
	r, token := newTestRouter(uc)

	w := doRequest(r, "/api/v1/appointments", token)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != "Failed to load your calendar. Please try refreshing the page." {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestList_Unauthorized(t *testing.T) {
	r, _ := newTestRouter(&mockUseCase{})

	if w := doRequest(r, "/api/v1/appointments", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}

func TestStats(t *testing.T) {
	uc := &mockUseCase{statsOut: appointment.StatsOutput{
		UpcomingCount:  2,
		CompletedCount: 1,
		TotalAttendees: 4,
		MonthlyActivity: []appointment.MonthActivity{
			{Month: "Sep", Work: 2, Personal: 1},
		},
	}}
	r, token := newTestRouter(uc)

	w := doRequest(r, "/api/v1/appointments/stats", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			UpcomingCount   int `json:"upcoming_count"`
			CompletedCount  int `json:"completed_count"`
			TotalAttendees  int `json:"total_attendees"`
			MonthlyActivity []struct {
				Month string `json:"month"`
				Work  int    `json:"work"`
			} `json:"monthly_activity"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.UpcomingCount != 2 || resp.Data.CompletedCount != 1 || resp.Data.TotalAttendees != 4 {
		t.Errorf("unexpected stats: %+v", resp.Data)
	}
	if len(resp.Data.MonthlyActivity) != 1 || resp.Data.MonthlyActivity[0].Month != "Sep" {
		t.Errorf("unexpected monthly activity: %+v", resp.Data.MonthlyActivity)
	}
}
