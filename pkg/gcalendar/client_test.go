package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scheduling-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(ts *httptest.Server) *gcalendar.Client {
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client := gcalendar.NewClient()
	client.SetHTTPClient(tsClient)
	return client
}

func TestListUpcoming(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		q := r.URL.Query()
		if q.Get("singleEvents") != "true" || q.Get("orderBy") != "startTime" {
			t.Errorf("missing singleEvents/orderBy query params: %v", q)
		}
		if q.Get("maxResults") != "20" {
			t.Errorf("expected default maxResults 20, got %q", q.Get("maxResults"))
		}
		if q.Get("timeMin") == "" {
			t.Errorf("expected timeMin to be set")
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"items": [
				{
					"id": "ev-1",
					"summary": "Team standup",
					"colorId": "5",
					"start": { "dateTime": "2024-05-01T09:00:00Z" },
					"end": { "dateTime": "2024-05-01T09:30:00Z" },
					"attendees": [
						{ "displayName": "Sam", "email": "sam@example.com" },
						{ "email": "alex@example.com" }
					]
				},
				{
					"id": "ev-2",
					"start": { "date": "2024-05-02" },
					"end": { "date": "2024-05-03" }
				}
			]
		}`))
	}))
	defer ts.Close()

	client := newTestClient(ts)

	events, err := client.ListUpcoming(context.Background(), "test-token", gcalendar.ListUpcomingRequest{})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	timed := events[0]
	if timed.Summary != "Team standup" || timed.ColorID != "5" || timed.AllDay {
		t.Errorf("unexpected timed event: %+v", timed)
	}
	if !timed.Start.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected timed start: %v", timed.Start)
	}
	if len(timed.Attendees) != 2 || timed.Attendees[0].DisplayName != "Sam" || timed.Attendees[1].Email != "alex@example.com" {
		t.Errorf("unexpected attendees: %+v", timed.Attendees)
	}

	allDay := events[1]
	if !allDay.AllDay || allDay.Summary != "" {
		t.Errorf("expected untitled all-day event, got %+v", allDay)
	}
	if !allDay.Start.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected all-day start: %v", allDay.Start)
	}
}

func TestListUpcoming_Empty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"items": []}`))
	}))
	defer ts.Close()

	client := newTestClient(ts)

	events, err := client.ListUpcoming(context.Background(), "test-token", gcalendar.ListUpcomingRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestCreateEvent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "event-123",
			"summary": "Lunch with Sam",
			"description": "Appointment with: Sam",
			"htmlLink": "https://calendar.google.com/event-uri",
			"start": { "dateTime": "2024-03-11T12:00:00Z" },
			"end": { "dateTime": "2024-03-11T13:00:00Z" }
		}`))
	}))
	defer ts.Close()

	client := newTestClient(ts)

	start := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), "test-token", gcalendar.CreateEventRequest{
		Summary:     "Lunch with Sam",
		Description: "Appointment with: Sam",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    "UTC",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	// The returned event must reflect the server response, not the request.
	if event.ID != "event-123" {
		t.Errorf("expected server-assigned id, got %q", event.ID)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected link: %s", event.HtmlLink)
	}
	if !event.Start.Equal(start) || !event.End.Equal(start.Add(time.Hour)) {
		t.Errorf("unexpected event times: %v - %v", event.Start, event.End)
	}
}

func TestAPIErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "forbidden-cal"):
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error": {"code": 403, "message": "Request had insufficient authentication scopes."}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"code": 500, "message": "Backend error"}}`))
		}
	}))
	defer ts.Close()

	client := newTestClient(ts)

	t.Run("auth error carries status and message", func(t *testing.T) {
		_, err := client.ListUpcoming(context.Background(), "expired-token", gcalendar.ListUpcomingRequest{
			CalendarID: "forbidden-cal",
		})
		if err == nil {
			t.Fatalf("expected error")
		}
		if !gcalendar.IsAuthError(err) {
			t.Errorf("expected auth error, got %v", err)
		}
		if !strings.Contains(err.Error(), "insufficient authentication scopes") {
			t.Errorf("expected remote message in error, got %v", err)
		}
	})

	t.Run("server error is not an auth error", func(t *testing.T) {
		_, err := client.CreateEvent(context.Background(), "test-token", gcalendar.CreateEventRequest{
			Summary:   "x",
			StartTime: time.Now(),
			EndTime:   time.Now().Add(time.Hour),
		})
		if err == nil {
			t.Fatalf("expected error")
		}
		if gcalendar.IsAuthError(err) {
			t.Errorf("500 must not be treated as auth error")
		}
	})
}
