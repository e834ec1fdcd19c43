package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	defaultMaxResults = 20

	dateOnlyFormat = "2006-01-02"
)

// Client talks to the Google Calendar API on behalf of whichever session
// token is passed to each call.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ ICalendar = (*Client)(nil)

// NewClient creates a new calendar client.
func NewClient() *Client {
	return &Client{}
}

// SetEndpoint overrides the API base URL. Used in tests.
func (c *Client) SetEndpoint(url string) {
	c.endpoint = url
}

// SetHTTPClient overrides the underlying HTTP client. Used in tests.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// serviceFor builds a calendar service authenticated with the given token.
func (c *Client) serviceFor(ctx context.Context, accessToken string) (*calendar.Service, error) {
	opts := []option.ClientOption{}
	if c.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(c.httpClient))
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
		opts = append(opts, option.WithTokenSource(ts))
	}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

// ListUpcoming fetches upcoming events from the given calendar, server-sorted
// by start time with recurring events expanded to single occurrences.
func (c *Client) ListUpcoming(ctx context.Context, accessToken string, req ListUpcomingRequest) ([]Event, error) {
	svc, err := c.serviceFor(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	timeMin := req.TimeMin
	if timeMin.IsZero() {
		timeMin = time.Now()
	}

	result, err := svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError(err, "failed to fetch calendar events")
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, eventFromAPI(item))
	}
	return events, nil
}

// CreateEvent creates a new calendar event and returns the created event as
// reflected back by the remote service.
func (c *Client) CreateEvent(ctx context.Context, accessToken string, req CreateEventRequest) (*Event, error) {
	svc, err := c.serviceFor(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err, "failed to create calendar event")
	}

	result := eventFromAPI(created)
	return &result, nil
}

// eventFromAPI maps a wire event to the simplified Event representation.
// A timed start is preferred over an all-day date.
func eventFromAPI(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		ColorID:     item.ColorId,
		HtmlLink:    item.HtmlLink,
	}

	if item.Start != nil {
		if item.Start.DateTime != "" {
			ev.Start, _ = time.Parse(time.RFC3339, item.Start.DateTime)
		} else if item.Start.Date != "" {
			ev.Start, _ = time.Parse(dateOnlyFormat, item.Start.Date)
			ev.AllDay = true
		}
	}
	if item.End != nil {
		if item.End.DateTime != "" {
			ev.End, _ = time.Parse(time.RFC3339, item.End.DateTime)
		} else if item.End.Date != "" {
			ev.End, _ = time.Parse(dateOnlyFormat, item.End.Date)
		}
	}

	for _, a := range item.Attendees {
		ev.Attendees = append(ev.Attendees, Attendee{
			DisplayName: a.DisplayName,
			Email:       a.Email,
		})
	}

	return ev
}
