package appointment

import "scheduling-assistant/internal/model"

// ScheduleInput is the input for booking an appointment. Date and Time are
// the extraction slots in YYYY-MM-DD and HH:MM (24-hour) form.
type ScheduleInput struct {
	Title     string
	Date      string
	Time      string
	Attendees []string
}

// ListOutput is the result of refreshing the session's appointment list.
type ListOutput struct {
	Appointments []model.Appointment
}

// ScheduleOutput is the result of booking an appointment.
type ScheduleOutput struct {
	Appointment model.Appointment
}

// MonthActivity is the per-month appointment count broken down by category.
type MonthActivity struct {
	Month    string `json:"month"`
	Work     int    `json:"work"`
	Personal int    `json:"personal"`
	Health   int    `json:"health"`
	Other    int    `json:"other"`
}

// StatsOutput summarizes the session's appointments for the dashboard.
type StatsOutput struct {
	UpcomingCount   int
	CompletedCount  int
	TotalAttendees  int
	MonthlyActivity []MonthActivity
	NextUp          []model.Appointment
}
