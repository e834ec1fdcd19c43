package http

import (
	"scheduling-assistant/internal/appointment"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/response"
)

// --- Response DTOs ---

type appointmentResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Date        response.DateTime `json:"date"`
	Attendees   []string          `json:"attendees"`
	Category    string            `json:"category"`
	Description string            `json:"description,omitempty"`
}

func newAppointmentResp(appt model.Appointment) appointmentResp {
	attendees := appt.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	return appointmentResp{
		ID:          appt.ID,
		Title:       appt.Title,
		Date:        response.DateTime(appt.Date),
		Attendees:   attendees,
		Category:    string(appt.Category),
		Description: appt.Description,
	}
}

type listResp struct {
	Appointments []appointmentResp `json:"appointments"`
}

func (h *handler) newListResp(out appointment.ListOutput) listResp {
	appts := make([]appointmentResp, len(out.Appointments))
	for i, appt := range out.Appointments {
		appts[i] = newAppointmentResp(appt)
	}
	return listResp{Appointments: appts}
}

type statsResp struct {
	UpcomingCount   int                         `json:"upcoming_count"`
	CompletedCount  int                         `json:"completed_count"`
	TotalAttendees  int                         `json:"total_attendees"`
	MonthlyActivity []appointment.MonthActivity `json:"monthly_activity"`
	NextUp          []appointmentResp           `json:"next_up"`
}

func (h *handler) newStatsResp(out appointment.StatsOutput) statsResp {
	nextUp := make([]appointmentResp, len(out.NextUp))
	for i, appt := range out.NextUp {
		nextUp[i] = newAppointmentResp(appt)
	}
	monthly := out.MonthlyActivity
	if monthly == nil {
		monthly = []appointment.MonthActivity{}
	}
	return statsResp{
		UpcomingCount:   out.UpcomingCount,
		CompletedCount:  out.CompletedCount,
		TotalAttendees:  out.TotalAttendees,
		MonthlyActivity: monthly,
		NextUp:          nextUp,
	}
}
