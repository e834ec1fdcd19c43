package usecase

import (
	"context"
	"time"

	"scheduling-assistant/internal/appointment"
	"scheduling-assistant/internal/model"
)

// Stats derives dashboard figures from the session's stored appointments.
// An empty store yields zero-valued stats.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (appointment.StatsOutput, error) {
	appts, err := uc.repo.ListAll(ctx, sc)
	if err != nil {
		return appointment.StatsOutput{}, err
	}

	now := time.Now().In(uc.location)
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.location)

	op := appointment.StatsOutput{}
	monthly := make(map[time.Month]*appointment.MonthActivity)

	for _, appt := range appts {
		op.TotalAttendees += len(appt.Attendees)

		if !appt.Date.Before(now) {
			op.UpcomingCount++
		}

		row, ok := monthly[appt.Date.Month()]
		if !ok {
			row = &appointment.MonthActivity{Month: appt.Date.Month().String()[:3]}
			monthly[appt.Date.Month()] = row
		}
		switch appt.Category {
		case model.CategoryWork:
			row.Work++
		case model.CategoryPersonal:
			row.Personal++
		case model.CategoryHealth:
			row.Health++
		default:
			row.Other++
		}
	}
	op.CompletedCount = len(appts) - op.UpcomingCount

	for m := time.January; m <= time.December; m++ {
		if row, ok := monthly[m]; ok {
			op.MonthlyActivity = append(op.MonthlyActivity, *row)
		}
	}

	for _, appt := range appts {
		if appt.Date.Before(startOfToday) {
			continue
		}
		op.NextUp = append(op.NextUp, appt)
		if len(op.NextUp) == 5 {
			break
		}
	}

	return op, nil
}
