package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scheduling-assistant/internal/appointment"
	"scheduling-assistant/internal/assistant"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/gcalendar"
)

// HandleMessage runs one turn of the conversation: exactly one user message
// and one assistant reply are appended, regardless of outcome.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, text string) (assistant.HandleOutput, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return assistant.HandleOutput{}, assistant.ErrEmptyMessage
	}

	if !uc.acquire(sc.SessionID) {
		return assistant.HandleOutput{}, assistant.ErrBusy
	}
	defer uc.release(sc.SessionID)

	userMsg := model.ChatMessage{
		ID:     "user_" + uuid.NewString(),
		Text:   text,
		Sender: model.SenderUser,
	}
	if err := uc.repo.Append(ctx, sc, userMsg); err != nil {
		return assistant.HandleOutput{}, err
	}

	reply := model.ChatMessage{
		ID:     "ai_" + uuid.NewString(),
		Text:   uc.replyFor(ctx, sc, text),
		Sender: model.SenderAI,
	}
	if err := uc.repo.Append(ctx, sc, reply); err != nil {
		return assistant.HandleOutput{}, err
	}

	return assistant.HandleOutput{UserMessage: userMsg, Reply: reply}, nil
}

// replyFor computes the assistant's reply text for one user message.
func (uc *implUseCase) replyFor(ctx context.Context, sc model.Scope, text string) string {
	details, err := uc.extractDetails(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.HandleMessage: extraction failed for session %s: %v", sc.SessionID, err)
		return extractionFailureText
	}

	switch {
	case details.IsReadyToSchedule && details.Title != "" && details.Date != "" && details.Time != "":
		_, err := uc.appointments.Schedule(ctx, sc, appointment.ScheduleInput{
			Title:     details.Title,
			Date:      details.Date,
			Time:      details.Time,
			Attendees: details.Attendees,
		})
		if err != nil {
			uc.l.Errorf(ctx, "assistant.HandleMessage: schedule failed for session %s: %v", sc.SessionID, err)
			if errors.Is(err, appointment.ErrCalendarAuth) {
				return scheduleAuthFailureText
			}
			var apiErr *gcalendar.APIError
			if errors.As(err, &apiErr) && apiErr.Message != "" {
				return apiErr.Message
			}
			return scheduleFailureText
		}
		return fmt.Sprintf(confirmationFormat, details.Title, details.Date, details.Time)

	case details.ClarificationQuestion != "":
		return details.ClarificationQuestion

	default:
		return fallbackText
	}
}

// Transcript returns the session's message list, oldest first.
func (uc *implUseCase) Transcript(ctx context.Context, sc model.Scope) (assistant.TranscriptOutput, error) {
	msgs, err := uc.repo.List(ctx, sc)
	if err != nil {
		return assistant.TranscriptOutput{}, err
	}
	return assistant.TranscriptOutput{Messages: msgs}, nil
}
