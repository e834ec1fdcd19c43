package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"scheduling-assistant/pkg/gemini"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

// extractDetails runs one stateless extraction round trip for the given
// user message. Earlier turns are not carried forward; each message must
// stand on its own.
func (uc *implUseCase) extractDetails(ctx context.Context, text string) (*gemini.AppointmentDetails, error) {
	req := gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: gemini.BuildExtractionSystemInstruction(uc.now())}},
		},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: text}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   gemini.AppointmentDetailsSchema(),
		},
	}

	resp, err := uc.gemini.GenerateContent(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty extraction response")
	}

	raw := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	var details gemini.AppointmentDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}
	return &details, nil
}
