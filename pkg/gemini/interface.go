package gemini

import "context"

// IGemini defines the Gemini API operations used by the service.
type IGemini interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

var _ IGemini = (*Client)(nil)
