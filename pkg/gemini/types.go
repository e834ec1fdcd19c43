package gemini

// GenerateRequest is the top-level request body for the Gemini API.
type GenerateRequest struct {
	SystemInstruction *Content          `json:"system_instruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment for a content message.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig holds optional generation settings. ResponseMIMEType and
// ResponseSchema constrain the model to structured JSON output.
type GenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// Schema is a subset of the OpenAPI schema accepted by the Gemini API for
// structured output.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
}

// Schema type names accepted by the API.
const (
	TypeObject  = "OBJECT"
	TypeString  = "STRING"
	TypeArray   = "ARRAY"
	TypeBoolean = "BOOLEAN"
)

// GenerateResponse is the top-level response body from the Gemini API.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}

// AppointmentDetails is the partial appointment record extracted from a user
// message. Fields are optional; IsReadyToSchedule is set only when title,
// date, and time are all resolved, otherwise ClarificationQuestion carries a
// follow-up prompt for the user.
type AppointmentDetails struct {
	Title                 string   `json:"title,omitempty"`
	Date                  string   `json:"date,omitempty"` // YYYY-MM-DD
	Time                  string   `json:"time,omitempty"` // HH:MM, 24-hour
	Attendees             []string `json:"attendees,omitempty"`
	IsReadyToSchedule     bool     `json:"isReadyToSchedule,omitempty"`
	ClarificationQuestion string   `json:"clarificationQuestion,omitempty"`
}
