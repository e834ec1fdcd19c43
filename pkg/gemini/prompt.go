package gemini

import "fmt"

// ExtractionSystemPromptTemplate is the system instruction for appointment
// extraction. Today's date is injected so the model can resolve relative
// terms like "tomorrow".
const ExtractionSystemPromptTemplate = `You are an expert appointment scheduling assistant. Your goal is to extract appointment details from the user's message. The details are: title, date, time, and a list of attendees. Today's date is %s. If any information is missing, ask clarifying questions. If all information is present, confirm the details by setting isReadyToSchedule to true.`

// BuildExtractionSystemInstruction returns the system instruction for the
// given date (YYYY-MM-DD).
func BuildExtractionSystemInstruction(today string) string {
	return fmt.Sprintf(ExtractionSystemPromptTemplate, today)
}

// AppointmentDetailsSchema constrains the model's output to the
// AppointmentDetails shape.
func AppointmentDetailsSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title": {
				Type:        TypeString,
				Description: "The title or subject of the appointment.",
			},
			"date": {
				Type:        TypeString,
				Description: "The date of the appointment in YYYY-MM-DD format. Infer from context if relative terms like 'tomorrow' are used.",
			},
			"time": {
				Type:        TypeString,
				Description: "The time of the appointment in HH:MM (24-hour) format.",
			},
			"attendees": {
				Type:        TypeArray,
				Description: "A list of attendee names mentioned in the prompt.",
				Items:       &Schema{Type: TypeString},
			},
			"isReadyToSchedule": {
				Type:        TypeBoolean,
				Description: "Set to true only if title, date, and time are all present and confirmed. Otherwise, false.",
			},
			"clarificationQuestion": {
				Type:        TypeString,
				Description: "If any information (title, date, or time) is missing, formulate a friendly question to ask the user for the missing piece. If nothing is missing, this should be null.",
			},
		},
	}
}
