package usecase

// Assistant reply texts for the conversation flow.
const (
	// extraction round trip failed entirely
	extractionFailureText = "I'm having a bit of trouble connecting to my brain right now. Please try again in a moment."

	// details ready and the event was created; title, date, time
	confirmationFormat = `Great! I've added "%s" to your Google Calendar for %s at %s.`

	// extraction produced neither a schedulable result nor a question
	fallbackText = "I'm not sure how to help with that. Could you please provide appointment details like a title, date, and time?"

	// calendar rejected the credential during scheduling
	scheduleAuthFailureText = "I couldn't access your calendar to schedule this. Your session may have expired. Please try logging out and signing in again."

	// scheduling failed without a calendar error message to surface
	scheduleFailureText = "Sorry, an unexpected error occurred while trying to schedule the appointment."
)
