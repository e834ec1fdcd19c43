package assistant

// Greeting seeds every new transcript.
const (
	GreetingMessageID = "init"
	GreetingText      = "Hello! I'm your scheduling assistant. I can add events to your Google Calendar. How can I help?"
)
