package response

// Envelope constants.
const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong. Please try again."
)

// DateTimeFormat is the wire format for DateTime fields.
const DateTimeFormat = "2006-01-02 15:04:05"
