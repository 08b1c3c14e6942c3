package constants

// Context keys for validated requests
const (
	ContextKeyApplication = "application"
	ContextKeyContact     = "contact"

	// Request context keys
	ContextKeyRequestID = "RequestID"
)
