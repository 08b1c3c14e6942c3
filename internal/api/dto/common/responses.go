package common

// SubmissionResponse is the JSON body returned by the form endpoints
type SubmissionResponse struct {
	OK          bool   `json:"ok"`
	Message     string `json:"message,omitempty"`
	DevFallback bool   `json:"devFallback,omitempty"`
	SavedTo     string `json:"savedTo,omitempty"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Mode    string `json:"mode"`
	Version string `json:"version"`
}

// Plain-text bodies for failed submissions
const (
	MsgMissingFields       = "Missing required fields"
	MsgCoverLetterRequired = "Cover letter PDF is required"
	MsgCoverLetterNotPDF   = "Cover letter must be a PDF"
	MsgCoverLetterTooLarge = "Cover letter exceeds the 10MB limit"
	MsgInvalidEmail        = "Invalid email address"
	MsgInvalidFields       = "Invalid request fields"
	MsgInvalidBody         = "Invalid request body"
	MsgRequestTooLarge     = "Request body too large"
	MsgApplicationFailed   = "Failed to process application"
	MsgContactFailed       = "Failed to send contact message"
	MsgInternalServerError = "Internal server error"
	MsgRateLimited         = "Rate limit exceeded. Please try again later."
	MsgApplicationEmailed  = "Application submitted and emailed successfully!"
	MsgContactSent         = "Contact message sent successfully!"
)

// NewMessageResponse creates a success response with a message
func NewMessageResponse(message string) SubmissionResponse {
	return SubmissionResponse{
		OK:      true,
		Message: message,
	}
}

// NewFallbackResponse marks a submission that was stored instead of emailed
func NewFallbackResponse(savedTo string) SubmissionResponse {
	return SubmissionResponse{
		OK:          true,
		DevFallback: true,
		SavedTo:     savedTo,
	}
}
