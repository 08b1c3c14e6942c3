package apply

// MaxCoverLetterSize is the largest accepted cover letter (10 MiB)
const MaxCoverLetterSize = 10 * 1024 * 1024

// CoverLetterField is the multipart field carrying the PDF
const CoverLetterField = "coverLetter"

// PDFContentType is the only accepted declared type for the cover letter
const PDFContentType = "application/pdf"

// ApplyRequest represents the text fields of a careers application
type ApplyRequest struct {
	FirstName      string `form:"firstName" validate:"required,singleline,max=100"`
	LastName       string `form:"lastName" validate:"required,singleline,max=100"`
	Email          string `form:"email" validate:"required,max=255,mailaddress"`
	AreaOfInterest string `form:"areaOfInterest" validate:"omitempty,singleline,max=200"`
}
