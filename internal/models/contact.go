package models

// ContactMessage is a contact form submission. It lives for one request.
type ContactMessage struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Inquiry string
	Message string
}
