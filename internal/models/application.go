package models

import "fmt"

// Attachment is a file carried by a form submission
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Application is a careers form submission. It lives for one request.
type Application struct {
	FirstName      string
	LastName       string
	Email          string
	AreaOfInterest string
	CoverLetter    Attachment
}

// FullName returns "<first> <last>"
func (a *Application) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}
