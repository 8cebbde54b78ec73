// Package contact stores messages sent through the email dialog and
// implements the dialog's submit flow.
package contact

import (
	"strings"
	"time"
)

// Response messages of the contact API.
const (
	MsgMissingFields = "Please fill all fields!"
	MsgSaved         = "Message saved! I'll get back to you soon."
	MsgSaveFailed    = "Error saving message. Please try again."
	MsgNetworkError  = "Network error. Please try again."
)

// Form is the four fields of the email dialog.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Complete reports whether every field has non-blank content.
func (f Form) Complete() bool {
	for _, v := range []string{f.Name, f.Email, f.Subject, f.Message} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Submission is a stored message.
type Submission struct {
	Seq        int64     `json:"id"`
	ID         string    `json:"uuid"`
	Timestamp  time.Time `json:"timestamp"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	RemoteAddr string    `json:"-"`
}

// Result is the body returned by POST /api/contact.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Listing is the body returned by GET /admin/contacts.
type Listing struct {
	Success     bool         `json:"success"`
	Submissions []Submission `json:"submissions"`
	Count       int          `json:"count"`
}
