package model

const (
	StatusIdle    = ""
	StatusSuccess = "success"
	StatusError   = "error"
)

// ContactFormState holds the three free-text fields of the contact form
type ContactFormState struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// IsEmpty is true once the form has been reset
func (f ContactFormState) IsEmpty() bool {
	return f.Name == "" && f.Email == "" && f.Message == ""
}

// ToEmailMessage maps the form to the template params expected by the email template
func (f ContactFormState) ToEmailMessage() EmailMessage {
	return EmailMessage{
		FromName: f.Name,
		ReplyTo:  f.Email,
		Message:  f.Message,
	}
}

type SubmissionStatus struct {
	Type    string `json:"type"` // "" | success | error
	Message string `json:"message"`
}

// Ack is returned once the email provider accepted the message
type Ack struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type EmailMessage struct {
	FromName string `json:"from_name"`
	ReplyTo  string `json:"reply_to"`
	Message  string `json:"message"`
}
