package notify

import (
	"fmt"

	"github.com/mbolis/hvac-backend/model"
)

const (
	SubjectQuote   = "New Quote Request"
	SubjectContact = "New Contact Form Submission"
)

func QuoteBody(q model.QuoteRequest) string {
	return fmt.Sprintf(`New quote request received:
Name: %s
Email: %s
Phone: %s
Service: %s
Message: %s
`, q.Name, q.Email, q.Phone, q.ServiceType, q.Message)
}

func ContactBody(c model.ContactSubmission) string {
	return fmt.Sprintf(`New contact form submission:
Name: %s
Email: %s
Phone: %s
Message: %s
`, c.Name, c.Email, c.Phone, c.Message)
}
