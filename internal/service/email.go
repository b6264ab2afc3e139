package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name string, loanID int32, dueDate time.Time) error {
	subject := "Overdue tool rental reminder"
	due := dueDate.Format("2006-01-02")
	plainText := fmt.Sprintf("Hello %s,\n\nYour rental #%d was due on %s. Please return the tools to avoid further late charges.", name, loanID, due)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Overdue Rental</h2>
				<p>Hello %s,</p>
				<p>Your rental <strong>#%d</strong> was due on <strong>%s</strong>. Please return the tools to avoid further late charges.</p>
			</body>
		</html>
	`, name, loanID, due)

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendRestrictionNotification(ctx context.Context, email, name string, debt int32) error {
	subject := "Your rental account has been restricted"
	plainText := fmt.Sprintf("Hello %s,\n\nYour account has been restricted. Outstanding debt: $%d. Settle it at the counter to rent again.", name, debt)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Account Restricted</h2>
				<p>Hello %s,</p>
				<p>Your account has been restricted. Outstanding debt: <strong>$%d</strong>. Settle it at the counter to rent again.</p>
			</body>
		</html>
	`, name, debt)

	return s.send(email, name, subject, plainText, htmlContent)
}
