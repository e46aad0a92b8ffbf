// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes a new EmailService instance. Returns nil when
// POSTMARK_API_TOKEN is unset; the backend then runs without receipts.
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		log.Println("POSTMARK_API_TOKEN not set; payment receipt emails disabled")
		return nil
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendPaymentReceipt sends a payment receipt to the paying customer
func (es *EmailService) SendPaymentReceipt(toEmail, transactionID string, amount float64) error {
	subject := "Payment Receipt - Bistro Boss"
	htmlContent := fmt.Sprintf(
		"<strong>Thank you for your order!</strong><br><br>We have received your payment of <strong>$%.2f</strong>.<br>Transaction ID: <strong>%s</strong><br><br>Your order is being prepared.",
		amount,
		transactionID,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
