package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendPasswordResetEmail sends a password reset email
func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := s.renderTemplate(passwordResetTemplate, map[string]string{
		"Email":    toEmail,
		"ResetURL": resetURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Reset Your Password - SpeakWise"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// ReceiptData holds the values rendered into a payment receipt email
type ReceiptData struct {
	Name        string
	OrderNumber string
	CourseTitle string
	Amount      string
	Currency    string
}

// SendPaymentReceiptEmail sends a payment receipt after a verified payment
func (s *EmailService) SendPaymentReceiptEmail(toEmail string, data ReceiptData) error {
	htmlContent, err := s.renderTemplate(receiptTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Payment Receipt %s - SpeakWise", data.OrderNumber)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	return smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
}

// buildHTMLEmail builds a MIME HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"
	return []byte(headers + htmlBody)
}

func (s *EmailService) renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("email").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const passwordResetTemplate = `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Password Reset</h2>
	<p>Hi {{.Email}},</p>
	<p>We received a request to reset your password. Click the button below to choose a new one. This link expires in one hour.</p>
	<p><a href="{{.ResetURL}}" style="background: #2563eb; color: #fff; padding: 10px 20px; text-decoration: none; border-radius: 4px;">Reset Password</a></p>
	<p>If you did not request this, you can safely ignore this email.</p>
	<p>— The SpeakWise Team</p>
</body>
</html>
`

const receiptTemplate = `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Payment Received</h2>
	<p>Hi {{.Name}},</p>
	<p>Thank you for your purchase. Your payment was verified successfully.</p>
	<table cellpadding="6" style="border-collapse: collapse;">
		<tr><td><strong>Order</strong></td><td>{{.OrderNumber}}</td></tr>
		<tr><td><strong>Course</strong></td><td>{{.CourseTitle}}</td></tr>
		<tr><td><strong>Amount</strong></td><td>{{.Currency}} {{.Amount}}</td></tr>
	</table>
	<p>You now have access to the course from your account portal.</p>
	<p>— The SpeakWise Team</p>
</body>
</html>
`
