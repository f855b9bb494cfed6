package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendRefundProcessed(toEmail, caseNumber string, amount float64) error
	SendCaseReply(toEmail, caseNumber, authorName, preview string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendRefundProcessed(toEmail, caseNumber string, amount float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Refund Processed for Case %s", caseNumber))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Refund Processed</h2>
			<p>Your support case <strong>%s</strong> has been resolved with a refund.</p>
			<h1 style="color: #4CAF50;">R%.2f</h1>
			<p>The amount has been credited back to your wallet balance.</p>
			<p><a href="%s/cases">View your cases</a></p>
		</div>
	`, caseNumber, amount, s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send refund email to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Refund email sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendCaseReply(toEmail, caseNumber, authorName, preview string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New reply on Case %s", caseNumber))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Reply on %s</h2>
			<p><strong>%s</strong> replied to your support case:</p>
			<blockquote style="border-left: 3px solid #007BFF; padding-left: 10px; color: #555;">%s</blockquote>
			<p><a href="%s/cases">Open the case</a></p>
		</div>
	`, caseNumber, authorName, preview, s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send reply email to %s: %v\n", toEmail, err)
		return err
	}

	return nil
}
