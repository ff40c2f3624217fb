package services

import (
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"github.com/hafiz-aliAwj/portfolio/internal/config"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
)

var headerSafe = strings.NewReplacer("\r", "", "\n", "")

type EmailService struct {
	cfg    config.SMTPConfig
	notify string
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailService builds a sender for contact notifications addressed to
// notify. With no SMTP settings every send is a no-op.
func NewEmailService(cfg config.SMTPConfig, notify string) *EmailService {
	return &EmailService{cfg: cfg, notify: notify, send: smtp.SendMail}
}

func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != "" && s.notify != ""
}

func (s *EmailService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	return s.send(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

func (s *EmailService) SendContactNotification(msg *models.ContactMessage) error {
	subject := fmt.Sprintf("New %s from %s", msg.ContactType, headerSafe.Replace(msg.Name))
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>New contact submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Type:</strong> %s</p>
			<p><strong>Budget:</strong> %s</p>
			<p><strong>Timeline:</strong> %s</p>
			<p><strong>Project type:</strong> %s</p>
			<p>%s</p>
		</body>
		</html>
	`,
		html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.ContactType),
		html.EscapeString(msg.Budget), html.EscapeString(msg.Timeline), html.EscapeString(msg.ProjectType),
		html.EscapeString(msg.Message),
	)

	return s.Send(s.notify, subject, body)
}
