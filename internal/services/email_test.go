package services

import (
	"net/smtp"
	"testing"

	"github.com/hafiz-aliAwj/portfolio/internal/config"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smtpConfig() config.SMTPConfig {
	return config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "user@example.com",
		Password: "password",
		From:     "noreply@example.com",
	}
}

func TestEmailService_IsConfigured_True(t *testing.T) {
	svc := NewEmailService(smtpConfig(), "owner@example.com")

	assert.True(t, svc.IsConfigured())
}

func TestEmailService_IsConfigured_MissingHost(t *testing.T) {
	cfg := smtpConfig()
	cfg.Host = ""
	svc := NewEmailService(cfg, "owner@example.com")

	assert.False(t, svc.IsConfigured())
}

func TestEmailService_IsConfigured_MissingPassword(t *testing.T) {
	cfg := smtpConfig()
	cfg.Password = ""
	svc := NewEmailService(cfg, "owner@example.com")

	assert.False(t, svc.IsConfigured())
}

func TestEmailService_IsConfigured_MissingRecipient(t *testing.T) {
	svc := NewEmailService(smtpConfig(), "")

	assert.False(t, svc.IsConfigured())
}

func TestEmailService_Send_NotConfigured(t *testing.T) {
	svc := NewEmailService(config.SMTPConfig{}, "")
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	}

	err := svc.Send("to@example.com", "Subject", "Body")

	assert.NoError(t, err)
}

func TestEmailService_SendContactNotification(t *testing.T) {
	svc := NewEmailService(smtpConfig(), "owner@example.com")

	var gotAddr string
	var gotTo []string
	var gotMsg string
	svc.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr = addr
		gotTo = to
		gotMsg = string(msg)
		return nil
	}

	err := svc.SendContactNotification(&models.ContactMessage{
		Name:        "Jane <script>",
		Email:       "jane@example.com",
		Message:     "Hello",
		ContactType: models.ContactTypeQuote,
	})

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: New quote from Jane <script>")
	assert.Contains(t, gotMsg, "Jane &lt;script&gt;")
	assert.NotContains(t, gotMsg, "<p><strong>Name:</strong> Jane <script>")
}
