package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"hotelops-be/internal/config"
	"hotelops-be/internal/logger"

	"go.uber.org/zap"
)

// Message is a plain-text email with an optional HTML alternative.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer dispatches notification emails.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type smtpMailer struct {
	host     string
	port     string
	username string
	password string
	timeout  time.Duration
}

// NewSMTPMailer builds a Mailer backed by a plain SMTP relay.
func NewSMTPMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		logger.L().Warn("SMTP host is empty, notification emails will fail")
	}

	return &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		timeout:  15 * time.Second,
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	log := logger.FromCtx(ctx).With(
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.username, []string{msg.To}, m.build(msg))
	}()

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			log.Error("failed to send email", zap.Error(err))
			return fmt.Errorf("send email: %w", err)
		}
		log.Info("email sent")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		log.Error("email send timed out")
		return fmt.Errorf("send email: timeout after %s", m.timeout)
	}
}

// build assembles a multipart/alternative body when an HTML variant exists.
func (m *smtpMailer) build(msg Message) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", m.username)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTML == "" {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(msg.Text)
		return []byte(b.String())
	}

	const boundary = "hotelops-alt"
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return []byte(b.String())
}
