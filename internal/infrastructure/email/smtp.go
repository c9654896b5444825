// Package email delivers requester notifications.
package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/synerjet/bendesk/internal/shared/config"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/services/markdown"
)

// Sender sends one plain-text message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends through an authenticated STARTTLS relay. The plain body
// is accompanied by a sanitized HTML alternative.
type SMTPSender struct {
	cfg      config.EmailConfig
	dialer   dialer
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewSMTPSender(cfg config.EmailConfig, log logger.Interface) *SMTPSender {
	return &SMTPSender{
		cfg:      cfg,
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		renderer: markdown.NewRenderer(),
		logger:   log.With("component", "email.smtp"),
	}
}

func (s *SMTPSender) Send(_ context.Context, to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("recipient is required")
	}

	m := gomail.NewMessage()
	if s.cfg.FromName != "" {
		m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	} else {
		m.SetHeader("From", s.cfg.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	html, err := s.renderer.ToHTMLSanitized(hardBreaks(body))
	if err != nil {
		s.logger.Warnw("failed to render html alternative", "error", err)
	} else {
		m.AddAlternative("text/html", html)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Infow("email sent", "to", to, "subject", subject)
	return nil
}

// hardBreaks keeps single newlines as line breaks in markdown.
func hardBreaks(body string) string {
	return strings.ReplaceAll(body, "\n", "  \n")
}

// LogSender only logs. Used when outbound mail is disabled.
type LogSender struct {
	logger logger.Interface
}

func NewLogSender(log logger.Interface) *LogSender {
	return &LogSender{logger: log.With("component", "email.log")}
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.logger.Infow("email delivery disabled, message dropped", "to", to, "subject", subject, "body_len", len(body))
	return nil
}

// NewSender picks the SMTP sender when email is enabled.
func NewSender(cfg config.EmailConfig, log logger.Interface) Sender {
	if cfg.Enabled {
		return NewSMTPSender(cfg, log)
	}
	return NewLogSender(log)
}
