// Package notify delivers notification emails over SMTP. An unconfigured
// SMTP host turns the sender into a no-op, so in-app notifications keep
// working without a mail relay.
package notify

import (
	"fmt"
	"net/smtp"

	"gamecenter-backend/internal/config"
	"gamecenter-backend/internal/logger"
)

// SMTPSender sends plain-text emails through a configured relay
type SMTPSender struct {
	addr string
	from string
	log  *logger.Logger
}

// NewSMTPSender creates a sender from the SMTP configuration
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	addr := ""
	if cfg.SMTPHost != "" {
		addr = fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort)
	}
	return &SMTPSender{
		addr: addr,
		from: cfg.SMTPFrom,
		log:  logger.New().WithField("component", "notify"),
	}
}

// Send delivers a plain-text email. Returns nil without sending when no
// relay is configured.
func (s *SMTPSender) Send(to, subject, body string) error {
	if s.addr == "" {
		s.log.WithField("to", to).Debug("email channel disabled, skipping send")
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.from, to, subject, body)
	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
