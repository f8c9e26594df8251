package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
)

// SMTPMailer delivers one-time codes over plain SMTP. Auth is skipped when no
// credentials are configured (local dev against a mail catcher).
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendOTP(_ context.Context, email, code string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Your verification code\r\n\r\n"+
			"Your one-time code is %s. It expires in 10 minutes.\r\n",
		m.cfg.From, email, code,
	)

	addr := m.cfg.Host + ":" + m.cfg.Port

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email}, []byte(msg)); err != nil {
		return errs.Wrap(err, "failed to send otp email")
	}
	return nil
}
