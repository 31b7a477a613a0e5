package notification

import (
	"context"

	apperrors "quickdesk-backend/internal/errors"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds SMTP settings for self-hosted deployments
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	AppName  string
}

func (c SMTPConfig) validate() error {
	if c.Host == "" || c.Port == 0 || c.From == "" {
		return apperrors.ErrSMTPConfigMissing
	}
	return nil
}

type smtpDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends OTP emails over SMTP
type SMTPSender struct {
	cfg    SMTPConfig
	dialer smtpDialer
}

// NewSMTPSender creates an SMTP sender
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendOTP renders and sends msg in a single SMTP session
func (s *SMTPSender) SendOTP(ctx context.Context, msg OTPMessage) error {
	if err := s.cfg.validate(); err != nil {
		return err
	}

	subject, htmlBody, err := renderOTPEmail(s.cfg.AppName, msg)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return apperrors.NewDeliveryError("failed to send email", err)
	}
	return nil
}
