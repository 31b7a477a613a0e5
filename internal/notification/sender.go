// Package notification delivers one-time codes to users by email.
package notification

import (
	"context"
	"time"

	"quickdesk-backend/internal/config"
)

//go:generate mockgen -source=sender.go -destination=../mocks/notification_mocks.go -package=mocks

// Purpose selects the wording of an OTP email
type Purpose string

const (
	PurposeSignup        Purpose = "signup"
	PurposePasswordReset Purpose = "password_reset"
)

// OTPMessage is a one-time code addressed to a single recipient
type OTPMessage struct {
	To        string
	Code      string
	Purpose   Purpose
	ExpiresIn time.Duration
}

// Sender delivers OTP emails. Implementations do not retry.
type Sender interface {
	SendOTP(ctx context.Context, msg OTPMessage) error
}

// NewSender builds the transport selected by MAIL_PROVIDER
func NewSender(cfg *config.Config) Sender {
	timeout := time.Duration(cfg.MailTimeoutSec) * time.Second
	if cfg.MailProvider == "smtp" {
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			AppName:  cfg.AppName,
		})
	}
	return NewGraphSender(GraphConfig{
		SenderAddress: cfg.MailSender,
		ClientID:      cfg.MSClientID,
		TenantID:      cfg.MSTenantID,
		ClientSecret:  cfg.MSClientSecret,
		GraphBaseURL:  cfg.MSGraphBaseURL,
		LoginBaseURL:  cfg.MSLoginBaseURL,
		AppName:       cfg.AppName,
	}, timeout)
}
