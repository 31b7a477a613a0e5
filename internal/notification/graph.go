package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "quickdesk-backend/internal/errors"
	"quickdesk-backend/internal/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const graphScope = "https://graph.microsoft.com/.default"

// GraphConfig holds the mail provider credentials. The four secrets are
// required at send time.
type GraphConfig struct {
	SenderAddress string
	ClientID      string
	TenantID      string
	ClientSecret  string
	GraphBaseURL  string
	LoginBaseURL  string
	AppName       string
}

func (c GraphConfig) validate() error {
	if c.SenderAddress == "" || c.ClientID == "" || c.TenantID == "" || c.ClientSecret == "" {
		return apperrors.ErrMailConfigMissing
	}
	return nil
}

// GraphSender sends mail through the provider's HTTP API, authenticating with
// an OAuth2 client-credentials token fetched per message.
type GraphSender struct {
	cfg        GraphConfig
	httpClient *http.Client
}

// NewGraphSender creates a sender with the given HTTP timeout
func NewGraphSender(cfg GraphConfig, timeout time.Duration) *GraphSender {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	cfg.GraphBaseURL = strings.TrimRight(cfg.GraphBaseURL, "/")
	cfg.LoginBaseURL = strings.TrimRight(cfg.LoginBaseURL, "/")
	return &GraphSender{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type graphEmailAddress struct {
	Address string `json:"address"`
}

type graphRecipient struct {
	EmailAddress graphEmailAddress `json:"emailAddress"`
}

type graphItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphMessage struct {
	Subject      string           `json:"subject"`
	Body         graphItemBody    `json:"body"`
	ToRecipients []graphRecipient `json:"toRecipients"`
}

type graphSendMailRequest struct {
	Message         graphMessage `json:"message"`
	SaveToSentItems bool         `json:"saveToSentItems"`
}

// SendOTP obtains a token and posts the rendered message to the send-mail endpoint
func (s *GraphSender) SendOTP(ctx context.Context, msg OTPMessage) error {
	if err := s.cfg.validate(); err != nil {
		return err
	}

	subject, htmlBody, err := renderOTPEmail(s.cfg.AppName, msg)
	if err != nil {
		return err
	}

	token, err := s.accessToken(ctx)
	if err != nil {
		return err
	}

	payload := graphSendMailRequest{
		Message: graphMessage{
			Subject:      subject,
			Body:         graphItemBody{ContentType: "HTML", Content: htmlBody},
			ToRecipients: []graphRecipient{{EmailAddress: graphEmailAddress{Address: msg.To}}},
		},
		SaveToSentItems: false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode send-mail request: %w", err)
	}

	sendURL := fmt.Sprintf("%s/users/%s/sendMail", s.cfg.GraphBaseURL, url.PathEscape(s.cfg.SenderAddress))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create send-mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.NewDeliveryError("failed to send email", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.NewDeliveryError("failed to send email",
			fmt.Errorf("send-mail returned status %d: %s", resp.StatusCode, string(respBody)))
	}

	logger.WithContext(ctx).WithField("purpose", msg.Purpose).Debug("otp email accepted by mail provider")
	return nil
}

func (s *GraphSender) tokenURL() string {
	return fmt.Sprintf("%s/%s/oauth2/v2.0/token", s.cfg.LoginBaseURL, url.PathEscape(s.cfg.TenantID))
}

// accessToken performs the client-credentials grant
func (s *GraphSender) accessToken(ctx context.Context) (string, error) {
	cc := clientcredentials.Config{
		ClientID:     s.cfg.ClientID,
		ClientSecret: s.cfg.ClientSecret,
		TokenURL:     s.tokenURL(),
		Scopes:       []string{graphScope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	tok, err := cc.Token(context.WithValue(ctx, oauth2.HTTPClient, s.httpClient))
	if err != nil {
		return "", apperrors.NewDeliveryError("failed to obtain mail provider token", err)
	}
	return tok.AccessToken, nil
}
