package sms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/twilio/twilio-go"
	twilioClient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
)

// ErrDisabled is returned by senders without credentials.
var ErrDisabled = errors.New("sms delivery disabled")

// TooManyRequestsError signals that the provider throttles us.
type TooManyRequestsError struct {
	Code int
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("sms provider rate limited the request (code %d)", e.Code)
}

// Sender delivers text messages to phone numbers.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

type messageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioSender sends SMS through the Twilio REST API.
type TwilioSender struct {
	api    messageAPI
	from   string
	logger *slog.Logger
}

// NewTwilioSender builds a sender from account credentials.
func NewTwilioSender(cfg config.TwilioConfig, logger *slog.Logger) (*TwilioSender, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{api: client.Api, from: cfg.FromNumber, logger: logger}, nil
}

// Send delivers body to the E.164 number to.
func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("sms recipient is empty")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		var restErr *twilioClient.TwilioRestError
		if errors.As(err, &restErr) && restErr.Status == http.StatusTooManyRequests {
			return TooManyRequestsError{Code: restErr.Code}
		}
		return fmt.Errorf("send sms: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		s.logger.Debug("sms sent", slog.String("sid", *resp.Sid))
	}
	return nil
}

// NopSender drops messages when SMS is not configured.
type NopSender struct{}

func (NopSender) Send(context.Context, string, string) error { return ErrDisabled }
