package sms

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
)

// Module exposes the SMS sender to the fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	if !p.Config.Twilio.Enabled() {
		p.Logger.Info("sms notifications disabled")
		return NopSender{}, nil
	}
	return NewTwilioSender(p.Config.Twilio, p.Logger)
}
