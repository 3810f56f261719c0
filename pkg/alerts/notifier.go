package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/earshot/earshot/pkg/errorsx"
	"github.com/earshot/earshot/pkg/logging"
)

// Notifier delivers a triggered alert to an external channel.
type Notifier interface {
	Notify(ctx context.Context, rec Record) error
}

// NopNotifier drops notifications. Used when no channel is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Record) error { return nil }

// TwilioConfig carries SMS delivery settings.
type TwilioConfig struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	From       string `mapstructure:"from_number"`
	To         string `mapstructure:"to_number"`
}

func (c TwilioConfig) Enabled() bool {
	return strings.TrimSpace(c.AccountSID) != "" &&
		strings.TrimSpace(c.AuthToken) != "" &&
		strings.TrimSpace(c.From) != "" &&
		strings.TrimSpace(c.To) != ""
}

type messageCreator interface {
	CreateMessage(params *api.CreateMessageParams) (*api.ApiV2010Message, error)
}

// TwilioNotifier sends one SMS per triggered alert.
type TwilioNotifier struct {
	cfg    TwilioConfig
	client messageCreator
	logger *slog.Logger
}

func NewTwilioNotifier(cfg TwilioConfig) *TwilioNotifier {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioNotifier{
		cfg:    cfg,
		client: rest.Api,
		logger: logging.NewComponentLogger(slog.Default(), "twilio_notifier"),
	}
}

func (n *TwilioNotifier) Notify(ctx context.Context, rec Record) error {
	_ = ctx
	body := fmt.Sprintf("[%s] %s detected (confidence %.2f)",
		strings.ToUpper(string(rec.Priority)), DisplayName(rec.SoundType), rec.Confidence)
	if rec.Location != "" {
		body += " at " + rec.Location
	}
	params := &api.CreateMessageParams{}
	params.SetTo(n.cfg.To)
	params.SetFrom(n.cfg.From)
	params.SetBody(body)
	if _, err := n.client.CreateMessage(params); err != nil {
		return errorsx.Wrap(err, errorsx.ReasonNotify)
	}
	n.logger.Debug("alert_sms_sent", "alert_id", rec.ID, "to", n.cfg.To)
	return nil
}

var _ Notifier = (*TwilioNotifier)(nil)
