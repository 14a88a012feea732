package twilio

import (
	"context"
	"fmt"
	"strings"

	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Client wraps Twilio messaging operations required by the bot.
type Client struct {
	client  *twilio.RestClient
	fromSMS string
	logger  *zap.Logger
}

// New creates a Twilio client bound to the configured outgoing SMS number.
func New(accountSID, authToken, fromSMS string, logger *zap.Logger) *Client {
	return &Client{
		client:  twilio.NewRestClientWithParams(twilio.ClientParams{Username: accountSID, Password: authToken}),
		fromSMS: fromSMS,
		logger:  logger,
	}
}

// Send delivers an SMS via Twilio's API.
func (c *Client) Send(ctx context.Context, to, body string) error {
	if c.client == nil {
		return fmt.Errorf("twilio client not initialised")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sender := normalizeNumber(c.fromSMS)
	if sender == "" {
		return fmt.Errorf("twilio outgoing number is not configured")
	}

	recipient := normalizeNumber(to)
	if recipient == "" {
		return fmt.Errorf("recipient number missing or invalid")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom(sender)
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send message error: %w", err)
	}

	if resp.Sid != nil {
		c.logger.Debug("twilio message sent", zap.String("to", recipient), zap.String("sid", *resp.Sid))
	}
	return nil
}

// LogSender writes replies to the log instead of sending them. It is used
// when no Twilio credentials are configured.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender returns a sender that only logs.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the reply at info level.
func (s *LogSender) Send(_ context.Context, to, body string) error {
	s.logger.Info("sms reply", zap.String("to", to), zap.String("body", body))
	return nil
}

func normalizeNumber(number string) string {
	trimmed := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "+") {
		return trimmed
	}
	return "+" + trimmed
}
