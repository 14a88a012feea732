package bot

import (
	"context"
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pathakanu/foreverly/internal/twilio"
	"go.uber.org/zap"
)

// twimlResponse is an empty TwiML document; replies go out through the
// Sender rather than in the webhook response.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
}

// Webhook returns the echo handler for incoming Twilio messages. A nil
// validator accepts unsigned requests.
func (b *Bot) Webhook(validator *twilio.Validator) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		if err := r.ParseForm(); err != nil {
			b.logger.Warn("webhook: parse error", zap.Error(err))
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
		}

		if !validator.Valid(r.PostForm, r.Header.Get(twilio.SignatureHeader)) {
			b.logger.Warn("webhook: invalid signature", zap.String("remote", c.RealIP()))
			return echo.NewHTTPError(http.StatusForbidden, "invalid signature")
		}

		from := r.PostForm.Get("From")
		if from == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing From")
		}

		// Twilio hanging up must not cut a handling run short.
		b.Handle(context.WithoutCancel(r.Context()), from, r.PostForm.Get("Body"))

		return c.XML(http.StatusOK, twimlResponse{})
	}
}
