package twilio

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNormalizeNumber(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"+61 412 345 678": "+61412345678",
		"61412345678":     "+61412345678",
		"  +15550001111 ": "+15550001111",
		"":                "",
		"   ":             "",
	}
	for input, want := range cases {
		assert.Equal(t, want, normalizeNumber(input), input)
	}
}

func TestSendRequiresOutgoingNumber(t *testing.T) {
	t.Parallel()

	c := New("AC123", "token", "", zap.NewNop())
	err := c.Send(context.Background(), "+61412345678", "hi")
	assert.ErrorContains(t, err, "outgoing number")
}

func TestSendHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New("AC123", "token", "+61400000000", zap.NewNop())
	assert.ErrorIs(t, c.Send(ctx, "+61412345678", "hi"), context.Canceled)
}

func TestLogSender(t *testing.T) {
	t.Parallel()
	assert.NoError(t, NewLogSender(zap.NewNop()).Send(context.Background(), "1", "body"))
}

func TestValidator(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewValidator("token", ""))
	var disabled *Validator
	assert.True(t, disabled.Valid(url.Values{}, ""))

	v := NewValidator("token", "https://example.com/twilio/webhook")
	form := url.Values{"From": {"+61412345678"}, "Body": {"hi"}}
	assert.False(t, v.Valid(form, ""))
	assert.False(t, v.Valid(form, "bogus"))
}

func TestDecodeForm(t *testing.T) {
	t.Parallel()

	got := DecodeForm(url.Values{"From": {"a", "b"}, "Empty": {}})
	assert.Equal(t, map[string]string{"From": "a"}, got)
}
