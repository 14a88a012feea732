package twilio

import (
	"net/url"

	"github.com/twilio/twilio-go/client"
)

// SignatureHeader carries Twilio's HMAC signature on webhook requests.
const SignatureHeader = "X-Twilio-Signature"

// Validator checks that webhook requests were signed by Twilio.
type Validator struct {
	validator  client.RequestValidator
	webhookURL string
}

// NewValidator returns nil when webhookURL is empty, which disables checks.
func NewValidator(authToken, webhookURL string) *Validator {
	if webhookURL == "" || authToken == "" {
		return nil
	}
	return &Validator{
		validator:  client.NewRequestValidator(authToken),
		webhookURL: webhookURL,
	}
}

// Valid reports whether signature matches the posted form.
func (v *Validator) Valid(form url.Values, signature string) bool {
	if v == nil {
		return true
	}
	if signature == "" {
		return false
	}
	return v.validator.Validate(v.webhookURL, DecodeForm(form), signature)
}

// DecodeForm extracts the POST form data into a map for convenience.
func DecodeForm(values url.Values) map[string]string {
	result := make(map[string]string, len(values))
	for key, value := range values {
		if len(value) > 0 {
			result[key] = value[0]
		}
	}
	return result
}
