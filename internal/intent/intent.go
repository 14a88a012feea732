// Package intent decides what an inbound text message is asking for.
package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Intent represents the high-level action inferred from a user message.
type Intent string

const (
	// Unknown indicates the message matched no rule.
	Unknown Intent = "unknown"
	// Reminder instructs the bot to capture a new reminder.
	Reminder Intent = "reminder"
	// Lookup asks for the most recent reminders.
	Lookup Intent = "lookup"
	// Help asks for usage guidance.
	Help Intent = "help"
	// ResetPassword asks for a fresh account password.
	ResetPassword Intent = "reset_password"
)

// Classify returns the first matching intent in priority order
// Reminder, Lookup, Help, ResetPassword. The description is only set for
// Reminder.
func Classify(message string) (Intent, string) {
	if description, ok := IsReminderIntent(message); ok {
		return Reminder, description
	}
	if IsLookupIntent(message) {
		return Lookup, ""
	}
	if IsHelpIntent(message) {
		return Help, ""
	}
	if IsResetPasswordIntent(message) {
		return ResetPassword, ""
	}
	return Unknown, ""
}

// IsReminderIntent reports whether message starts with "remind me" and
// returns the reminder text with any leading "to" or "that" removed.
func IsReminderIntent(message string) (string, bool) {
	rest, ok := removeIfStartsWith(normalize(message), "remind me")
	if !ok {
		return "", false
	}
	if stripped, ok := removeIfStartsWith(rest, "to", "that"); ok {
		rest = stripped
	}
	return capitalizeFirstLetter(rest), true
}

// IsLookupIntent reports whether message asks to see existing reminders.
func IsLookupIntent(message string) bool {
	_, ok := removeIfStartsWith(normalize(message), "my reminder", "reminder", "what are my reminder")
	return ok
}

// IsHelpIntent reports whether message asks how to use the assistant.
func IsHelpIntent(message string) bool {
	_, ok := removeIfStartsWith(normalize(message), "how", "how to", "how do")
	return ok
}

// IsResetPasswordIntent reports whether message asks for a new password.
func IsResetPasswordIntent(message string) bool {
	_, ok := removeIfStartsWith(normalize(message), "reset password")
	return ok
}

func normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// removeIfStartsWith checks prefixes in order and returns what follows the
// first match. The character right after the prefix is assumed to be a
// separator and is skipped, so "remind mefoo" yields "oo".
func removeIfStartsWith(raw string, prefixes ...string) (string, bool) {
	for _, prefix := range prefixes {
		if !strings.HasPrefix(raw, prefix) {
			continue
		}
		if len(raw) == len(prefix) {
			return "", true
		}
		rest := raw[len(prefix):]
		_, size := utf8.DecodeRuneInString(rest)
		return rest[size:], true
	}
	return raw, false
}

func capitalizeFirstLetter(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
