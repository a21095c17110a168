package inference

import (
	"strings"
)

// Kind labels a failure with a stable, actionable category. Handlers
// turn a Kind into a status code and user-facing text; the orchestrator
// itself never renders UI strings.
type Kind string

const (
	KindInvalidInput         Kind = "INVALID_INPUT"
	KindTransientUnavailable Kind = "TRANSIENT_UNAVAILABLE"
	KindContentBlocked       Kind = "CONTENT_BLOCKED"
	KindAuthFailure          Kind = "AUTH_FAILURE"
	KindMalformedModelOutput Kind = "MALFORMED_MODEL_OUTPUT"
	KindUnknown              Kind = "UNKNOWN_INFERENCE_ERROR"
)

// Error is a classified inference failure. Message preserves the
// original failure text for diagnostics.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// classificationRules map case-insensitive message substrings to kinds.
// Order matters: the first rule with a matching keyword wins, so the
// overload group outranks safety, which outranks auth, which outranks
// the malformed-output markers.
var classificationRules = []struct {
	keywords []string
	kind     Kind
}{
	{
		keywords: []string{
			"overload", "rate limit", "capacity", "try again",
			"temporarily unavailable", "service unavailable",
			"resource exhausted", "too busy", "please retry",
			"server is busy", "internal error", "server error",
		},
		kind: KindTransientUnavailable,
	},
	{
		keywords: []string{"safety", "blocked"},
		kind:     KindContentBlocked,
	},
	{
		keywords: []string{"api key", "permission denied", "authentication"},
		kind:     KindAuthFailure,
	},
	{
		keywords: []string{"expected output structure", "incomplete output"},
		kind:     KindMalformedModelOutput,
	},
}

// Classify maps any gateway or validation failure onto the taxonomy.
// Already-classified errors pass through unchanged.
func Classify(err error) *Error {
	if infErr, ok := err.(*Error); ok {
		return infErr
	}

	message := err.Error()
	lower := strings.ToLower(message)

	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return newError(rule.kind, message)
			}
		}
	}

	return newError(KindUnknown, message)
}

// UserMessage is the user-facing sentence for a kind. Keeping the
// mapping here means every handler reports the same wording.
func UserMessage(kind Kind) string {
	switch kind {
	case KindInvalidInput:
		return "Invalid file type. Please upload an image."
	case KindTransientUnavailable:
		return "The AI service is currently experiencing high demand or is temporarily unavailable. Please try again in a few moments."
	case KindContentBlocked:
		return "The request was blocked due to safety settings. Please try a different image or rephrase your message."
	case KindAuthFailure:
		return "There was an issue authenticating with the AI service. Please check your setup."
	case KindMalformedModelOutput:
		return "The AI model returned an unexpected response. This can sometimes happen due to high load or content filtering. Please try again."
	default:
		return "An unknown error occurred. Please try again."
	}
}
