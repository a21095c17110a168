package inference

import (
	"context"
	"strings"
)

// chatFallback stands in for a missing model reply. The advice flow
// prefers degrading gracefully over surfacing a hard error.
const chatFallback = "I'm sorry, I couldn't generate a response at this moment. This might be due to a temporary issue or content filtering."

// Converse runs one turn of the nutrition advice conversation.
func (s *Service) Converse(
	ctx context.Context,
	message string,
	history []ChatMessage,
) (string, error) {

	if strings.TrimSpace(message) == "" {
		return "", newError(KindInvalidInput, "message cannot be empty")
	}

	prompt := BuildChatPrompt(message, history)

	reply, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", Classify(err)
	}

	if reply == "" {
		return chatFallback, nil
	}

	return reply, nil
}
