package inference

import (
	"strings"
)

func BuildEstimatePrompt(previousEstimates string) string {
	prompt := `
You are an expert nutritionist specializing in estimating the calorie
and macro content of meals from images.

Your task:
- Examine the attached meal photo and estimate its nutritional content.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Required JSON schema:
{
  "calorieEstimate": number,
  "macroContent": {
    "protein": number,
    "carbohydrates": number,
    "fat": number
  },
  "ingredients": "string listing the ingredients found in the meal"
}

All macro values are grams.
`

	if previousEstimates != "" {
		prompt += "\nConsider these previous calorie estimates for the user:\n" + previousEstimates + "\n"
	}

	return prompt
}

const chatSystemPrompt = `You are NutriAI, a friendly and knowledgeable nutrition and wellness assistant.
Your goal is to provide helpful, supportive, and evidence-based advice to users regarding their diet, food intake, healthy eating habits, and general wellness.
Be encouraging and practical. If a user asks for something outside of nutrition or wellness, politely steer the conversation back or state that you cannot help with that topic.
Keep your responses concise and easy to understand.`

// maxHistoryMessages caps the prompt at the last 3 exchanges.
const maxHistoryMessages = 6

// BuildChatPrompt renders the system instruction, the truncated
// history (oldest first) and the new message as a plain transcript
// ending on an open AI turn.
func BuildChatPrompt(message string, history []ChatMessage) string {
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	lines := []string{chatSystemPrompt, ""}
	for _, turn := range history {
		speaker := "AI"
		if turn.Role == "user" {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+turn.Text)
	}
	lines = append(lines, "User: "+message, "AI:")

	return strings.Join(lines, "\n")
}
