package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type GeminiClient struct {
	apiKey string
	model  string
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  os.Getenv("GEMINI_MODEL"),
	}
}

// GenerateJSON sends the prompt (and an optional image part) to Gemini
// and returns the raw candidate text. The response must exist, but its
// JSON validity is the caller's concern.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, image *ImageBlob) (string, error) {
	raw, err := g.generate(ctx, prompt, image)
	if err != nil {
		return "", err
	}

	if err := checkBlocked(raw); err != nil {
		return "", err
	}

	text, ok := extractCandidateText(raw)
	if !ok {
		return "", errors.New("gemini returned an incomplete output")
	}
	return text, nil
}

// GenerateText sends a free-text prompt to Gemini. An OK response that
// carries no candidate text is not an error here: the chat flow
// degrades gracefully on a missing reply.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	raw, err := g.generate(ctx, prompt, nil)
	if err != nil {
		return "", err
	}

	if err := checkBlocked(raw); err != nil {
		return "", err
	}

	text, _ := extractCandidateText(raw)
	return text, nil
}

func (g *GeminiClient) generate(ctx context.Context, prompt string, image *ImageBlob) ([]byte, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return nil, errors.New("missing GEMINI_MODEL")
	}
	if prompt == "" {
		return nil, errors.New("empty prompt")
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model,
		g.apiKey,
	)

	parts := []map[string]any{
		{"text": prompt},
	}
	if image != nil {
		parts = append(parts, map[string]any{
			"inline_data": map[string]string{
				"mime_type": image.MIMEType,
				"data":      base64.StdEncoding.EncodeToString(image.Data),
			},
		})
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api error: %s", string(raw))
	}

	return raw, nil
}

// checkBlocked reports a safety rejection hidden inside an otherwise
// OK response: either the prompt was blocked outright or the single
// candidate finished on SAFETY.
func checkBlocked(raw []byte) error {
	var result struct {
		PromptFeedback struct {
			BlockReason string `json:"blockReason"`
		} `json:"promptFeedback"`
		Candidates []struct {
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}

	if result.PromptFeedback.BlockReason != "" {
		return fmt.Errorf("gemini request blocked by safety settings: %s", result.PromptFeedback.BlockReason)
	}
	if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == "SAFETY" {
		return errors.New("gemini response blocked by safety settings")
	}
	return nil
}

// extractCandidateText pulls the first candidate's text out of a raw
// Gemini response body.
func extractCandidateText(raw []byte) (string, bool) {
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", false
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", false
	}

	return result.Candidates[0].Content.Parts[0].Text, true
}
