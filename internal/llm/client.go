package llm

import (
	"context"
)

// ImageBlob is a self-describing image payload: raw bytes plus the
// MIME type the caller declared for them.
type ImageBlob struct {
	MIMEType string
	Data     []byte
}

type Client interface {
	// GenerateJSON asks the model for a strict-JSON answer. The raw
	// model text is returned as-is; callers validate and parse it.
	GenerateJSON(ctx context.Context, prompt string, image *ImageBlob) (string, error)

	// GenerateText asks the model for a free-text answer. A successful
	// call that produced no text returns ("", nil).
	GenerateText(ctx context.Context, prompt string) (string, error)
}
