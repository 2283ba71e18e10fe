package chatbackend

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/tripmind/tripmind/internal/app/models"
)

// GeminiBackend is the alternative completion provider, used when a
// Gemini key is configured and no DeepSeek key is. Same contract as
// DeepSeekBackend: prose out, errors wrap models.ErrBackendUnavailable.
type GeminiBackend struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiBackend builds the backend, or returns nil when no API key
// is configured.
func NewGeminiBackend(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiBackend{client: client, model: model, logger: logger}, nil
}

// Name implements Backend.
func (b *GeminiBackend) Name() string {
	return "gemini"
}

// geminiContents maps the conversation onto Gemini's content list: the
// prior turns with their roles, then the new user message last.
func geminiContents(userMessage string, history []models.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))
}

// Complete implements Backend.
func (b *GeminiBackend) Complete(ctx context.Context, userMessage string, history []models.Message) (string, error) {
	contents := geminiContents(userMessage, history)

	resp, err := b.client.Models.GenerateContent(ctx, b.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		MaxOutputTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty gemini response", models.ErrBackendUnavailable)
	}
	return text, nil
}
