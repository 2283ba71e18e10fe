package chatbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/tripmind/tripmind/internal/app/models"
)

// systemPrompt fixes the assistant persona and the response shape the
// downstream extractor understands: city overview, recommended spots by
// visit recency, resource counts, seasonal advice, cuisine, culture.
const systemPrompt = `你是一个专业的旅游顾问机器人，专注于为用户提供个性化的旅行建议和行程规划。
当用户询问旅行相关问题时，请尽可能提供详细有用的信息，包括：
- 城市特色和基本介绍
- 景点推荐（区分首次访问和再次访问）
- 旅游资源数量（博物馆、公园、历史古迹等）
- 季节性旅游建议
- 当地美食和特产
- 值得注意的文化差异

如果用户没有询问旅行相关问题，请作为一个友好的助手正常回答，但适当引导话题到旅行上。
如果用户说"你好"之类的问候语，请以友好方式问候并介绍自己是旅行顾问。
对于没有明确目的地的旅行询问，请推荐几个热门目的地并询问用户偏好。`

// Backend is an external chat-completion provider. Implementations
// return the assistant's prose only; itinerary structure is recovered
// by the extractor afterwards. Any failure is reported as an error
// wrapping models.ErrBackendUnavailable so callers can fall back.
type Backend interface {
	// Name labels the provider in logs. Responses carry
	// models.SourceExternal regardless of the provider.
	Name() string

	// Complete produces the assistant reply for userMessage given the
	// prior conversation.
	Complete(ctx context.Context, userMessage string, history []models.Message) (string, error)
}

// DeepSeekConfig configures the DeepSeek-compatible HTTP backend.
type DeepSeekConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DeepSeekBackend talks to a DeepSeek-compatible chat-completion API.
// Identical in-flight prompts are collapsed into one upstream call and
// completed replies are cached briefly.
type DeepSeekBackend struct {
	cfg    DeepSeekConfig
	client *http.Client
	cache  *gocache.Cache
	group  singleflight.Group
	logger *zap.Logger
}

const (
	completionCacheTTL   = 5 * time.Minute
	completionCacheSweep = 10 * time.Minute
)

// NewDeepSeekBackend builds the backend. Returns nil when no API key is
// configured; callers treat a nil backend as "simulator only".
func NewDeepSeekBackend(cfg DeepSeekConfig, logger *zap.Logger) *DeepSeekBackend {
	if cfg.APIKey == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &DeepSeekBackend{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  gocache.New(completionCacheTTL, completionCacheSweep),
		logger: logger,
	}
}

// Name implements Backend.
func (b *DeepSeekBackend) Name() string {
	return "deepseek"
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete implements Backend.
func (b *DeepSeekBackend) Complete(ctx context.Context, userMessage string, history []models.Message) (string, error) {
	if cached, ok := b.cache.Get(userMessage); ok {
		b.logger.Debug("completion served from cache")
		return cached.(string), nil
	}

	v, err, shared := b.group.Do(userMessage, func() (any, error) {
		reply, err := b.complete(ctx, userMessage, history)
		if err != nil {
			return "", err
		}
		b.cache.Set(userMessage, reply, gocache.DefaultExpiration)
		return reply, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		b.logger.Debug("completion shared with concurrent identical request")
	}
	return v.(string), nil
}

func (b *DeepSeekBackend) complete(ctx context.Context, userMessage string, history []models.Message) (string, error) {
	msgs := make([]chatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, chatCompletionMessage{Role: "system", Content: systemPrompt})
	for _, m := range history {
		msgs = append(msgs, chatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}
	msgs = append(msgs, chatCompletionMessage{Role: "user", Content: userMessage})

	payload, err := json.Marshal(chatCompletionRequest{
		Model:       b.cfg.Model,
		Messages:    msgs,
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	url := b.cfg.BaseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.cfg.APIKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		b.logger.Warn("chat completion API returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", fmt.Errorf("%w: status %d", models.ErrBackendUnavailable, resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", models.ErrBackendUnavailable, err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: response missing message content", models.ErrBackendUnavailable)
	}

	return completion.Choices[0].Message.Content, nil
}
