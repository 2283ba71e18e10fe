package chatbackend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/tripmind/tripmind/internal/app/models"
)

func TestGeminiContentsMapsRoles(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleUser, Content: "你好"},
		{Role: models.RoleAssistant, Content: "您好！我是您的旅行顾问。"},
	}

	contents := geminiContents("我想去北京旅游5天", history)
	require.Len(t, contents, 3)

	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	assert.Equal(t, string(genai.RoleUser), contents[2].Role)

	require.NotEmpty(t, contents[1].Parts)
	assert.Equal(t, "您好！我是您的旅行顾问。", contents[1].Parts[0].Text)
	require.NotEmpty(t, contents[2].Parts)
	assert.Equal(t, "我想去北京旅游5天", contents[2].Parts[0].Text)
}

func TestGeminiContentsWithoutHistory(t *testing.T) {
	contents := geminiContents("上海有什么好玩的？", nil)
	require.Len(t, contents, 1)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
}

func TestNewGeminiBackendWithoutKey(t *testing.T) {
	b, err := NewGeminiBackend(context.Background(), "", "", zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, b)
}
