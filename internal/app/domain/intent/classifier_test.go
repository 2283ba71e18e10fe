package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmind/tripmind/internal/app/domain/knowledge"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(knowledge.NewDefaultGazetteer())

	tests := []struct {
		name      string
		utterance string
		want      Intent
	}{
		{"greeting chinese", "你好", Greeting},
		{"greeting english", "Hello there", Greeting},
		{"greeting fullwidth", "ＨＥＬＬＯ", Greeting},
		{"farewell", "再见！", Farewell},
		{"farewell english", "bye", Farewell},
		{"thanks", "谢谢你的帮助", Thanks},
		{"city plus action", "我想去北京旅游", TravelPlan},
		{"action before city", "规划一下上海的行程", TravelPlan},
		{"duration plus travel word", "旅游几天比较合适", TravelPlan},
		{"recommendation", "有什么好玩的推荐吗", TravelPlan},
		{"first visit", "我第一次出远门", FirstVisit},
		{"repeat visit", "我已经去过很多地方了", RepeatVisit},
		{"city without action", "北京的天气怎么样", Default},
		{"unrelated", "帮我写一首诗", Default},
		{"greeting beats travel", "你好，我想去北京旅游", Greeting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.utterance))
		})
	}
}

func TestIsFirstTime(t *testing.T) {
	assert.True(t, IsFirstTime("我第一次去北京"))
	assert.True(t, IsFirstTime("我从未去过上海"))
	assert.False(t, IsFirstTime("我已经去过北京了"))
	assert.False(t, IsFirstTime("想再次去上海"))
	assert.True(t, IsFirstTime("我想去北京"), "no marker defaults to first visit")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello", Normalize("ＨｅｌｌＯ"))
	assert.Equal(t, "你好", Normalize("你好"))
}
