package tripparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/domain/knowledge"
)

func newTestExtractor() *Extractor {
	return NewExtractor(knowledge.NewDefaultGazetteer(), zap.NewNop())
}

// padding pushes a reply past the minimum length without adding any
// parsable structure.
const padding = "以下内容仅供参考，出行前请再次确认各景点的开放时间、门票价格和交通方式，旅途中注意安全，保管好随身物品，祝您旅途愉快。行程安排可能受到天气、节假日以及临时闭馆等因素影响，建议提前关注官方公告并预留充足的机动时间，合理安排体力，保持愉快心情。"

func TestExtractStructuredItinerary(t *testing.T) {
	reply := strings.Join([]string{
		"为您规划5天的北京行程。" + padding,
		"第1天",
		"- 上午：天安门广场",
		"- 下午：故宫博物院",
		"第2天",
		"- 全天：八达岭长城",
	}, "\n")

	trip := newTestExtractor().Extract(reply, "我想去北京旅游5天")
	require.NotNil(t, trip)

	assert.Equal(t, "北京", trip.Destination)
	assert.Equal(t, "5天4晚", trip.Duration, "duration comes from the reply's day-count phrase, not the parsed blocks")

	require.Len(t, trip.Days, 2)
	assert.Equal(t, "北京第1天", trip.Days[0].Title)
	require.Len(t, trip.Days[0].Activities, 2)
	assert.Equal(t, "上午", trip.Days[0].Activities[0].Time)
	assert.Equal(t, "天安门广场", trip.Days[0].Activities[0].Title)
	assert.Equal(t, "北京市", trip.Days[0].Activities[0].Location)

	assert.Equal(t, "北京第2天", trip.Days[1].Title)
	require.Len(t, trip.Days[1].Activities, 1)
	assert.Equal(t, "八达岭长城", trip.Days[1].Activities[0].Title)

	require.NotEmpty(t, trip.Notes)
	assert.Equal(t, "此行程基于您询问\"我想去北京旅游5天\"生成", trip.Notes[0])
	assert.NoError(t, trip.Validate())
}

func TestExtractNoDestination(t *testing.T) {
	reply := "这是一段不包含任何已知城市的回复。" + padding
	assert.Nil(t, newTestExtractor().Extract(reply, "随便聊聊"))
}

func TestExtractTooShort(t *testing.T) {
	assert.Nil(t, newTestExtractor().Extract("北京很值得一去！", "我想去北京"))
}

func TestExtractPlaceholderDaysWithoutMarkers(t *testing.T) {
	reply := "上海是一座很适合旅行的城市。" + padding

	trip := newTestExtractor().Extract(reply, "我想去上海")
	require.NotNil(t, trip)
	assert.Equal(t, "上海", trip.Destination)
	assert.Equal(t, "3天2晚", trip.Duration, "no day-count phrase falls back to three days")

	require.Len(t, trip.Days, 3)
	for i, day := range trip.Days {
		assert.Contains(t, day.Title, "上海")
		require.Len(t, day.Activities, 1, "day %d", i+1)
		assert.Equal(t, "全天", day.Activities[0].Time)
		assert.Equal(t, "上海自由行", day.Activities[0].Title)
	}
}

func TestExtractEmptyDayGetsPlaceholder(t *testing.T) {
	reply := strings.Join([]string{
		"为您规划杭州行程。" + padding,
		"第1天",
		"- 上午：西湖",
		"第2天",
		"当天自由安排",
	}, "\n")

	trip := newTestExtractor().Extract(reply, "我想去杭州玩2天")
	require.NotNil(t, trip)
	require.Len(t, trip.Days, 2)
	require.Len(t, trip.Days[1].Activities, 1)
	assert.Equal(t, "杭州自由行", trip.Days[1].Activities[0].Title)
}

func TestExtractLooseActivityLines(t *testing.T) {
	reply := strings.Join([]string{
		"为您规划成都行程。" + padding,
		"第1天",
		"- 宽窄巷子",
		"- 武侯祠",
	}, "\n")

	trip := newTestExtractor().Extract(reply, "我想去成都玩1天")
	require.NotNil(t, trip)
	require.Len(t, trip.Days, 1)
	require.Len(t, trip.Days[0].Activities, 2)
	assert.Equal(t, "活动1", trip.Days[0].Activities[0].Time)
	assert.Equal(t, "宽窄巷子", trip.Days[0].Activities[0].Title)
}

func TestTravelTypeFromUserMessage(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"我想去北京文化游", "文化观光"},
		{"带我吃遍北京美食", "美食体验"},
		{"去北京购物", "购物休闲"},
		{"我想去北京旅游", "综合体验"},
	}

	ex := newTestExtractor()
	reply := "为您规划北京行程。" + padding
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			trip := ex.Extract(reply, tt.message)
			require.NotNil(t, trip)
			assert.Equal(t, tt.want, trip.TravelType)
		})
	}
}
