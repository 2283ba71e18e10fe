package tripparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchDayCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"days suffix", "我想去北京旅游5天", 5},
		{"ri suffix", "行程共7日", 7},
		{"whitespace before unit", "计划 4 天的行程", 4},
		{"no phrase falls back", "我想去北京旅游", 3},
		{"zero falls back", "0天行程", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchDayCount(tt.text, 3))
		})
	}
}

func TestSplitDayBlocks(t *testing.T) {
	text := "前言部分\n第1天\n- 上午：故宫\n- 下午：景山\n第2天\n- 全天：长城\n结尾"

	blocks := splitDayBlocks(text)
	require.Len(t, blocks, 2)

	assert.Equal(t, 1, blocks[0].number)
	assert.Contains(t, blocks[0].content, "故宫")
	assert.Contains(t, blocks[0].content, "景山")
	assert.NotContains(t, blocks[0].content, "长城")

	assert.Equal(t, 2, blocks[1].number)
	assert.Contains(t, blocks[1].content, "长城")
	assert.Contains(t, blocks[1].content, "结尾", "last block runs to end of text")
}

func TestSplitDayBlocksNoMarkers(t *testing.T) {
	assert.Nil(t, splitDayBlocks("没有任何天数标记的文本"))
}

func TestMatchActivityLines(t *testing.T) {
	block := "第1天\n- 上午：天安门广场\n- 下午: 故宫博物院"

	acts := matchActivityLines(block)
	require.Len(t, acts, 2)
	assert.Equal(t, "上午", acts[0].time)
	assert.Equal(t, "天安门广场", acts[0].title)
	assert.Equal(t, "下午", acts[1].time, "ASCII colon separates too")
	assert.Equal(t, "故宫博物院", acts[1].title)
}

func TestMatchActivityLinesLooseFallback(t *testing.T) {
	block := "第1天\n- 天安门广场\n- 故宫博物院"

	acts := matchActivityLines(block)
	require.Len(t, acts, 2)
	assert.Equal(t, "活动1", acts[0].time)
	assert.Equal(t, "天安门广场", acts[0].title)
	assert.Equal(t, "活动2", acts[1].time)
}

func TestMatchActivityLinesEmpty(t *testing.T) {
	assert.Empty(t, matchActivityLines("第1天\n自由活动"))
}
