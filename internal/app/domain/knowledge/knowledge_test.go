package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGazetteerMatch(t *testing.T) {
	g := NewDefaultGazetteer()

	assert.Equal(t, "北京", g.Match("我想去北京旅游5天"))
	assert.Equal(t, "上海", g.Match("上海好玩吗"))
	assert.Equal(t, "", g.Match("我想出去玩"))
	assert.Equal(t, "北京", g.Match("从北京到上海"), "leftmost city wins")
}

func TestGazetteerContains(t *testing.T) {
	g := NewDefaultGazetteer()
	assert.True(t, g.Contains("成都的美食"))
	assert.False(t, g.Contains("随便聊聊"))
}

func TestGazetteerCustomCities(t *testing.T) {
	g := NewGazetteer([]string{"拉萨", "敦煌"})
	assert.Equal(t, "敦煌", g.Match("去敦煌看壁画"))
	assert.Equal(t, "", g.Match("我想去北京"))
}

func TestContainsAny(t *testing.T) {
	keywords := []string{"旅游", "行程"}
	assert.True(t, ContainsAny("规划一个行程", keywords))
	assert.False(t, ContainsAny("今天天气不错", keywords))
	assert.False(t, ContainsAny("规划一个行程", nil))
}

func TestCityDBLookup(t *testing.T) {
	db := NewCityDB()

	info, ok := db.Lookup("北京")
	require.True(t, ok)
	assert.Equal(t, 148, info.Resources.Museums)
	assert.Len(t, info.FirstVisit, 5)
	assert.Len(t, info.RepeatVisit, 5)
	assert.InDelta(t, 39.9042, info.Boundary.CenterLat, 1e-9)

	_, ok = db.Lookup("杭州")
	assert.False(t, ok, "gazetteer cities without knowledge entries miss")
}

func TestCityDBKnown(t *testing.T) {
	known := NewCityDB().Known()
	assert.Equal(t, []string{"北京", "上海", "广州", "成都", "西安"}, known)
}
