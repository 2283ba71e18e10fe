package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmind/tripmind/internal/app/models"
)

func TestProjectSkipsHotelPlaceholder(t *testing.T) {
	trip := &models.Trip{
		Destination: "北京",
		Days: []models.TripDay{
			{
				Title: "长城一日游",
				Activities: []models.Activity{
					{Title: "出发前往八达岭长城", Location: "从酒店出发"},
					{Title: "游览八达岭长城", Location: "北京市延庆区"},
					{Title: "返程晚餐", Location: "北京市东城区"},
				},
			},
		},
	}

	points := NewProjector(NewOffsetGeocoder()).Project(trip)
	require.Len(t, points, 2)

	assert.Equal(t, "游览八达岭长城", points[0].Name)
	assert.Equal(t, 1, points[0].Order, "orders stay dense after the skip")
	assert.Equal(t, "返程晚餐", points[1].Name)
	assert.Equal(t, 2, points[1].Order)
	assert.Equal(t, 1, points[0].Day)
}

func TestProjectDayAndOrderNumbering(t *testing.T) {
	trip := &models.Trip{
		Destination: "上海",
		Days: []models.TripDay{
			{Activities: []models.Activity{
				{Title: "外滩", Location: "上海市黄浦区"},
				{Title: "豫园", Location: "上海市黄浦区"},
			}},
			{Activities: []models.Activity{
				{Title: "南京路步行街", Location: "上海市黄浦区"},
			}},
		},
	}

	points := NewProjector(NewOffsetGeocoder()).Project(trip)
	require.Len(t, points, 3)

	assert.Equal(t, 1, points[0].Day)
	assert.Equal(t, 1, points[0].Order)
	assert.Equal(t, 1, points[1].Day)
	assert.Equal(t, 2, points[1].Order)
	assert.Equal(t, 2, points[2].Day)
	assert.Equal(t, 1, points[2].Order, "order restarts per day")
}

func TestProjectNilAndEmptyTrip(t *testing.T) {
	p := NewProjector(NewOffsetGeocoder())
	assert.Nil(t, p.Project(nil))
	assert.Empty(t, p.Project(&models.Trip{Destination: "北京"}))
}

func TestOffsetGeocoderBases(t *testing.T) {
	g := NewOffsetGeocoder()

	beijing := g.Geocode("北京市东城区", 0)
	assert.InDelta(t, 39.9042, beijing.Lat, 1e-9)
	assert.InDelta(t, 116.4074, beijing.Lng, 1e-9)

	other := g.Geocode("上海市黄浦区", 0)
	assert.InDelta(t, 31.2304, other.Lat, 1e-9)
	assert.InDelta(t, 121.4737, other.Lng, 1e-9)

	unknown := g.Geocode("杭州市西湖区", 0)
	assert.InDelta(t, 31.2304, unknown.Lat, 1e-9, "unknown regions use the default base")

	second := g.Geocode("北京市东城区", 2)
	assert.InDelta(t, 39.9042+0.02, second.Lat, 1e-9)
	assert.InDelta(t, 116.4074+0.02, second.Lng, 1e-9)
}

func TestCalculateBounds(t *testing.T) {
	coords := []Coordinate{
		{Lat: 39.9, Lng: 116.4},
		{Lat: 40.3, Lng: 116.0},
		{Lat: 0, Lng: 0}, // ignored
	}

	b, ok := CalculateBounds(coords)
	require.True(t, ok)
	assert.Equal(t, 39.9, b.MinLat)
	assert.Equal(t, 40.3, b.MaxLat)
	assert.Equal(t, 116.0, b.MinLng)
	assert.Equal(t, 116.4, b.MaxLng)

	_, ok = CalculateBounds([]Coordinate{{Lat: 0, Lng: 0}})
	assert.False(t, ok)
}

func TestCenterPoint(t *testing.T) {
	fallback := Coordinate{Lat: 31.2304, Lng: 121.4737}

	center := CenterPoint([]Coordinate{{Lat: 30, Lng: 120}, {Lat: 32, Lng: 122}}, fallback)
	assert.InDelta(t, 31, center.Lat, 1e-9)
	assert.InDelta(t, 121, center.Lng, 1e-9)

	assert.Equal(t, fallback, CenterPoint(nil, fallback))
}
