package maprender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/eventbus"
	"github.com/tripmind/tripmind/internal/app/models"
)

func testPoints() []models.LocationPoint {
	return []models.LocationPoint{
		{Name: "天安门广场", Latitude: 39.9042, Longitude: 116.4074, Day: 1, Order: 1},
		{Name: "故宫博物院", Latitude: 39.9142, Longitude: 116.4174, Day: 1, Order: 2},
		{Name: "景山公园", Latitude: 39.9242, Longitude: 116.4274, Day: 1, Order: 3},
		{Name: "八达岭长城", Latitude: 40.3594, Longitude: 116.0200, Day: 2, Order: 1},
	}
}

func newTestRenderer(t *testing.T) (*Renderer, *eventbus.Bus) {
	t.Helper()
	bus := eventbus.New(zap.NewNop(), nil)
	r := New(bus, zap.NewNop())
	t.Cleanup(r.Close)
	return r, bus
}

func TestPlanGroupsAndColorsByDay(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.SetLocations(testPoints())

	plan := r.Plan()
	require.Len(t, plan.Markers, 4)
	require.Len(t, plan.Routes, 1, "a single-point day has no route")

	assert.Equal(t, "天安门广场（第1天 - 第1个景点）", plan.Markers[0].Label)
	assert.Equal(t, dayColors[1], plan.Markers[0].Color)
	assert.Equal(t, dayColors[2], plan.Markers[3].Color)

	route := plan.Routes[0]
	assert.Equal(t, 1, route.Day)
	assert.Equal(t, dayColors[1], route.Color)
	assert.Len(t, route.Points, 3)

	require.NotNil(t, plan.Bounds)
	assert.Equal(t, 39.9042, plan.Bounds.MinLat)
	assert.Equal(t, 40.3594, plan.Bounds.MaxLat)
	assert.Equal(t, boundsPadding, plan.Padding)
}

func TestPlanOrdersMarkersWithinDay(t *testing.T) {
	r, _ := newTestRenderer(t)
	pts := testPoints()
	// shuffle within day 1
	pts[0], pts[2] = pts[2], pts[0]
	r.SetLocations(pts)

	plan := r.Plan()
	assert.Equal(t, "天安门广场", plan.Markers[0].Location.Name)
	assert.Equal(t, "故宫博物院", plan.Markers[1].Location.Name)
	assert.Equal(t, "景山公园", plan.Markers[2].Location.Name)
}

func TestPlanActiveDayFilter(t *testing.T) {
	r, bus := newTestRenderer(t)
	r.SetLocations(testPoints())

	day := 2
	bus.Publish(eventbus.TopicActiveDayChanged, &day)

	plan := r.Plan()
	require.Len(t, plan.Markers, 1)
	assert.Equal(t, "八达岭长城", plan.Markers[0].Location.Name)
	require.NotNil(t, plan.ActiveDay)
	assert.Equal(t, 2, *plan.ActiveDay)

	bus.Publish(eventbus.TopicActiveDayChanged, (*int)(nil))
	assert.Len(t, r.Plan().Markers, 4)
}

func TestRendererFollowsLocationEvents(t *testing.T) {
	r, bus := newTestRenderer(t)

	bus.Publish(eventbus.TopicLocationsUpdated, testPoints())
	assert.Len(t, r.Plan().Markers, 4)

	// most recent update wins
	bus.Publish(eventbus.TopicLocationsUpdated, testPoints()[:1])
	assert.Len(t, r.Plan().Markers, 1)
}

func TestSelectPublishesAndNotifies(t *testing.T) {
	r, bus := newTestRenderer(t)
	r.SetLocations(testPoints())

	var fromBus, fromCallback models.LocationPoint
	bus.Subscribe(eventbus.TopicLocationSelected, func(payload any) {
		fromBus = payload.(models.LocationPoint)
	})
	r.OnMarkerClick(func(loc models.LocationPoint) {
		fromCallback = loc
	})

	loc, err := r.Select("故宫博物院")
	require.NoError(t, err)
	assert.Equal(t, "故宫博物院", loc.Name)
	assert.Equal(t, loc, fromBus)
	assert.Equal(t, loc, fromCallback)

	_, err = r.Select("不存在的景点")
	assert.Error(t, err)
}

func TestRetryCapped(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.SetLocations(testPoints())

	for i := 0; i < maxRetries; i++ {
		_, err := r.Retry()
		require.NoError(t, err)
	}
	_, err := r.Retry()
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMapInit)

	r.ResetRetries()
	_, err = r.Retry()
	assert.NoError(t, err)
}

func TestCloseDetachesFromBus(t *testing.T) {
	bus := eventbus.New(zap.NewNop(), nil)
	r := New(bus, zap.NewNop())
	r.SetLocations(testPoints())
	r.Close()

	bus.Publish(eventbus.TopicLocationsUpdated, testPoints())
	assert.Empty(t, r.Plan().Markers)
}
