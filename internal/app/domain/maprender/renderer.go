package maprender

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/domain/geo"
	"github.com/tripmind/tripmind/internal/app/eventbus"
	"github.com/tripmind/tripmind/internal/app/models"
)

// dayColors assigns one color per itinerary day; day numbers past the
// palette wrap around.
var dayColors = []string{
	"#FF4136", // 红色
	"#0074D9", // 蓝色
	"#2ECC40", // 绿色
	"#FF851B", // 橙色
	"#B10DC9", // 紫色
	"#39CCCC", // 青色
	"#FFDC00", // 黄色
	"#F012BE", // 粉色
	"#01FF70", // 亮绿色
	"#85144b", // 梅红色
}

const (
	boundsPadding = 50
	maxRetries    = 3
	routeWeight   = 3
)

// Marker is one plottable point with its popup label.
type Marker struct {
	Location models.LocationPoint `json:"location"`
	Label    string               `json:"label"`
	Color    string               `json:"color"`
}

// Route is the colored segment chain connecting one day's markers in
// visit order.
type Route struct {
	Day    int              `json:"day"`
	Color  string           `json:"color"`
	Weight int              `json:"weight"`
	Points []geo.Coordinate `json:"points"`
}

// Plan is a full description of what the map should show: every marker,
// the per-day routes, and the viewport that fits them. The browser
// widget draws it verbatim.
type Plan struct {
	Markers   []Marker    `json:"markers"`
	Routes    []Route     `json:"routes"`
	Bounds    *geo.Bounds `json:"bounds,omitempty"`
	Padding   int         `json:"padding"`
	ActiveDay *int        `json:"activeDay,omitempty"`
}

// SelectFunc observes marker selections alongside the event bus.
type SelectFunc func(models.LocationPoint)

// Renderer keeps the map's current state and derives render plans from
// it. It follows the bus: location and active-day events update it
// without any direct call, and the latest update always wins. There is
// exactly one renderer per process.
type Renderer struct {
	mu         sync.Mutex
	locations  []models.LocationPoint
	activeDay  *int
	onSelect   []SelectFunc
	retryCount int

	bus    *eventbus.Bus
	unsubs []func()
	logger *zap.Logger
}

// New builds a renderer subscribed to the bus topics it follows.
func New(bus *eventbus.Bus, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Renderer{bus: bus, logger: logger}
	r.subscribe()
	return r
}

func (r *Renderer) subscribe() {
	r.unsubs = append(r.unsubs,
		r.bus.Subscribe(eventbus.TopicLocationsUpdated, func(payload any) {
			if points, ok := payload.([]models.LocationPoint); ok {
				r.SetLocations(points)
			}
		}),
		r.bus.Subscribe(eventbus.TopicActiveDayChanged, func(payload any) {
			day, ok := payload.(*int)
			if !ok {
				return
			}
			r.SetActiveDay(day)
		}),
	)
}

// SetLocations replaces the full location set. Passing the projector's
// output for a new trip discards whatever the previous trip showed.
func (r *Renderer) SetLocations(points []models.LocationPoint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = make([]models.LocationPoint, len(points))
	copy(r.locations, points)
	r.logger.Debug("map locations replaced", zap.Int("count", len(points)))
}

// SetActiveDay filters the plan to one day; nil shows every day.
func (r *Renderer) SetActiveDay(day *int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeDay = day
}

// OnMarkerClick registers an observer invoked on every selection, in
// addition to the bus publish.
func (r *Renderer) OnMarkerClick(fn SelectFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onSelect = append(r.onSelect, fn)
}

// Select resolves a marker by name, announces the selection on the bus,
// and invokes the registered observers.
func (r *Renderer) Select(name string) (models.LocationPoint, error) {
	r.mu.Lock()
	var found *models.LocationPoint
	for i := range r.locations {
		if r.locations[i].Name == name {
			found = &r.locations[i]
			break
		}
	}
	observers := make([]SelectFunc, len(r.onSelect))
	copy(observers, r.onSelect)
	r.mu.Unlock()

	if found == nil {
		return models.LocationPoint{}, fmt.Errorf("no marker named %q", name)
	}

	r.bus.Publish(eventbus.TopicLocationSelected, *found)
	for _, fn := range observers {
		fn(*found)
	}
	return *found, nil
}

// Plan derives the current render plan. Days render in ascending order;
// within a day, markers follow their stored visit order.
func (r *Renderer) Plan() Plan {
	r.mu.Lock()
	locations := make([]models.LocationPoint, len(r.locations))
	copy(locations, r.locations)
	activeDay := r.activeDay
	r.mu.Unlock()

	byDay := make(map[int][]models.LocationPoint)
	for _, loc := range locations {
		byDay[loc.Day] = append(byDay[loc.Day], loc)
	}
	days := make([]int, 0, len(byDay))
	for day := range byDay {
		sort.Slice(byDay[day], func(i, j int) bool {
			return byDay[day][i].Order < byDay[day][j].Order
		})
		days = append(days, day)
	}
	sort.Ints(days)

	plan := Plan{Padding: boundsPadding, ActiveDay: activeDay}
	var rendered []geo.Coordinate

	for _, day := range days {
		if activeDay != nil && day != *activeDay {
			continue
		}
		color := dayColors[day%len(dayColors)]
		dayLocations := byDay[day]

		route := Route{Day: day, Color: color, Weight: routeWeight}
		for i, loc := range dayLocations {
			coord := geo.Coordinate{Lat: loc.Latitude, Lng: loc.Longitude}
			rendered = append(rendered, coord)
			route.Points = append(route.Points, coord)
			plan.Markers = append(plan.Markers, Marker{
				Location: loc,
				Label:    fmt.Sprintf("%s（第%d天 - 第%d个景点）", loc.Name, day, i+1),
				Color:    color,
			})
		}
		if len(route.Points) > 1 {
			plan.Routes = append(plan.Routes, route)
		}
	}

	if bounds, ok := geo.CalculateBounds(rendered); ok {
		plan.Bounds = &bounds
	}
	return plan
}

// Retry rebuilds the plan after a render failure on the client. Attempts
// are capped; once exhausted the caller must reload.
func (r *Renderer) Retry() (Plan, error) {
	r.mu.Lock()
	if r.retryCount >= maxRetries {
		r.mu.Unlock()
		return Plan{}, fmt.Errorf("%w: retry limit reached", models.ErrMapInit)
	}
	r.retryCount++
	attempt := r.retryCount
	r.mu.Unlock()

	r.logger.Info("map render retry", zap.Int("attempt", attempt))
	return r.Plan(), nil
}

// ResetRetries clears the retry budget, typically after a successful
// render or a full page reload.
func (r *Renderer) ResetRetries() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retryCount = 0
}

// Close detaches the renderer from the bus and drops its state. Safe to
// call more than once; a renderer is fully torn down before another is
// attached.
func (r *Renderer) Close() {
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil

	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = nil
	r.activeDay = nil
	r.onSelect = nil
}
