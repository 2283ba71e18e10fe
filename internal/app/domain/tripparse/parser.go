package tripparse

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/domain/knowledge"
	"github.com/tripmind/tripmind/internal/app/models"
)

const (
	// Replies shorter than this are assumed to contain no itinerary.
	minResponseLength = 100

	defaultDayCount = 3
)

// Extractor turns free-text assistant replies into structured trips.
// It is used when the backend returns prose without an accompanying
// trip, which is always the case for the external chat API.
type Extractor struct {
	gazetteer *knowledge.Gazetteer
	logger    *zap.Logger
}

// NewExtractor builds an extractor over the shared city gazetteer.
func NewExtractor(g *knowledge.Gazetteer, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{gazetteer: g, logger: logger}
}

// Extract parses rawText into a Trip. userMessage is the original user
// utterance; it drives the travel-type categorization and the generated
// notes, never the itinerary content itself. Returns nil when no
// destination is found or the reply is too short — never a partial
// trip. Every returned day has at least one activity.
func (e *Extractor) Extract(rawText, userMessage string) *models.Trip {
	city := e.gazetteer.Match(rawText)
	if city == "" {
		e.logger.Debug("itinerary extraction skipped: no destination in reply")
		return nil
	}

	if len([]rune(rawText)) < minResponseLength {
		e.logger.Debug("itinerary extraction skipped: reply too short",
			zap.Int("length", len([]rune(rawText))),
			zap.String("city", city),
		)
		return nil
	}

	days := matchDayCount(rawText, defaultDayCount)

	tripDays := e.buildDays(rawText, city, days)

	trip := &models.Trip{
		Destination: city,
		Duration:    fmt.Sprintf("%d天%d晚", days, days-1),
		TravelType:  travelTypeFor(userMessage),
		Days:        tripDays,
		Notes: []string{
			fmt.Sprintf("此行程基于您询问\"%s\"生成", userMessage),
			"建议在出行前查询最新的景点开放情况",
			"可根据实际情况调整行程安排",
		},
		CreatedAt: time.Now(),
	}

	e.logger.Info("itinerary extracted from reply",
		zap.String("city", city),
		zap.Int("days", len(trip.Days)),
	)
	return trip
}

// buildDays segments the reply into day blocks and fills each one with
// its matched activities. Days without any parsable activity get a
// single free-exploration placeholder; a reply with no day markers at
// all gets dayCount placeholder days.
func (e *Extractor) buildDays(text, city string, dayCount int) []models.TripDay {
	blocks := splitDayBlocks(text)
	if len(blocks) == 0 {
		days := make([]models.TripDay, 0, dayCount)
		for i := 1; i <= dayCount; i++ {
			days = append(days, models.TripDay{
				Title:      fmt.Sprintf("%s第%d天", city, i),
				Activities: []models.Activity{placeholderActivity(city)},
			})
		}
		return days
	}

	days := make([]models.TripDay, 0, len(blocks))
	for _, block := range blocks {
		activities := make([]models.Activity, 0, 4)
		for _, pa := range matchActivityLines(block.content) {
			activities = append(activities, models.Activity{
				Time:     pa.time,
				Title:    pa.title,
				Location: city + "市",
			})
		}
		if len(activities) == 0 {
			activities = append(activities, placeholderActivity(city))
		}
		days = append(days, models.TripDay{
			Title:      fmt.Sprintf("%s第%d天", city, block.number),
			Activities: activities,
		})
	}
	return days
}

func placeholderActivity(city string) models.Activity {
	return models.Activity{
		Time:        "全天",
		Title:       city + "自由行",
		Description: "根据个人喜好自由安排行程",
		Location:    city + "市",
	}
}

// travelTypeFor categorizes the trip from keywords in the user's own
// message, not the assistant reply.
func travelTypeFor(userMessage string) string {
	switch {
	case strings.Contains(userMessage, "文化"):
		return "文化观光"
	case strings.Contains(userMessage, "美食"):
		return "美食体验"
	case strings.Contains(userMessage, "购物"):
		return "购物休闲"
	default:
		return "综合体验"
	}
}
