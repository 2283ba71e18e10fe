package simulate

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/domain/intent"
	"github.com/tripmind/tripmind/internal/app/domain/knowledge"
	"github.com/tripmind/tripmind/internal/app/models"
)

// Reply is the simulator's output for one turn. Trip is nil for
// conversational intents and for travel requests the simulator cannot
// plan.
type Reply struct {
	Content string
	Trip    *models.Trip
}

// Simulator produces assistant replies without any external AI backend
// so the full rendering pipeline works offline. It is pure given its
// fixed knowledge base, except for the uniform random draw over canned
// reply pools.
type Simulator struct {
	gazetteer *knowledge.Gazetteer
	cities    *knowledge.CityDB
	logger    *zap.Logger

	// intn is swappable for deterministic tests.
	intn func(n int) int
}

// New builds a simulator over the shared gazetteer and knowledge base.
func New(g *knowledge.Gazetteer, db *knowledge.CityDB, logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{
		gazetteer: g,
		cities:    db,
		logger:    logger,
		intn:      rand.IntN,
	}
}

// Respond synthesizes a reply for a classified utterance.
func (s *Simulator) Respond(it intent.Intent, message string) Reply {
	switch it {
	case intent.TravelPlan, intent.FirstVisit, intent.RepeatVisit:
		return s.travelReply(it, message)
	case intent.Greeting:
		return Reply{Content: s.pick("greeting")}
	case intent.Farewell:
		return Reply{Content: s.pick("farewell")}
	case intent.Thanks:
		return Reply{Content: s.pick("thanks")}
	default:
		return Reply{Content: s.pick("default")}
	}
}

func (s *Simulator) pick(pool string) string {
	responses, ok := conversationResponses[pool]
	if !ok {
		responses = conversationResponses["default"]
	}
	return responses[s.intn(len(responses))]
}

func (s *Simulator) travelReply(it intent.Intent, message string) Reply {
	city := s.gazetteer.Match(message)
	if city == "" {
		return Reply{Content: fmt.Sprintf(
			"您想去哪个城市旅行呢？目前我可以为您提供%s的详细旅游资讯和行程规划。请告诉我目的地和天数，例如「我想去北京旅游5天」，以及是否是您第一次到访这个城市。",
			strings.Join(s.cities.Known(), "、"),
		)}
	}

	info, ok := s.cities.Lookup(city)
	if !ok {
		return Reply{Content: fmt.Sprintf(
			"%s是一个非常有魅力的城市。不过我目前没有%s的详细数据。您是想了解%s的旅游信息吗？这些城市我有更详细的资料。",
			city, city, strings.Join(s.cities.Known(), "、"),
		)}
	}

	firstTime := true
	switch it {
	case intent.FirstVisit:
		firstTime = true
	case intent.RepeatVisit:
		firstTime = false
	default:
		firstTime = intent.IsFirstTime(message)
	}

	template := beijingTemplate
	if city == "上海" {
		template = shanghaiTemplate
	}

	trip := cloneTrip(template.trip)
	trip.Destination = city

	content := cityIntro(info, firstTime) + "\n\n" + trimLeadingSentence(template.content)

	if !firstTime {
		s.applyRepeatVisitSpots(trip, info)
	}

	s.logger.Info("simulated travel reply",
		zap.String("city", city),
		zap.Bool("first_visit", firstTime),
	)
	return Reply{Content: content, Trip: trip}
}

// applyRepeatVisitSpots swaps one random activity per day for a
// deep-cut recommendation and tags the trip notes accordingly.
func (s *Simulator) applyRepeatVisitSpots(trip *models.Trip, info knowledge.CityInfo) {
	spotIdx := 0
	for i := range trip.Days {
		acts := trip.Days[i].Activities
		if len(acts) == 0 || spotIdx >= len(info.RepeatVisit) {
			continue
		}
		spot := info.RepeatVisit[spotIdx]
		target := s.intn(len(acts))
		acts[target].Title = spot
		acts[target].Description = fmt.Sprintf("作为%s的深度景点，%s非常适合再次到访的游客。", info.Name, spot)
		spotIdx++
	}
	trip.Notes = append(trip.Notes,
		fmt.Sprintf("这个行程专为再次到访%s的游客设计，侧重于深度体验。", info.Name))
}

// cityIntro renders the knowledge-base entry into the reply preamble:
// intro, resource counts, and the ranked recommendation list for the
// detected visit recency.
func cityIntro(info knowledge.CityInfo, firstTime bool) string {
	spots := info.FirstVisit
	visitType := "首次"
	if !firstTime {
		spots = info.RepeatVisit
		visitType = "再次"
	}

	var ranked strings.Builder
	for i, spot := range spots {
		if i > 0 {
			ranked.WriteByte('\n')
		}
		fmt.Fprintf(&ranked, "%d. %s", i+1, spot)
	}

	return fmt.Sprintf(
		"%s\n\n%s拥有丰富的旅游资源，包括%d座博物馆、%d个公园、%d处历史古迹、%d个购物区和%d条美食街。\n\n对于%s到访%s的游客，我推荐您优先考虑以下景点：\n%s\n\n下面是我为您量身定制的详细行程：",
		info.Intro,
		info.Name,
		info.Resources.Museums,
		info.Resources.Parks,
		info.Resources.HistoricalSites,
		info.Resources.ShoppingAreas,
		info.Resources.FoodStreets,
		visitType,
		info.Name,
		ranked.String(),
	)
}

// trimLeadingSentence drops the template's first sentence (up to and
// including the first 。) so the city intro replaces it.
func trimLeadingSentence(content string) string {
	if idx := strings.Index(content, "。"); idx >= 0 {
		return content[idx+len("。"):]
	}
	return content
}
