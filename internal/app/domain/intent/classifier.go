package intent

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/tripmind/tripmind/internal/app/domain/knowledge"
)

// Intent is a coarse classification of a user utterance.
type Intent string

const (
	Greeting    Intent = "greeting"
	Farewell    Intent = "farewell"
	Thanks      Intent = "thanks"
	TravelPlan  Intent = "travel_plan"
	FirstVisit  Intent = "first_visit"
	RepeatVisit Intent = "repeated_visit"
	Default     Intent = "default"
)

var (
	greetingPrefixes = []string{"你好", "您好", "嗨", "哈喽", "hello", "hi", "hey"}
	farewellPrefixes = []string{"再见", "拜拜", "goodbye", "bye"}
	thanksPrefixes   = []string{"谢谢", "感谢", "thank"}

	// Action words that, combined with a gazetteer city in either order,
	// signal a travel-planning request.
	actionKeywords = []string{"去", "到", "游", "玩", "旅游", "旅行", "行程", "规划", "攻略"}

	durationKeywords       = []string{"几天", "多久", "一周", "周末"}
	recommendationKeywords = []string{"推荐", "有什么好玩的", "哪里好玩", "去哪玩", "怎么玩"}

	firstVisitKeywords  = []string{"第一次", "首次", "没去过", "从未去过"}
	repeatVisitKeywords = []string{"第二次", "再次", "又", "已经去过", "去过了", "再来"}
)

// Classifier maps an utterance to an Intent with an ordered rule list;
// the first matching rule wins. It is a pure function of its input and
// never fails: anything unmatched is Default.
type Classifier struct {
	gazetteer *knowledge.Gazetteer
}

// NewClassifier builds a classifier over the given gazetteer.
func NewClassifier(g *knowledge.Gazetteer) *Classifier {
	return &Classifier{gazetteer: g}
}

// Normalize folds fullwidth characters to their halfwidth forms and
// lowercases ASCII, so "ＨＥＬＬＯ" and "hello" classify identically.
func Normalize(utterance string) string {
	return strings.ToLower(width.Narrow.String(utterance))
}

// Classify returns the intent of one utterance.
func (c *Classifier) Classify(utterance string) Intent {
	msg := Normalize(utterance)

	if hasAnyPrefix(msg, greetingPrefixes) {
		return Greeting
	}
	if hasAnyPrefix(msg, farewellPrefixes) {
		return Farewell
	}
	if hasAnyPrefix(msg, thanksPrefixes) {
		return Thanks
	}

	if c.isTravelPlan(msg) {
		return TravelPlan
	}

	if knowledge.ContainsAny(msg, firstVisitKeywords) {
		return FirstVisit
	}
	if knowledge.ContainsAny(msg, repeatVisitKeywords) {
		return RepeatVisit
	}

	return Default
}

// isTravelPlan tests for a destination keyword combined with an action
// keyword (in either order), a duration phrase combined with a travel
// word, or a bare recommendation request.
func (c *Classifier) isTravelPlan(msg string) bool {
	if c.gazetteer.Contains(msg) && knowledge.ContainsAny(msg, actionKeywords) {
		return true
	}
	if knowledge.ContainsAny(msg, durationKeywords) &&
		knowledge.ContainsAny(msg, []string{"旅游", "旅行", "行程", "规划"}) {
		return true
	}
	return knowledge.ContainsAny(msg, recommendationKeywords)
}

// IsFirstTime decides visit recency from the utterance. Explicit repeat
// markers win over the first-visit default.
func IsFirstTime(utterance string) bool {
	msg := Normalize(utterance)
	if knowledge.ContainsAny(msg, firstVisitKeywords) {
		return true
	}
	if knowledge.ContainsAny(msg, repeatVisitKeywords) {
		return false
	}
	return true
}

func hasAnyPrefix(msg string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(msg, p) {
			return true
		}
	}
	return false
}
