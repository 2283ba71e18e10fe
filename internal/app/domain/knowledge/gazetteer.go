package knowledge

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// Gazetteer is the fixed, ordered list of recognized city names.
// Ordering is significant: when several cities appear in a text, the
// leftmost occurrence wins, and earlier entries win on position ties.
// Matching is backed by an Aho-Corasick automaton so a single pass over
// the text covers every entry.
type Gazetteer struct {
	cities  []string
	matcher ahocorasick.AhoCorasick
}

// DefaultCities is the lexicon shared by the intent classifier and the
// itinerary parser.
var DefaultCities = []string{
	"北京", "上海", "广州", "成都", "西安",
	"杭州", "南京", "苏州", "厦门", "深圳",
	"重庆", "武汉", "长沙", "三亚", "丽江",
}

// NewGazetteer builds a matcher over the given city names. The slice is
// copied; the caller may not mutate entry order afterwards.
func NewGazetteer(cities []string) *Gazetteer {
	owned := make([]string, len(cities))
	copy(owned, cities)

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchOnlyWholeWords: false,
		MatchKind:           ahocorasick.LeftMostFirstMatch,
		DFA:                 true,
	})

	return &Gazetteer{
		cities:  owned,
		matcher: builder.Build(owned),
	}
}

// NewDefaultGazetteer returns a gazetteer over DefaultCities.
func NewDefaultGazetteer() *Gazetteer {
	return NewGazetteer(DefaultCities)
}

// Match returns the first recognized city in text, or "" when none
// matches.
func (g *Gazetteer) Match(text string) string {
	matches := g.matcher.FindAll(text)
	if len(matches) == 0 {
		return ""
	}
	return g.cities[matches[0].Pattern()]
}

// Contains reports whether text mentions any gazetteer city.
func (g *Gazetteer) Contains(text string) bool {
	return g.Match(text) != ""
}

// Cities returns the entries in priority order.
func (g *Gazetteer) Cities() []string {
	out := make([]string, len(g.cities))
	copy(out, g.cities)
	return out
}

// ContainsAny is a helper for small ad-hoc keyword sets that do not
// warrant an automaton.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
