package tripparse

import (
	"regexp"
	"strconv"
	"strings"
)

// The extraction pipeline is split into named rules so each one can be
// unit-tested in isolation: destination match, day-count match,
// day-block split, and activity-line match.

var (
	dayCountPattern = regexp.MustCompile(`(\d+)\s*(天|日)`)
	dayMarker       = regexp.MustCompile(`第(\d+)天`)

	// "- <time-or-label>: <description>", with either ASCII or fullwidth
	// colon separating the two.
	activityLine = regexp.MustCompile(`-\s*([^:：\n]+)[：:]\s*([^\n]+)`)

	// Loose fallback: any "- <description>" line.
	looseActivityLine = regexp.MustCompile(`-\s*([^\n]+)`)
)

// matchDayCount finds a "<number>天" or "<number>日" phrase; absent one
// it falls back to defaultDays.
func matchDayCount(text string, defaultDays int) int {
	m := dayCountPattern.FindStringSubmatch(text)
	if m == nil {
		return defaultDays
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return defaultDays
	}
	return n
}

// dayBlock is the text between one "第N天" marker and the next (or end
// of text).
type dayBlock struct {
	number  int
	content string
}

// splitDayBlocks segments text at "第N天" markers, each block greedily
// consuming everything up to the next marker.
func splitDayBlocks(text string) []dayBlock {
	idx := dayMarker.FindAllStringSubmatchIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}

	blocks := make([]dayBlock, 0, len(idx))
	for i, loc := range idx {
		end := len(text)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		num, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		blocks = append(blocks, dayBlock{
			number:  num,
			content: text[loc[0]:end],
		})
	}
	return blocks
}

// parsedActivity is one matched activity line before it is attached to
// a trip day.
type parsedActivity struct {
	time  string
	title string
}

// matchActivityLines extracts activities from one day block. The
// primary pattern wins when it matches at least once; otherwise every
// "- ..." line becomes a generically labeled activity.
func matchActivityLines(block string) []parsedActivity {
	var out []parsedActivity
	for _, m := range activityLine.FindAllStringSubmatch(block, -1) {
		out = append(out, parsedActivity{
			time:  strings.TrimSpace(m[1]),
			title: strings.TrimSpace(m[2]),
		})
	}
	if len(out) > 0 {
		return out
	}

	for i, m := range looseActivityLine.FindAllStringSubmatch(block, -1) {
		out = append(out, parsedActivity{
			time:  "活动" + strconv.Itoa(i+1),
			title: strings.TrimSpace(m[1]),
		})
	}
	return out
}
