package pipeline

import (
	"strings"

	"marketboard/internal/models"
)

// outsideProbabilityBounds excludes near-certain markets: either side at or
// below min-1 (equivalently, the paired side at or above max+1) carries
// little display value and skews volume ranking. With the defaults min=4,
// max=96, a 97/3 market is excluded while 96/4 survives.
func outsideProbabilityBounds(m *models.CanonicalMarket, min, max int) bool {
	if min <= 0 && max <= 0 {
		return false
	}
	return m.YesProbability < min || m.YesProbability > max ||
		m.NoProbability < min || m.NoProbability > max
}

// blacklisted matches configured keywords case-insensitively as substrings
// of the question and of the space-joined tag list.
func blacklisted(m *models.CanonicalMarket, blacklist []string) bool {
	if len(blacklist) == 0 {
		return false
	}
	question := strings.ToLower(m.Question)
	tagText := strings.ToLower(strings.Join(m.Tags, " "))
	for _, word := range blacklist {
		needle := strings.ToLower(strings.TrimSpace(word))
		if needle == "" {
			continue
		}
		if strings.Contains(question, needle) || strings.Contains(tagText, needle) {
			return true
		}
	}
	return false
}
