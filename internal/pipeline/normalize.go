package pipeline

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"marketboard/internal/models"
)

var half = decimal.NewFromFloat(0.5)

// normalizeEvent converts one raw event into a CanonicalMarket, or reports
// that the event contributes nothing to the output. Every rejection here is
// silent: one bad record never fails the batch.
func (p *Pipeline) normalizeEvent(ev models.RawEvent) (*models.CanonicalMarket, bool) {
	if len(ev.Markets) == 0 {
		return nil, false
	}

	market, ok := p.selectCandidate(ev.Markets)
	if !ok {
		return nil, false
	}

	if strings.TrimSpace(market.Question) == "" {
		return nil, false
	}
	if !validImageURL(market.Image) {
		return nil, false
	}
	yes, no, ok := parsePricePair(market.OutcomePrices)
	if !ok {
		return nil, false
	}
	// Both sides at exactly 0.5 is the upstream placeholder for "no trades
	// yet". One side at 0.5 is a legitimate price.
	if yes.Equal(half) && no.Equal(half) {
		return nil, false
	}
	if ev.Volume <= 0 {
		return nil, false
	}

	yesProb, noProb := normalizeProbabilities(
		int(yes.Mul(decimal.NewFromInt(100)).Round(0).IntPart()),
		int(no.Mul(decimal.NewFromInt(100)).Round(0).IntPart()),
	)

	return &models.CanonicalMarket{
		ID:             market.ID,
		Question:       market.Question,
		Description:    market.Description,
		YesPrice:       yes.InexactFloat64(),
		NoPrice:        no.InexactFloat64(),
		YesProbability: yesProb,
		NoProbability:  noProb,
		Image:          market.Image,
		Icon:           market.Icon,
		Tags:           resolveTags(ev.Tags, market.Tags),
		EndDate:        market.EndDate,
		EventName:      ev.Name,
		EventSlug:      ev.Slug,
		VolumeScore:    ev.Volume,
	}, true
}

// selectCandidate picks the market that represents the event. In "first"
// mode it is index 0 unconditionally; in "scan" mode (the default) it is the
// first market in list order that passes field-presence checks and carries a
// parseable two-outcome price pair, so an event is not lost to one broken
// sibling market.
func (p *Pipeline) selectCandidate(markets []models.RawMarket) (models.RawMarket, bool) {
	if p.Config.Selection == "first" {
		return markets[0], true
	}
	for _, m := range markets {
		if strings.TrimSpace(m.Question) == "" {
			continue
		}
		if m.Image == "" {
			continue
		}
		if _, _, ok := parsePricePair(m.OutcomePrices); !ok {
			continue
		}
		return m, true
	}
	return models.RawMarket{}, false
}

// parsePricePair requires exactly two decimal strings in [0,1].
func parsePricePair(prices models.FlexStrings) (decimal.Decimal, decimal.Decimal, bool) {
	if len(prices) != 2 {
		return decimal.Zero, decimal.Zero, false
	}
	yes, err := decimal.NewFromString(strings.TrimSpace(prices[0]))
	if err != nil {
		return decimal.Zero, decimal.Zero, false
	}
	no, err := decimal.NewFromString(strings.TrimSpace(prices[1]))
	if err != nil {
		return decimal.Zero, decimal.Zero, false
	}
	if yes.IsNegative() || no.IsNegative() {
		return decimal.Zero, decimal.Zero, false
	}
	one := decimal.NewFromInt(1)
	if yes.GreaterThan(one) || no.GreaterThan(one) {
		return decimal.Zero, decimal.Zero, false
	}
	return yes, no, true
}

func validImageURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}

// resolveTags concatenates event tags then market tags, deduplicating while
// preserving first-seen order. An empty result gets the "Other" sentinel so
// CanonicalMarket.Tags is never empty.
func resolveTags(eventTags, marketTags []string) []string {
	out := make([]string, 0, len(eventTags)+len(marketTags))
	seen := map[string]struct{}{}
	for _, tag := range append(append([]string{}, eventTags...), marketTags...) {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return []string{"Other"}
	}
	return out
}
