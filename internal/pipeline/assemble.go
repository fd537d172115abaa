package pipeline

import (
	"strings"

	"github.com/shopspring/decimal"

	"marketboard/internal/models"
)

// TouchUp is a textual substitution applied to the question and each tag
// right before output. It is presentation fix-up, not domain logic, so it
// stays pluggable.
type TouchUp func(string) string

// NewYearFix rewrites a stale year in display text, e.g. "2025" -> "2026"
// for forward-looking questions whose upstream copy lags the calendar.
func NewYearFix(from, to string) TouchUp {
	if from == "" || from == to {
		return func(s string) string { return s }
	}
	return func(s string) string { return strings.ReplaceAll(s, from, to) }
}

func (p *Pipeline) assemble(canon *models.CanonicalMarket) models.MarketView {
	touchUp := NewYearFix(p.Config.YearFixFrom, p.Config.YearFixTo)

	tags := make([]string, len(canon.Tags))
	for i, tag := range canon.Tags {
		tags[i] = touchUp(tag)
	}

	category := ""
	if p.Table != nil {
		category = string(p.Table.Classify(canon.Tags))
	}

	return models.MarketView{
		ID:              canon.ID,
		Question:        touchUp(canon.Question),
		Description:     canon.Description,
		YesPrice:        canon.YesPrice,
		NoPrice:         canon.NoPrice,
		YesProbability:  canon.YesProbability,
		NoProbability:   canon.NoProbability,
		Image:           canon.Image,
		Icon:            canon.Icon,
		Tags:            tags,
		EndDate:         canon.EndDate,
		MarketSlug:      canon.ID,
		EventName:       canon.EventName,
		EventSlug:       canon.EventSlug,
		Category:        category,
		Active:          true,
		AcceptingOrders: true,
		Volume:          formatVolume(canon.VolumeScore, p.Config.DefaultVolumeDisplay),
		VolumeScore:     canon.VolumeScore,
	}
}

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// formatVolume renders a volume score as a display string: $X.XM at a
// million and up, $X.XK at a thousand and up, whole dollars below that, and
// the configured default when the score is absent.
func formatVolume(score float64, fallback string) string {
	if score <= 0 {
		return fallback
	}
	d := decimal.NewFromFloat(score)
	switch {
	case d.GreaterThanOrEqual(million):
		return "$" + d.Div(million).StringFixed(1) + "M"
	case d.GreaterThanOrEqual(thousand):
		return "$" + d.Div(thousand).StringFixed(1) + "K"
	default:
		return "$" + d.StringFixed(0)
	}
}
