package pipeline

import (
	"sort"

	"marketboard/internal/models"
)

// rank orders markets by volume score, highest first. The sort must be
// stable: ties keep their upstream relative order so repeated runs over the
// same payload produce byte-identical output.
func rank(views []models.MarketView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].VolumeScore > views[j].VolumeScore
	})
}
