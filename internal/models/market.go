package models

// CanonicalMarket is the trusted internal record produced by the pipeline
// normalizer. It is never mutated after creation. Invariants held by
// construction: YesProbability+NoProbability == 100, both in [0,100], and
// Tags is non-empty (the normalizer substitutes "Other" when nothing
// resolves).
type CanonicalMarket struct {
	ID             string
	Question       string
	Description    string
	YesPrice       float64
	NoPrice        float64
	YesProbability int
	NoProbability  int
	Image          string
	Icon           string
	Tags           []string
	EndDate        string
	EventName      string
	EventSlug      string
	VolumeScore    float64
}

// MarketView is the flattened public record served by /api/markets.
type MarketView struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	Description     string   `json:"description"`
	YesPrice        float64  `json:"yesPrice"`
	NoPrice         float64  `json:"noPrice"`
	YesProbability  int      `json:"yesProbability"`
	NoProbability   int      `json:"noProbability"`
	Image           string   `json:"image"`
	Icon            string   `json:"icon"`
	Tags            []string `json:"tags"`
	EndDate         string   `json:"endDate"`
	MarketSlug      string   `json:"marketSlug"`
	EventName       string   `json:"eventName"`
	EventSlug       string   `json:"eventSlug"`
	Category        string   `json:"category"`
	Active          bool     `json:"active"`
	AcceptingOrders bool     `json:"acceptingOrders"`
	Volume          string   `json:"volume"`
	VolumeScore     float64  `json:"volumeScore"`
}
