package models

import "encoding/json"

// RawEvent is one element of the Gamma /events listing. Field shapes are
// whatever upstream sends; nothing here is trusted until it passes through
// the pipeline normalizer.
type RawEvent struct {
	ID      string      `json:"id"`
	Slug    string      `json:"slug"`
	Name    string      `json:"name"`
	Markets []RawMarket `json:"markets"`
	Tags    FlexTags    `json:"tags"`
	Volume  float64     `json:"volume"`
}

// RawMarket is a single yes/no market inside an event.
type RawMarket struct {
	ID            string      `json:"id"`
	Question      string      `json:"question"`
	Description   string      `json:"description"`
	OutcomePrices FlexStrings `json:"outcomePrices"`
	Tags          FlexTags    `json:"tags"`
	Image         string      `json:"image"`
	Icon          string      `json:"icon"`
	EndDate       string      `json:"end_date"`
	Volume        float64     `json:"volume"`
	Liquidity     float64     `json:"liquidity"`
}

// FlexStrings accepts a JSON array of strings or a JSON string that itself
// encodes such an array. Gamma returns outcomePrices in both forms depending
// on the endpoint. Anything else decodes to nil so that one odd market cannot
// abort the surrounding batch decode; the normalizer rejects nil later.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	*f = nil
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		*f = direct
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil
	}
	var nested []string
	if err := json.Unmarshal([]byte(encoded), &nested); err != nil {
		return nil
	}
	*f = nested
	return nil
}

// FlexTags accepts an array whose elements are plain strings or objects with
// a "label" field. Elements of any other shape are dropped.
type FlexTags []string

func (f *FlexTags) UnmarshalJSON(data []byte) error {
	*f = nil
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var plain string
		if err := json.Unmarshal(item, &plain); err == nil {
			out = append(out, plain)
			continue
		}
		var obj struct {
			Label string `json:"label"`
		}
		if err := json.Unmarshal(item, &obj); err == nil && obj.Label != "" {
			out = append(out, obj.Label)
		}
	}
	*f = out
	return nil
}
