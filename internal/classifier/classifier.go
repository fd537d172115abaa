package classifier

import "strings"

// Category is the closed set of dashboard categories. "all" is a UI
// pseudo-category and is never returned by Classify.
type Category string

const (
	CategoryAll           Category = "all"
	CategoryPolitics      Category = "politics"
	CategoryGeopolitics   Category = "geopolitics"
	CategoryBusiness      Category = "business"
	CategoryStocks        Category = "stocks"
	CategoryCrypto        Category = "crypto"
	CategoryTechnology    Category = "technology"
	CategoryAI            Category = "ai"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
	CategoryGaming        Category = "gaming"
	CategoryScience       Category = "science"
	CategoryClimate       Category = "climate"
	CategoryHealth        Category = "health"
	CategorySociety       Category = "society"
	CategoryOther         Category = "other"
)

// Keyword binds one lowercase keyword to a category. Table order matters:
// the substring pass returns the first entry that matches, so more specific
// keywords must come before generic ones.
type Keyword struct {
	Word     string
	Category Category
}

// Table resolves tag sets to categories. Build one with NewTable and inject
// it where needed; tests substitute smaller tables.
type Table struct {
	entries []Keyword
	exact   map[string]Category
}

func NewTable(entries []Keyword) *Table {
	exact := make(map[string]Category, len(entries))
	for _, e := range entries {
		if _, ok := exact[e.Word]; !ok {
			exact[e.Word] = e.Category
		}
	}
	return &Table{entries: entries, exact: exact}
}

// Classify maps a market's tag set to exactly one category. Exact matches
// win across all tags before any substring matching happens. The substring
// pass is deliberately bidirectional (tag contains keyword, or keyword
// contains tag), which means short keywords can catch unrelated tags; that
// approximation is accepted to keep sparse tag sets classifiable.
func (t *Table) Classify(tags []string) Category {
	if len(tags) == 0 {
		return CategoryOther
	}

	lowered := make([]string, 0, len(tags))
	for _, tag := range tags {
		lowered = append(lowered, strings.ToLower(tag))
	}

	for _, tag := range lowered {
		if cat, ok := t.exact[tag]; ok {
			return cat
		}
	}

	for _, tag := range lowered {
		for _, e := range t.entries {
			if strings.Contains(tag, e.Word) || strings.Contains(e.Word, tag) {
				return e.Category
			}
		}
	}

	return CategoryOther
}
