package repositories

import (
	"fmt"

	"academy/internal/utils"
)

const defaultSimilarityThreshold = 0.3

// SearchMatcher builds the text-match predicate over courses. Three
// strategies are OR'd: accent-insensitive substring on title/short
// description, "web search" full text against the precomputed fts column,
// and trigram similarity above the threshold (typo tolerance). It only
// builds SQL; sorting and pagination stay with the catalog query.
type SearchMatcher struct {
	Threshold float64 // minimum trigram similarity; 0 means the 0.3 default
}

func (m SearchMatcher) threshold() float64 {
	if m.Threshold > 0 {
		return m.Threshold
	}
	return defaultSimilarityThreshold
}

// Condition returns the predicate SQL with placeholders numbered from
// $start, plus its bind args. A blank query returns ("", nil): the text
// filter is absent, not "matches nothing".
func (m SearchMatcher) Condition(raw string, start int) (string, []any) {
	normalized := utils.NormalizeQuery(raw)
	if normalized == "" {
		return "", nil
	}

	pattern := "%" + normalized + "%"
	cond := fmt.Sprintf(`(unaccent(lower(c.title)) LIKE unaccent($%d)`+
		` OR unaccent(lower(c.short_desc)) LIKE unaccent($%d)`+
		` OR c.fts @@ websearch_to_tsquery('simple', $%d)`+
		` OR similarity(c.search_text_normalized, unaccent($%d)) > $%d)`,
		start, start+1, start+2, start+3, start+4)

	return cond, []any{pattern, pattern, utils.TrimOrEmpty(raw), normalized, m.threshold()}
}
