package matching

import (
	"sort"
	"strings"

	"github.com/nagadco/tasnifoh/internal/domain/entity"
)

// DefaultMaxResults is the suggestion count used when the caller does
// not ask for a specific limit.
const DefaultMaxResults = 5

// Scoring constants. Weights reflect signal strength: the Arabic name
// is the strongest signal, whole-keyword matches come second,
// single-query-token matches last.
const (
	nameWeight        = 3.0
	keywordWeight     = 2.0
	exactKeywordBonus = 3.0
	matchThreshold    = 0.3
	tokenThreshold    = 0.5
	negativePenalty   = 0.6
	minConfidence     = 0.1
	maxEvidence       = 3
)

// MatchCategories ranks categories against a free-text store name and
// returns at most maxResults suggestions (maxResults <= 0 falls back
// to DefaultMaxResults). A blank query returns nil without scoring.
//
// Per category, evidence accumulates into totalScore/matchCount:
// name similarity above 0.3 counts ×3; an exactly-equal Arabic keyword
// adds a flat 3.0; other keyword similarity above 0.3 counts ×2; each
// query token scoring above 0.5 against a keyword counts ×1. Negative
// keywords present in the query's token set subtract 0.6 each without
// touching matchCount, so a penalty cannot be diluted by the
// denominator and can cancel a weak match entirely. Confidence is
// min(totalScore/(matchCount+1), 1.0), kept only above 0.1.
//
// Ties in confidence keep the collection order (stable sort). The
// collection itself is never mutated.
//
// Only Arabic keywords participate in scoring. The English lists are
// stored and maintained but intentionally left out until the product
// decides otherwise; do not "fix" this silently.
func MatchCategories(query string, categories []entity.Category, maxResults int) []entity.CategoryMatch {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	queryNorm := Normalize(query)
	queryTokens := Tokenize(query)

	byID := make(map[int]int, len(categories))
	for i, c := range categories {
		byID[c.ID] = i
	}

	var matches []entity.CategoryMatch
	for _, category := range categories {
		totalScore := 0.0
		matchCount := 0
		var evidence []string

		allowPartial := !category.DisallowPartial

		// Primary signal: the Arabic display name.
		if nameScore := Similarity(query, category.NameAr, allowPartial); nameScore > matchThreshold {
			totalScore += nameScore * nameWeight
			matchCount++
			evidence = appendEvidence(evidence, category.NameAr)
		}

		for _, keyword := range category.SearchKeyWordsAr {
			if Normalize(keyword) == queryNorm {
				// Exact keyword equality always dominates the
				// similarity-weighted path.
				totalScore += exactKeywordBonus
				matchCount++
				evidence = appendEvidence(evidence, keyword)
			} else if score := Similarity(query, keyword, allowPartial); score > matchThreshold {
				totalScore += score * keywordWeight
				matchCount++
				evidence = appendEvidence(evidence, keyword)
			}

			// Independent token-level pass: one word of a multi-word
			// query may strongly match a keyword even when the full
			// query does not.
			for _, token := range queryTokens {
				if score := Similarity(token, keyword, allowPartial); score > tokenThreshold {
					totalScore += score
					matchCount++
					evidence = appendEvidence(evidence, keyword)
				}
			}
		}

		totalScore -= negativeScore(queryTokens, category)

		if matchCount > 0 && totalScore > 0 {
			confidence := totalScore / float64(matchCount+1)
			if confidence > 1.0 {
				confidence = 1.0
			}
			if confidence > minConfidence {
				matches = append(matches, entity.CategoryMatch{
					Category:        category,
					ParentCategory:  resolveParent(category, categories, byID),
					Confidence:      confidence,
					MatchedKeywords: evidence,
				})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// FindBestCategory returns the single highest-confidence suggestion,
// or nil when nothing qualifies.
func FindBestCategory(query string, categories []entity.Category) *entity.CategoryMatch {
	matches := MatchCategories(query, categories, 1)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

// FilterCategories is the unscored browse filter: every category whose
// normalized Arabic name or any normalized Arabic keyword contains the
// normalized search text as a substring. An empty search returns the
// whole collection. Independent of the scoring pipeline.
func FilterCategories(search string, categories []entity.Category) []entity.Category {
	if strings.TrimSpace(search) == "" {
		return categories
	}
	normalized := Normalize(search)

	var filtered []entity.Category
	for _, category := range categories {
		if strings.Contains(Normalize(category.NameAr), normalized) {
			filtered = append(filtered, category)
			continue
		}
		for _, keyword := range category.SearchKeyWordsAr {
			if strings.Contains(Normalize(keyword), normalized) {
				filtered = append(filtered, category)
				break
			}
		}
	}
	return filtered
}

// negativeScore sums the penalty for negative keywords (both lists)
// whose normalized form appears in the query's token set.
func negativeScore(queryTokens []string, category entity.Category) float64 {
	if len(category.NegativeKeyWordsAr) == 0 && len(category.NegativeKeyWordsEn) == 0 {
		return 0
	}
	tokenSet := make(map[string]struct{}, len(queryTokens))
	for _, t := range queryTokens {
		tokenSet[t] = struct{}{}
	}
	penalty := 0.0
	for _, list := range [][]string{category.NegativeKeyWordsAr, category.NegativeKeyWordsEn} {
		for _, negative := range list {
			tok := Normalize(negative)
			if tok == "" {
				continue
			}
			if _, ok := tokenSet[tok]; ok {
				penalty += negativePenalty
			}
		}
	}
	return penalty
}

// appendEvidence keeps the first maxEvidence distinct matched strings
// in insertion order; a keyword counts once no matter how many rules
// fired for it.
func appendEvidence(evidence []string, matched string) []string {
	if len(evidence) >= maxEvidence {
		return evidence
	}
	for _, e := range evidence {
		if e == matched {
			return evidence
		}
	}
	return append(evidence, matched)
}

func resolveParent(category entity.Category, categories []entity.Category, byID map[int]int) *entity.Category {
	if category.ParentID == nil {
		return nil
	}
	idx, ok := byID[*category.ParentID]
	if !ok {
		return nil
	}
	parent := categories[idx]
	return &parent
}
