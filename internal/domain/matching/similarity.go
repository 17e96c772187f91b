package matching

import "strings"

// Similarity scores how close two strings are after normalization,
// in [0, 1]. Rules are tried in priority order and the first hit wins:
//
//  1. exact normalized equality (non-empty) → 1.0
//  2. single-token containment, only when allowPartial: one side is a
//     single token that appears verbatim among the other side's
//     tokens → 0.6. Deliberately not generalized to substring
//     containment, which produces false positives on short words.
//  3. Jaccard similarity over the two token sets.
//
// The function knows nothing about categories; it is reused for name,
// keyword and token-level comparisons.
func Similarity(a, b string, allowPartial bool) float64 {
	na := Normalize(a)
	nb := Normalize(b)

	if na != "" && na == nb {
		return 1.0
	}

	t1 := strings.Fields(na)
	t2 := strings.Fields(nb)

	if allowPartial {
		if (len(t1) == 1 && containsToken(t2, t1[0])) || (len(t2) == 1 && containsToken(t1, t2[0])) {
			return 0.6
		}
	}

	return jaccard(t1, t2)
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

// jaccard computes |intersection| / |union| over the two token sets.
// Two empty sets score 0.
func jaccard(t1, t2 []string) float64 {
	union := make(map[string]struct{}, len(t1)+len(t2))
	set1 := make(map[string]struct{}, len(t1))
	for _, t := range t1 {
		set1[t] = struct{}{}
		union[t] = struct{}{}
	}
	intersection := 0
	seen := make(map[string]struct{}, len(t2))
	for _, t := range t2 {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		union[t] = struct{}{}
		if _, ok := set1[t]; ok {
			intersection++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}
