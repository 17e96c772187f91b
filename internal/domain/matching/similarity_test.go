package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nagadco/tasnifoh/internal/domain/matching"
)

func TestSimilarity_ExactMatch(t *testing.T) {
	assert.Equal(t, 1.0, matching.Similarity("مخبز", "مخبز", true))
	// Exact after normalization, regardless of diacritics and variants.
	assert.Equal(t, 1.0, matching.Similarity("مَكتبة", "مكتبه", false))
}

func TestSimilarity_SingleTokenContainment(t *testing.T) {
	assert.Equal(t, 0.6, matching.Similarity("مخبز", "مخبز الكوكيز", true))
	// Symmetric: single-token target contained in multi-token query.
	assert.Equal(t, 0.6, matching.Similarity("مخبز الكوكيز", "مخبز", true))
}

func TestSimilarity_ContainmentDisabledFallsBackToJaccard(t *testing.T) {
	// Same pair as above: {مخبز} ∩ {مخبز, الكوكيز} = 1, union = 2.
	assert.InDelta(t, 0.5, matching.Similarity("مخبز", "مخبز الكوكيز", false), 1e-9)
}

func TestSimilarity_Jaccard(t *testing.T) {
	// {قهوه, عربيه} vs {قهوه, تركيه}: intersection 1, union 3.
	assert.InDelta(t, 1.0/3.0, matching.Similarity("قهوة عربية", "قهوة تركية", false), 1e-9)
	assert.Equal(t, 0.0, matching.Similarity("مخبز", "صيدلية", true))
}

func TestSimilarity_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, matching.Similarity("", "", true))
	assert.Equal(t, 0.0, matching.Similarity("مخبز", "", true))
	assert.Equal(t, 0.0, matching.Similarity("", "مخبز", true))
}
