package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nagadco/tasnifoh/internal/domain/matching"
)

func TestNormalize_StripsDiacritics(t *testing.T) {
	assert.Equal(t, "مخبز", matching.Normalize("مَخْبَز"))
}

func TestNormalize_FoldsLetterVariants(t *testing.T) {
	// Hamza-bearing alef variants fold to bare alef.
	assert.Equal(t, matching.Normalize("احمد"), matching.Normalize("أحمد"))
	// Taa marbuta folds to haa.
	assert.Equal(t, matching.Normalize("مكتبه"), matching.Normalize("مكتبة"))
	// Alef maksura folds to yaa.
	assert.Equal(t, matching.Normalize("مقهي"), matching.Normalize("مقهى"))
}

func TestNormalize_SplitsAdjoinedScripts(t *testing.T) {
	assert.Equal(t, "shopping زهور", matching.Normalize("Shoppingزهور"))
	assert.Equal(t, "زهور shopping", matching.Normalize("زهورShopping"))
}

func TestNormalize_RemovesDigitsAndPunctuation(t *testing.T) {
	assert.Equal(t, "كافيه", matching.Normalize("كافيه 24/7!"))
	assert.Equal(t, "مطعم", matching.Normalize("مطعم ٢٤"))
	assert.Equal(t, "coffee shop", matching.Normalize("Coffee_Shop-1"))
	assert.Equal(t, "ورد", matching.Normalize("ورد 🌹"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "مخبز البلد", matching.Normalize("  مخبز   البلد "))
	assert.Equal(t, "", matching.Normalize(""))
	assert.Equal(t, "", matching.Normalize("   "))
}

func TestNormalize_Idempotent(t *testing.T) {
	samples := []string{
		"مَخْبَز الكوكيز",
		"Shoppingزهور",
		"كافيه 24/7 Coffee_Shop!",
		"أحمد ومحمد في الرياض",
		"",
		"   ",
		"🌹🌹",
	}
	for _, s := range samples {
		once := matching.Normalize(s)
		assert.Equal(t, once, matching.Normalize(once), "input %q", s)
	}
}

func TestTokenize_DropsStopWordsAndShortTokens(t *testing.T) {
	assert.Equal(t, []string{"مخبز", "الرياض"}, matching.Tokenize("مخبز في الرياض"))
	assert.Equal(t, []string{"ورد", "هدايا"}, matching.Tokenize("ورد و هدايا"))
	assert.Empty(t, matching.Tokenize("في من ال"))
}

func TestTokenize_PreservesOrderAndDuplicates(t *testing.T) {
	assert.Equal(t, []string{"مخبز", "حلويات", "مخبز"}, matching.Tokenize("مخبز حلويات مخبز"))
}
