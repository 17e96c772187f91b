// Package matching implements the store-name → category suggestion
// core: Arabic-aware text normalization, tokenization and weighted
// fuzzy scoring over the taxonomy. Everything in this package is a
// pure function over the in-memory category collection; persistence
// and HTTP live elsewhere.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Tashkeel and harakat (U+064B..U+065F). They carry no lexical
// distinction for matching purposes.
var arabicMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x064B, Hi: 0x065F, Stride: 1}},
}

// foldArabic unifies letterforms that writers use interchangeably:
// hamza-bearing alef variants → bare alef, taa marbuta → haa,
// alef maksura → yaa.
var foldArabic = runes.Map(func(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ':
		return 'ا'
	case 'ة':
		return 'ه'
	case 'ى':
		return 'ي'
	}
	return r
})

var arabicNormalizer = transform.Chain(runes.Remove(runes.In(arabicMarks)), foldArabic)

// Stop words dropped during tokenization: conjunctions, prepositions,
// the definite article and its attached forms.
var stopWords = map[string]struct{}{
	"و": {}, "في": {}, "من": {}, "إلى": {}, "على": {}, "عن": {},
	"أو": {}, "ل": {}, "لل": {}, "ال": {}, "با": {}, "ب": {},
}

func isArabicRune(r rune) bool { return r >= 0x0600 && r <= 0x06FF }

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// splitScripts inserts a space at every boundary between an Arabic run
// and a Latin run, so adjoined words like "Shoppingزهور" tokenize as
// two words.
func splitScripts(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	var prev rune
	for i, r := range s {
		if i > 0 {
			if (isArabicRune(prev) && isLatinLetter(r)) || (isLatinLetter(prev) && isArabicRune(r)) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func isDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= '٠' && r <= '٩')
}

// Normalize canonicalizes a raw string for comparison. The pipeline
// order matters: script splitting first, then diacritic stripping and
// letterform folding, then digit/punctuation scrubbing, lowercasing
// and whitespace collapsing. The result is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	s := splitScripts(text)
	s, _, _ = transform.String(arabicNormalizer, s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case isDigit(r), r == '_', r == '-':
			b.WriteByte(' ')
		case unicode.IsLetter(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(strings.ToLower(b.String())), " ")
}

// Tokenize normalizes the text and splits it into matching tokens:
// whitespace-delimited words of at least two runes with stop words
// removed. Order and duplicates are preserved; downstream comparisons
// treat token lists as sets, which absorbs the duplication.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	tokens := fields[:0]
	for _, w := range fields {
		if len([]rune(w)) <= 1 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
