package analysis

import (
	"regexp"
	"strings"
)

// Minimum token lengths for the two keyword extraction call sites.
// Keyword matching drops tokens of length <= minKeywordTokenLen; phrase
// extraction requires words longer than minPhraseWordLen.
const (
	minKeywordTokenLen = 2
	minPhraseWordLen   = 3
)

// tokenPunctCutset is stripped from both ends of whitespace-delimited
// words in the phrase path, where sentence punctuation adheres.
const tokenPunctCutset = `.,:;()[]{}"'`

// tokenPattern matches word tokens, permitting internal +, /, # and -
// so that terms like "c++", "ci/cd", "c#" and "t-sql" survive intact.
var tokenPattern = regexp.MustCompile(`[a-z0-9+#/-]+`)

// stopwords are excluded from keyword sets and phrase extraction.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "if": true, "then": true, "than": true, "so": true,
	"as": true, "at": true, "by": true, "for": true, "from": true,
	"in": true, "into": true, "of": true, "on": true, "to": true,
	"with": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "can": true, "may": true,
	"this": true, "that": true, "you": true, "your": true, "our": true,
	"it": true, "its": true, "we": true, "they": true, "their": true,
}

// ExtractKeywords produces the set of normalized lowercase keywords from
// text. The token pattern already excludes punctuation, so tokens need no
// further trimming. Tokens of length <= minLen and stopwords are dropped.
// Empty input yields an empty set.
func ExtractKeywords(text string, minLen int) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if len(token) <= minLen || stopwords[token] {
			continue
		}
		keywords[token] = struct{}{}
	}
	return keywords
}

// normalizeWord lowercases a whitespace-delimited word and strips edge
// punctuation. Used where word order matters and the set-based extractor
// cannot be.
func normalizeWord(word string) string {
	return strings.Trim(strings.ToLower(word), tokenPunctCutset)
}
