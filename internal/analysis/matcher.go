package analysis

import (
	"sort"
	"strings"
)

// MatchType classifies how a job description keyword was reconciled
// against the resume.
type MatchType string

// Match outcomes, in decreasing order of strictness.
const (
	MatchExact     MatchType = "exact"
	MatchSemantic  MatchType = "semantic"
	MatchFuzzy     MatchType = "fuzzy"
	MatchUnmatched MatchType = "unmatched"
)

// MatchResult records the outcome for a single job description keyword.
type MatchResult struct {
	Keyword     string    `json:"keyword"`
	Type        MatchType `json:"type"`
	MatchedWith string    `json:"matched_with,omitempty"`
}

// Fuzzy matching thresholds. A keyword must be longer than minFuzzyLen to
// participate; prefixes of fuzzyPrefixShort characters always compare, and
// prefixes of fuzzyPrefixLong compare once both keywords are longer than
// longPrefixMinLen. Short shared prefixes over-match on occasion; the
// looseness is a deliberate recall tradeoff and part of the scoring
// calibration.
const (
	minFuzzyLen      = 3
	fuzzyPrefixShort = 3
	fuzzyPrefixLong  = 5
	longPrefixMinLen = 5
)

// matchKeywords reconciles each JD keyword against the resume keyword set
// and raw resume text, trying exact, then synonym, then fuzzy matching.
// Results are ordered by keyword so output is deterministic.
func matchKeywords(jdKeywords, resumeKeywords map[string]struct{}, resumeTextLower string, synonyms SynonymTable) []MatchResult {
	sortedJD := sortedKeys(jdKeywords)
	sortedResume := sortedKeys(resumeKeywords)

	results := make([]MatchResult, 0, len(sortedJD))
	for _, keyword := range sortedJD {
		results = append(results, matchOne(keyword, resumeKeywords, sortedResume, resumeTextLower, synonyms))
	}
	return results
}

// matchOne applies the match tiers in priority order for one JD keyword.
func matchOne(keyword string, resumeKeywords map[string]struct{}, sortedResume []string, resumeTextLower string, synonyms SynonymTable) MatchResult {
	if _, ok := resumeKeywords[keyword]; ok {
		return MatchResult{Keyword: keyword, Type: MatchExact, MatchedWith: keyword}
	}

	// Synonym resolution is asymmetric: only the JD keyword is resolved.
	// Forms that are actual resume tokens win over raw-text substring hits,
	// so MatchedWith names a resume token whenever one exists.
	forms := synonyms.Resolve(keyword)
	for _, form := range forms {
		if _, ok := resumeKeywords[form]; ok {
			return MatchResult{Keyword: keyword, Type: MatchSemantic, MatchedWith: form}
		}
	}
	for _, form := range forms {
		if strings.Contains(resumeTextLower, form) {
			return MatchResult{Keyword: keyword, Type: MatchSemantic, MatchedWith: form}
		}
	}

	if len(keyword) > minFuzzyLen {
		for _, candidate := range sortedResume {
			if len(candidate) <= minFuzzyLen {
				continue
			}
			if fuzzyMatch(keyword, candidate) {
				return MatchResult{Keyword: keyword, Type: MatchFuzzy, MatchedWith: candidate}
			}
		}
	}

	return MatchResult{Keyword: keyword, Type: MatchUnmatched}
}

// fuzzyMatch reports whether two keywords (both longer than minFuzzyLen)
// are close enough to count as a match: one contains the other, or they
// share a short prefix, or a longer prefix when both exceed longPrefixMinLen.
func fuzzyMatch(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	if a[:fuzzyPrefixShort] == b[:fuzzyPrefixShort] {
		return true
	}
	if len(a) > longPrefixMinLen && len(b) > longPrefixMinLen && a[:fuzzyPrefixLong] == b[:fuzzyPrefixLong] {
		return true
	}
	return false
}

// keywordScore converts match results into a 0-100 coverage score.
// Defined as 0 when the JD keyword set is empty.
func keywordScore(results []MatchResult) float64 {
	if len(results) == 0 {
		return 0
	}
	matched := 0
	for _, r := range results {
		if r.Type != MatchUnmatched {
			matched++
		}
	}
	return clampScore(100 * float64(matched) / float64(len(results)))
}

// Missing-keyword ranking parameters: only unmatched terms longer than
// minMissingKeywordLen are surfaced, longest first, capped at
// maxMissingKeywords entries.
const (
	minMissingKeywordLen = 4
	maxMissingKeywords   = 30
)

// missingKeywords ranks unmatched JD keywords for the caller. Longer terms
// are assumed higher-value; ties break lexicographically so the ranking is
// deterministic.
func missingKeywords(results []MatchResult) []string {
	missing := make([]string, 0)
	for _, r := range results {
		if r.Type == MatchUnmatched && len(r.Keyword) > minMissingKeywordLen {
			missing = append(missing, r.Keyword)
		}
	}

	sort.Slice(missing, func(i, j int) bool {
		if len(missing[i]) != len(missing[j]) {
			return len(missing[i]) > len(missing[j])
		}
		return missing[i] < missing[j]
	})

	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}
	return missing
}

// sortedKeys returns the keys of a keyword set in lexical order.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
