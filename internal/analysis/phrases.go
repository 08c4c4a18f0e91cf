package analysis

import "strings"

// Phrase scoring parameters. A JD with no extractable bigrams is not
// penalized as if phrases were checked and failed, hence the nonzero
// default; the flat bonus offsets the strictness of exact-phrase substring
// matching relative to the keyword matcher.
const (
	noPhraseDefaultScore = 60.0
	phraseMatchBonus     = 20.0
)

// extractPhrases slides a window of two over the JD's word sequence and
// keeps bigrams whose words are both longer than minPhraseWordLen and not
// stopwords. Order matters here, so the raw sequence is used rather than
// the deduplicated keyword set; duplicate bigrams are kept.
func extractPhrases(jobDescription string) []string {
	words := strings.Fields(jobDescription)
	phrases := make([]string, 0)
	for i := 0; i+1 < len(words); i++ {
		first := normalizeWord(words[i])
		second := normalizeWord(words[i+1])
		if len(first) <= minPhraseWordLen || len(second) <= minPhraseWordLen {
			continue
		}
		if stopwords[first] || stopwords[second] {
			continue
		}
		phrases = append(phrases, first+" "+second)
	}
	return phrases
}

// phraseScore measures how many JD bigrams appear verbatim in the resume
// text (case-insensitive, single space separator), scaled to 0-100.
func phraseScore(jobDescription, resumeText string) float64 {
	phrases := extractPhrases(jobDescription)
	if len(phrases) == 0 {
		return noPhraseDefaultScore
	}

	resumeLower := strings.ToLower(resumeText)
	matched := 0
	for _, phrase := range phrases {
		if strings.Contains(resumeLower, phrase) {
			matched++
		}
	}

	score := 100 * float64(matched) / float64(len(phrases))
	if score > 0 {
		score += phraseMatchBonus
	}
	return clampScore(score)
}
