package analysis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Grammar heuristic bounds. Only the first maxSentencesInspected sentences
// are checked and at most maxGrammarIssues findings are reported; the
// penalty each finding contributes is capped overall.
const (
	maxSentencesInspected = 10
	maxGrammarIssues      = 8
	penaltyPerIssue       = 2
	maxGrammarPenalty     = 10
	grammarContextRadius  = 40
)

// GrammarIssue is a single style finding with enough positional context
// for a caller to render or apply the suggested fix.
type GrammarIssue struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
	Context     string   `json:"context"`
	Offset      int      `json:"offset"`
	Length      int      `json:"length"`
}

var multiSpacePattern = regexp.MustCompile(` {2,}`)

// checkGrammar runs the lightweight sentence-level style checks and
// returns the findings plus the penalty they contribute to the composite
// score.
func checkGrammar(text string) ([]GrammarIssue, int) {
	issues := make([]GrammarIssue, 0, maxGrammarIssues)
	issues = appendCapitalizationIssues(issues, text)
	issues = appendSpacingIssues(issues, text)

	penalty := penaltyPerIssue * len(issues)
	if penalty > maxGrammarPenalty {
		penalty = maxGrammarPenalty
	}
	return issues, penalty
}

// appendCapitalizationIssues flags sentences after the first that start
// with a lowercase letter, offering the capitalized form as the fix.
func appendCapitalizationIssues(issues []GrammarIssue, text string) []GrammarIssue {
	inspected := 0
	start := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '.' && text[i] != '!' && text[i] != '?' {
			continue
		}

		sentence := text[start:i]
		sentenceStart := start
		start = i + 1

		trimmed := strings.TrimLeft(sentence, " \t\n\r")
		if trimmed == "" {
			continue
		}
		inspected++
		if inspected > maxSentencesInspected {
			break
		}

		// The document's opening sentence is exempt.
		if inspected == 1 {
			continue
		}
		if len(issues) >= maxGrammarIssues {
			break
		}

		first, size := utf8.DecodeRuneInString(trimmed)
		if !unicode.IsLower(first) {
			continue
		}

		offset := sentenceStart + (len(sentence) - len(trimmed))
		capitalized := string(unicode.ToUpper(first)) + trimmed[size:]
		issues = append(issues, GrammarIssue{
			Message:     "Sentence does not start with a capital letter",
			Suggestions: []string{capitalized},
			Context:     contextSnippet(text, offset, len(trimmed)),
			Offset:      offset,
			Length:      len(trimmed),
		})
	}
	return issues
}

// appendSpacingIssues flags runs of two or more spaces, with a single
// space as the suggested fix.
func appendSpacingIssues(issues []GrammarIssue, text string) []GrammarIssue {
	for _, loc := range multiSpacePattern.FindAllStringIndex(text, -1) {
		if len(issues) >= maxGrammarIssues {
			break
		}
		issues = append(issues, GrammarIssue{
			Message:     "Multiple consecutive spaces",
			Suggestions: []string{" "},
			Context:     contextSnippet(text, loc[0], loc[1]-loc[0]),
			Offset:      loc[0],
			Length:      loc[1] - loc[0],
		})
	}
	return issues
}

// contextSnippet returns the text surrounding a finding with newlines
// flattened, for display alongside the message.
func contextSnippet(text string, offset, length int) string {
	start := offset - grammarContextRadius
	if start < 0 {
		start = 0
	}
	end := offset + length + grammarContextRadius
	if end > len(text) {
		end = len(text)
	}
	return strings.ReplaceAll(text[start:end], "\n", " ")
}
