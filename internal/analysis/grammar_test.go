package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckGrammar_CleanText(t *testing.T) {
	issues, penalty := checkGrammar("Led the platform team. Shipped the billing service.")

	assert.Empty(t, issues)
	assert.Equal(t, 0, penalty)
}

func TestCheckGrammar_LowercaseSentenceStart(t *testing.T) {
	text := "Led the team. shipped the service."

	issues, penalty := checkGrammar(text)

	require.Len(t, issues, 1)
	assert.Equal(t, "Sentence does not start with a capital letter", issues[0].Message)
	require.Len(t, issues[0].Suggestions, 1)
	assert.Equal(t, "Shipped the service", issues[0].Suggestions[0])
	assert.Equal(t, strings.Index(text, "shipped"), issues[0].Offset)
	assert.Equal(t, 2, penalty)
}

func TestCheckGrammar_FirstSentenceExempt(t *testing.T) {
	issues, _ := checkGrammar("started as an intern. Promoted twice.")

	assert.Empty(t, issues)
}

func TestCheckGrammar_ConsecutiveSpaces(t *testing.T) {
	text := "Managed a team  of six engineers."

	issues, penalty := checkGrammar(text)

	require.Len(t, issues, 1)
	assert.Equal(t, "Multiple consecutive spaces", issues[0].Message)
	assert.Equal(t, []string{" "}, issues[0].Suggestions)
	assert.Equal(t, strings.Index(text, "  "), issues[0].Offset)
	assert.Equal(t, 2, issues[0].Length)
	assert.Equal(t, 2, penalty)
}

func TestCheckGrammar_CombinedFindingsPenaltyFour(t *testing.T) {
	issues, penalty := checkGrammar("This is fine.  it has issues.")

	capitalization := 0
	spacing := 0
	for _, issue := range issues {
		switch issue.Message {
		case "Sentence does not start with a capital letter":
			capitalization++
		case "Multiple consecutive spaces":
			spacing++
		}
	}

	assert.Equal(t, 1, capitalization)
	assert.GreaterOrEqual(t, spacing, 1)
	assert.Equal(t, 4, penalty)
}

func TestCheckGrammar_FindingsCappedAtEight(t *testing.T) {
	text := strings.Repeat("word  another ", 12)

	issues, penalty := checkGrammar(text)

	assert.Len(t, issues, maxGrammarIssues)
	assert.Equal(t, maxGrammarPenalty, penalty)
}

func TestCheckGrammar_OnlyFirstTenSentencesInspected(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("First sentence here.")
	for i := 0; i < 12; i++ {
		sb.WriteString(" Proper sentence.")
	}
	// The lowercase sentence sits beyond the inspection window.
	sb.WriteString(" lowercase tail sentence.")

	issues, _ := checkGrammar(sb.String())

	assert.Empty(t, issues)
}

func TestCheckGrammar_ContextSurroundsFinding(t *testing.T) {
	text := "Opening statement goes here. then a lowercase follow-up with plenty of trailing words."

	issues, _ := checkGrammar(text)

	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].Context, "then a lowercase")
}

func TestCheckGrammar_EmptyText(t *testing.T) {
	issues, penalty := checkGrammar("")

	assert.Empty(t, issues)
	assert.Equal(t, 0, penalty)
}
