// Package analysis scores a resume against a job description using
// lexical heuristics: keyword reconciliation (exact, synonym, fuzzy),
// bigram phrase presence, quantified-achievement counting and a small
// grammar check, blended into a bounded composite score.
package analysis

import (
	"math"
	"strings"
)

// Composite score weights. The similarity term deliberately reuses
// ats_score, so the JD-derived signal enters the final blend twice; the
// calibration depends on it and it must not be folded into a single term
// without re-tuning.
const (
	keywordWeight     = 0.70
	phraseWeight      = 0.20
	achievementWeight = 0.10

	skillWeight      = 0.15
	atsWeight        = 0.40
	similarityWeight = 0.45

	fallbackSkillWeight   = 0.70
	fallbackQualityWeight = 0.30

	// contentQualityDivisor converts resume length into a crude substance
	// proxy when no job description is supplied.
	contentQualityDivisor = 50.0
)

// Report is the immutable result of one scoring call.
type Report struct {
	Score            int            `json:"score"`
	SkillScore       int            `json:"skill_score"`
	KeywordScore     float64        `json:"keyword_score"`
	PhraseScore      float64        `json:"phrase_score"`
	AchievementScore float64        `json:"achievement_score"`
	ATSScore         float64        `json:"ats_score"`
	SimilarityWithJD *float64       `json:"similarity_with_jd"`
	SkillsFound      []string       `json:"skills_found"`
	MissingKeywords  []string       `json:"missing_keywords"`
	GrammarIssues    []GrammarIssue `json:"grammar_issues"`
	GrammarPenalty   int            `json:"grammar_penalty"`

	// Matches is the per-keyword reconciliation detail; empty when no job
	// description was supplied.
	Matches []MatchResult `json:"-"`
}

// Analyzer scores resumes against job descriptions. It holds only
// immutable configuration, so a single Analyzer is safe for concurrent
// use.
type Analyzer struct {
	synonyms SynonymTable
	skills   []string
}

// NewAnalyzer builds an Analyzer from a synonym table and a skills list.
// A nil table selects the built-in clusters; the skills list may be empty,
// in which case the skill score is zero.
func NewAnalyzer(synonyms SynonymTable, skills []string) *Analyzer {
	if synonyms == nil {
		synonyms = DefaultSynonymTable()
	}
	return &Analyzer{synonyms: synonyms, skills: skills}
}

// Analyze scores resumeText against jobDescription and returns a fresh
// Report. jobDescription may be empty; the composite then falls back to
// the skills and content-quality formula and SimilarityWithJD is nil.
func (a *Analyzer) Analyze(resumeText, jobDescription string) *Report {
	resumeLower := strings.ToLower(resumeText)

	skillsFound, skillScore := a.matchSkills(resumeLower)
	issues, penalty := checkGrammar(resumeText)

	report := &Report{
		SkillScore:      skillScore,
		SkillsFound:     skillsFound,
		MissingKeywords: []string{},
		GrammarIssues:   issues,
		GrammarPenalty:  penalty,
	}

	if strings.TrimSpace(jobDescription) == "" {
		quality := math.Min(100, float64(len(resumeText))/contentQualityDivisor)
		final := fallbackSkillWeight*float64(skillScore) + fallbackQualityWeight*quality - float64(penalty)
		report.Score = int(clampScore(math.Round(final)))
		return report
	}

	jdKeywords := ExtractKeywords(jobDescription, minKeywordTokenLen)
	resumeKeywords := ExtractKeywords(resumeText, minKeywordTokenLen)
	matches := matchKeywords(jdKeywords, resumeKeywords, resumeLower, a.synonyms)

	report.Matches = matches
	report.KeywordScore = keywordScore(matches)
	report.PhraseScore = phraseScore(jobDescription, resumeText)
	report.AchievementScore = achievementScore(resumeText)
	report.MissingKeywords = missingKeywords(matches)

	ats := round2(keywordWeight*report.KeywordScore +
		phraseWeight*report.PhraseScore +
		achievementWeight*report.AchievementScore)
	report.ATSScore = ats
	similarity := ats
	report.SimilarityWithJD = &similarity

	final := skillWeight*float64(skillScore) +
		atsWeight*ats +
		similarityWeight*ats -
		float64(penalty)
	report.Score = int(clampScore(math.Round(final)))
	return report
}

// matchSkills checks the configured skills list against the lowercased
// resume text by raw containment, returning the skills found (original
// casing preserved) and the 0-100 coverage score.
func (a *Analyzer) matchSkills(resumeLower string) ([]string, int) {
	found := make([]string, 0)
	for _, skill := range a.skills {
		if strings.Contains(resumeLower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	if len(a.skills) == 0 {
		return found, 0
	}
	score := math.Round(100 * float64(len(found)) / float64(len(a.skills)))
	return found, int(clampScore(score))
}

// clampScore bounds a score component to [0, 100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// round2 rounds to two decimal places, the precision ats_score is
// reported at.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
