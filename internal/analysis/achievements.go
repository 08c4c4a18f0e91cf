package analysis

import "regexp"

// pointsPerQuantifiedStatement converts counted metrics into score points.
const pointsPerQuantifiedStatement = 10

// quantifiedPattern matches a number token optionally followed by a
// percent sign ("30%", "2.5", "12").
var quantifiedPattern = regexp.MustCompile(`\d+(?:\.\d+)?%?`)

// achievementScore rewards quantified statements ("reduced latency by
// 30%") as a signal of concreteness, independent of keyword overlap.
func achievementScore(resumeText string) float64 {
	count := len(quantifiedPattern.FindAllString(resumeText, -1))
	return clampScore(float64(count * pointsPerQuantifiedStatement))
}
