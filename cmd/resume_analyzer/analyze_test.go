package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/analysis"
)

func resetFlags() {
	analyzeResume, analyzeJob, analyzeJobURL = "", "", ""
	analyzeConfigFile, analyzeSkills, analyzeSynonyms = "", "", ""
	analyzeFormat = "json"
	analyzeVerbose = false
	batchJob, batchJobURL, batchSkills, batchSynonyms = "", "", "", ""
	batchConcurrency = 4
	batchVerbose = false
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAnalyzeCommand_WithJobFile(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt",
		"5 years of Python and MySQL development, improved throughput by 20%.")
	job := writeFile(t, dir, "jd.txt", "Python SQL database experience required")

	out, err := executeCommand(t, "analyze", "--resume", resume, "--job", job)

	require.NoError(t, err)
	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 43, report.Score)
	assert.InDelta(t, 44.00, report.ATSScore, 0.001)
	require.NotNil(t, report.SimilarityWithJD)
	assert.Contains(t, report.SkillsFound, "Python")
}

func TestAnalyzeCommand_WithoutJob(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", "Experienced Python developer and data scientist.")

	out, err := executeCommand(t, "analyze", "--resume", resume)

	require.NoError(t, err)
	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Nil(t, report.SimilarityWithJD)
}

func TestAnalyzeCommand_TextFormat(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt",
		"5 years of Python and MySQL development, improved throughput by 20%.")
	job := writeFile(t, dir, "jd.txt", "Python SQL database experience required")

	out, err := executeCommand(t, "analyze", "--resume", resume, "--job", job, "--format", "text")

	require.NoError(t, err)
	assert.Contains(t, out, "RESUME ANALYSIS")
	assert.Contains(t, out, "SKILLS FOUND")
	assert.NotContains(t, out, `"score"`)
}

func TestAnalyzeCommand_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", "Python developer.")

	_, err := executeCommand(t, "analyze", "--resume", resume, "--format", "yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestAnalyzeCommand_MissingResume(t *testing.T) {
	_, err := executeCommand(t, "analyze")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--resume is required")
}

func TestAnalyzeCommand_JobAndJobURLExclusive(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", "text")
	job := writeFile(t, dir, "jd.txt", "text")

	_, err := executeCommand(t, "analyze",
		"--resume", resume, "--job", job, "--job-url", "https://example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestAnalyzeCommand_ConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", "Python developer.")
	cfgPath := writeFile(t, dir, "config.json", `{"resume": `+mustQuote(resume)+`}`)

	out, err := executeCommand(t, "analyze", "--config", cfgPath)

	require.NoError(t, err)
	assert.Contains(t, out, `"score"`)
}

func TestAnalyzeCommand_CustomSkillsFile(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", "Deep Rust and Cargo experience.")
	skills := writeFile(t, dir, "skills.json", `["Rust", "Cargo", "Erlang"]`)

	out, err := executeCommand(t, "analyze", "--resume", resume, "--skills", skills)

	require.NoError(t, err)
	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.ElementsMatch(t, []string{"Rust", "Cargo"}, report.SkillsFound)
}

func TestBatchCommand_RanksByScore(t *testing.T) {
	dir := t.TempDir()
	strong := writeFile(t, dir, "strong.txt",
		"Senior Python engineer, 8 years of SQL and database work, cut latency by 40%.")
	weak := writeFile(t, dir, "weak.txt", "Retail associate with customer service focus.")
	job := writeFile(t, dir, "jd.txt", "Python SQL database experience required")

	out, err := executeCommand(t, "batch", "--job", job, strong, weak)

	require.NoError(t, err)
	var results []batchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, strong, results[0].File)
	require.NotNil(t, results[0].Report)
	require.NotNil(t, results[1].Report)
	assert.Greater(t, results[0].Report.Score, results[1].Report.Score)
}

func TestBatchCommand_ReportsPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "Python developer.")
	missing := filepath.Join(dir, "missing.txt")

	out, err := executeCommand(t, "batch", good, missing)

	require.NoError(t, err)
	var results []batchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, good, results[0].File)
	assert.NotEmpty(t, results[1].Error)
	assert.Nil(t, results[1].Report)
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
