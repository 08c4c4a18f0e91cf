// Package skillcfg loads the skills list and synonym clusters the scoring
// engine is calibrated with. Both are versioned JSON files validated
// against embedded schemas, so calibration can evolve without touching
// matching logic; built-in defaults apply when no file is configured.
package skillcfg

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/schemas"
)

//go:embed skills.schema.json synonyms.schema.json
var schemaFiles embed.FS

// DefaultSkills returns the built-in skills list used when no skills file
// is configured.
func DefaultSkills() []string {
	return []string{"Python", "Machine Learning", "Data Science", "React", "SQL"}
}

// LoadSkills reads and validates a skills JSON file (a non-empty array of
// skill names). An empty path selects the built-in defaults.
func LoadSkills(path string) ([]string, error) {
	if path == "" {
		return DefaultSkills(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file %s: %w", path, err)
	}

	if err := validateAgainst("skills.schema.json", data); err != nil {
		return nil, fmt.Errorf("invalid skills file %s: %w", path, err)
	}

	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills file %s: %w", path, err)
	}
	return skills, nil
}

// LoadSynonyms reads and validates a synonym-cluster JSON file (object of
// concept name to surface forms). An empty path selects the built-in
// table.
func LoadSynonyms(path string) (analysis.SynonymTable, error) {
	if path == "" {
		return analysis.DefaultSynonymTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonyms file %s: %w", path, err)
	}

	if err := validateAgainst("synonyms.schema.json", data); err != nil {
		return nil, fmt.Errorf("invalid synonyms file %s: %w", path, err)
	}

	var table analysis.SynonymTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse synonyms file %s: %w", path, err)
	}
	return table, nil
}

// validateAgainst checks document content against one of the embedded
// schemas.
func validateAgainst(schemaName string, document []byte) error {
	schema, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaName, err)
	}
	return schemas.ValidateJSONString(string(schema), string(document))
}
