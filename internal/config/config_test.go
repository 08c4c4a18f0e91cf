package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{"job_url": "https://example.com/posting", "port": 9090}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/posting", cfg.JobURL)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": `)

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestValidate_JobAndJobURLExclusive(t *testing.T) {
	jobFile := writeConfigFile(t, "any job text")
	cfg := Config{Job: jobFile, JobURL: "https://example.com"}

	err := cfg.Validate()

	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingReferencedFile(t *testing.T) {
	cfg := Config{SkillsFile: filepath.Join(t.TempDir(), "absent.json")}

	err := cfg.Validate()

	assert.ErrorContains(t, err, "skills_file")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JobURL: "https://example.com/posting"}
	defaults := Config{
		JobURL:      "https://ignored.example.com",
		DatabaseURL: "postgres://localhost/analyzer",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://example.com/posting", merged.JobURL)
	assert.Equal(t, "postgres://localhost/analyzer", merged.DatabaseURL)
	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultHistoryLimit, merged.HistoryLimit)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 48, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTConfig()

	assert.Error(t, err)
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")

	_, err := NewJWTConfig()

	assert.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.True(t, cfg.VerifyPassword("correct horse battery", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestNewPasswordConfig_CostRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "9")

	_, err := NewPasswordConfig()

	assert.Error(t, err)
}
