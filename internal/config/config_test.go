package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/solscan/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "info", cfg.SeverityThreshold)
	assert.Empty(t, cfg.IncludeRules)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	raw := `severity_threshold: medium
exclude_rules:
  - SOL-FUNC-NAMING
fail_on: high
ignore:
  - rule: SOL-MISSING-EVENT
    path: contracts/vendor/
    reason: third-party code
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(raw), 0o644))

	cfg, path, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.FileName), path)
	assert.Equal(t, "medium", cfg.SeverityThreshold)
	assert.Equal(t, []string{"SOL-FUNC-NAMING"}, cfg.ExcludeRules)
	assert.Equal(t, "high", cfg.FailOn)
	require.Len(t, cfg.Ignore, 1)
	assert.Equal(t, "SOL-MISSING-EVENT", cfg.Ignore[0].Rule)
	assert.Equal(t, "contracts/vendor/", cfg.Ignore[0].Path)
}

func TestLoadFindsFileInParent(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName),
		[]byte("severity_threshold: high\n"), 0o644))

	cfg, path, err := config.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.FileName), path)
	assert.Equal(t, "high", cfg.SeverityThreshold)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName),
		[]byte("severity_threshold: low\n"), 0o644))
	t.Setenv("SOLSCAN_SEVERITY_THRESHOLD", "critical")

	cfg, _, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "critical", cfg.SeverityThreshold)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName),
		[]byte("severity_threshold: [unclosed\n"), 0o644))

	_, _, err := config.Load(dir)
	assert.Error(t, err)
}
