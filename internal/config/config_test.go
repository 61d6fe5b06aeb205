package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyhome/solidity-gas-optimizer/internal/rules"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvFormat, EnvMinSeverity, EnvFailOn, EnvRules} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, path, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "low", cfg.MinSeverity)
	assert.Equal(t, rules.DefaultNames(), cfg.EnabledRules())
}

func TestLoadSearchesParents(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	want := writeConfig(t, root, `
rules:
  unchecked-math: {enabled: true}
  public-vs-external:
    enabled: false
minSeverity: medium
failOn: high
format: json
`)
	nested := filepath.Join(root, "contracts", "tokens")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, path, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "medium", cfg.MinSeverity)
	assert.Equal(t, "high", cfg.FailOn)

	enabled := cfg.EnabledRules()
	assert.Contains(t, enabled, rules.UncheckedMathName)
	assert.NotContains(t, enabled, rules.PublicVsExternalName)
	assert.Contains(t, enabled, rules.StorageReadInLoopName, "unlisted rules keep their default")
}

func TestEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "format: json\nminSeverity: high\n")

	t.Setenv(EnvFormat, "sarif")
	t.Setenv(EnvFailOn, "medium")
	t.Setenv(EnvRules, "use-custom-errors, unchecked-math")

	cfg, _, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, FormatSARIF, cfg.Format)
	assert.Equal(t, "high", cfg.MinSeverity)
	assert.Equal(t, "medium", cfg.FailOn)
	assert.Equal(t, []string{rules.UseCustomErrorsName, rules.UncheckedMathName}, cfg.EnabledRules())
}

func TestSetRules(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		cfg := Default()
		cfg.SetRules([]string{"all"})
		assert.Len(t, cfg.EnabledRules(), len(rules.Catalog()))
	})

	t.Run("unknown name fails validation", func(t *testing.T) {
		cfg := Default()
		cfg.SetRules([]string{"storage-read-in-loop", "gas-golf"})
		assert.ErrorContains(t, cfg.Validate(), `unknown rule "gas-golf"`)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"fail on none", func(c *Config) { c.FailOn = "none" }, ""},
		{"bad min severity", func(c *Config) { c.MinSeverity = "critical" }, "minSeverity"},
		{"bad fail on", func(c *Config) { c.FailOn = "sometimes" }, "failOn"},
		{"bad format", func(c *Config) { c.Format = "xml" }, `unknown format "xml"`},
		{"unknown rule", func(c *Config) {
			c.Rules["nope"] = RuleConfig{}
		}, `unknown rule "nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	clearEnv(t)

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "failed to read config file")

	path := writeConfig(t, t.TempDir(), "rules: [not, a, map]\n")
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}
