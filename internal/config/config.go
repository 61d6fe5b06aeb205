package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
	"github.com/babyhome/solidity-gas-optimizer/internal/rules"
)

// FileName is the configuration file searched for upward from the target.
const FileName = ".gasopt.yml"

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

var Formats = []string{FormatText, FormatJSON, FormatSARIF}

// Environment overrides, applied on top of the file.
const (
	EnvFormat      = "GASOPT_FORMAT"
	EnvMinSeverity = "GASOPT_MIN_SEVERITY"
	EnvFailOn      = "GASOPT_FAIL_ON"
	EnvRules       = "GASOPT_RULES"
)

// Config is the tool configuration.
type Config struct {
	Rules       map[string]RuleConfig `yaml:"rules"`
	MinSeverity string                `yaml:"minSeverity"`
	FailOn      string                `yaml:"failOn"`
	Format      string                `yaml:"format"`
}

// RuleConfig toggles one rule. A rule left out of the file keeps its
// catalog default.
type RuleConfig struct {
	Enabled *bool `yaml:"enabled"`
}

func Default() Config {
	return Config{
		Rules:       map[string]RuleConfig{},
		MinSeverity: string(issue.Low),
		FailOn:      "",
		Format:      FormatText,
	}
}

// Load reads the first .gasopt.yml found in startDir or one of its parents,
// then applies environment overrides, loading a .env file from the working
// directory when present. It returns the path of the file used, or "" when
// only defaults and the environment apply.
func Load(startDir string) (Config, string, error) {
	cfg := Default()

	path := find(startDir)
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return cfg, path, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, path, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()

	return cfg, path, cfg.Validate()
}

// LoadFile reads an explicit configuration file and applies the environment.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := cfg.readFile(path); err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func find(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = startDir
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if c.Rules == nil {
		c.Rules = map[string]RuleConfig{}
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvMinSeverity); v != "" {
		c.MinSeverity = v
	}
	if v := os.Getenv(EnvFailOn); v != "" {
		c.FailOn = v
	}
	if v := os.Getenv(EnvRules); v != "" {
		c.SetRules(strings.Split(v, ","))
	}
}

// SetRules enables exactly the named rules ("all" for every rule) and
// disables the rest.
func (c *Config) SetRules(names []string) {
	selected := map[string]bool{}
	for _, n := range names {
		selected[strings.TrimSpace(n)] = true
	}

	c.Rules = map[string]RuleConfig{}
	for _, e := range rules.Catalog() {
		on := selected["all"] || selected[e.Name]
		c.Rules[e.Name] = RuleConfig{Enabled: &on}
		delete(selected, e.Name)
	}
	delete(selected, "all")
	delete(selected, "")
	for name := range selected {
		// Kept so Validate reports it.
		on := true
		c.Rules[name] = RuleConfig{Enabled: &on}
	}
}

// EnabledRules resolves the rule toggles against the catalog defaults.
func (c Config) EnabledRules() []string {
	var names []string
	for _, e := range rules.Catalog() {
		on := e.Default
		if rc, ok := c.Rules[e.Name]; ok && rc.Enabled != nil {
			on = *rc.Enabled
		}
		if on {
			names = append(names, e.Name)
		}
	}
	return names
}

// Validate checks rule names, severities and the output format.
func (c Config) Validate() error {
	var errs []error
	for name := range c.Rules {
		if _, ok := rules.Lookup(name); !ok {
			errs = append(errs, fmt.Errorf("unknown rule %q", name))
		}
	}
	if _, err := issue.ParseSeverity(c.MinSeverity); err != nil {
		errs = append(errs, fmt.Errorf("minSeverity: %w", err))
	}
	if c.FailOn != "" && c.FailOn != "none" {
		if _, err := issue.ParseSeverity(c.FailOn); err != nil {
			errs = append(errs, fmt.Errorf("failOn: %w", err))
		}
	}
	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", ")))
	}
	slices.SortFunc(errs, func(a, b error) int { return strings.Compare(a.Error(), b.Error()) })
	return errors.Join(errs...)
}
