package cli

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/babyhome/solidity-gas-optimizer/internal/config"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

// settings is the effective configuration of one analyze run: the config
// file, then the environment, then explicitly set flags.
type settings struct {
	ruleNames   []string
	minSeverity issue.Severity
	failOn      issue.Severity // empty means never fail
	format      string
}

func resolveSettings(cmd *cobra.Command, opts *analyzeOptions, firstPath string) (settings, error) {
	var (
		cfg  config.Config
		path string
		err  error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
		path = opts.configPath
	} else {
		cfg, path, err = config.Load(filepath.Dir(firstPath))
	}
	if err != nil {
		return settings{}, err
	}
	if path != "" {
		log.Debugf("using config %s", path)
	}

	flags := cmd.Flags()
	if flags.Changed("rules") {
		cfg.SetRules(opts.rules)
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("min-severity") {
		cfg.MinSeverity = opts.minSeverity
	}
	if flags.Changed("fail-on") {
		cfg.FailOn = opts.failOn
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	s := settings{ruleNames: cfg.EnabledRules(), format: cfg.Format}
	if len(s.ruleNames) == 0 {
		return settings{}, errors.New("no rules enabled")
	}
	s.minSeverity, _ = issue.ParseSeverity(cfg.MinSeverity)
	if cfg.FailOn != "" && cfg.FailOn != "none" {
		s.failOn, _ = issue.ParseSeverity(cfg.FailOn)
	}
	return s, nil
}
