package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/babyhome/solidity-gas-optimizer/internal/analyzer"
	"github.com/babyhome/solidity-gas-optimizer/internal/cache"
	"github.com/babyhome/solidity-gas-optimizer/internal/config"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
	"github.com/babyhome/solidity-gas-optimizer/internal/parser"
	"github.com/babyhome/solidity-gas-optimizer/internal/report"
	"github.com/babyhome/solidity-gas-optimizer/internal/suppress"
	"github.com/babyhome/solidity-gas-optimizer/internal/tui"
)

type analyzeOptions struct {
	rules       []string
	listRules   bool
	format      string
	minSeverity string
	failOn      string
	jobs        int
	useTUI      bool
	cachePath   string
	outputFile  string
	configPath  string
}

// fileReport is the outcome of one input file.
type fileReport struct {
	path     string
	source   string
	result   issue.AnalysisResult
	syntax   []report.Diagnostic
	cached   bool
	duration time.Duration
	err      error
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <file.sol>...",
		Short: "Analyze Solidity files for gas optimization opportunities",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.listRules {
				return printRules(cmd.OutOrStdout())
			}
			if len(args) == 0 {
				return errors.New("requires at least one Solidity file")
			}
			return runAnalyze(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.rules, "rules", "r", nil, "Comma-separated list of rules to run, or \"all\"")
	flags.BoolVarP(&opts.listRules, "list-rules", "l", false, "List all available rules")
	flags.StringVarP(&opts.format, "format", "f", config.FormatText, "Output format: text|json|sarif")
	flags.StringVar(&opts.minSeverity, "min-severity", string(issue.Low), "Only report issues at this severity or above (low|medium|high)")
	flags.StringVar(&opts.failOn, "fail-on", "", "Exit non-zero when an issue of this severity or above is reported (low|medium|high|none)")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Number of files analyzed in parallel")
	flags.BoolVar(&opts.useTUI, "tui", false, "Browse issues in an interactive terminal UI")
	flags.StringVar(&opts.cachePath, "cache", "", "SQLite file caching results by file content")
	flags.StringVarP(&opts.outputFile, "out", "o", "", "Write the json or sarif report to a file")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a configuration file (default: search for "+config.FileName+")")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions, paths []string) error {
	s, err := resolveSettings(cmd, opts, paths[0])
	if err != nil {
		return err
	}
	log.Debugf("rules: %s", strings.Join(s.ruleNames, ", "))

	var c *cache.Cache
	if opts.cachePath != "" {
		c, err = cache.Open(opts.cachePath)
		if err != nil {
			return err
		}
		defer c.Close()
	}

	reports, err := analyzeAll(cmd.Context(), paths, s.ruleNames, opts.jobs, c)
	if err != nil {
		return err
	}

	results := make([]issue.AnalysisResult, 0, len(reports))
	var failed []error
	for i := range reports {
		r := &reports[i]
		if r.err != nil {
			failed = append(failed, r.err)
			continue
		}
		r.result = r.result.Filter(func(is issue.Issue) bool { return is.Severity.AtLeast(s.minSeverity) })
		results = append(results, r.result)
	}

	if opts.useTUI {
		if err := tui.Run(results); err != nil {
			return err
		}
	} else if err := render(cmd.OutOrStdout(), s.format, opts.outputFile, reports, results); err != nil {
		return err
	}

	if len(failed) > 0 {
		return errors.Join(failed...)
	}
	if s.failOn != "" {
		for _, r := range results {
			for _, is := range r.Issues {
				if is.Severity.AtLeast(s.failOn) {
					return fmt.Errorf("%w: %s issue in %s", ErrThresholdMet, is.Severity, r.File)
				}
			}
		}
	}
	return nil
}

// analyzeAll analyzes every path with at most jobs files in flight. Reports
// keep argument order. Per-file failures are recorded in the report.
func analyzeAll(ctx context.Context, paths []string, ruleNames []string, jobs int, c *cache.Cache) ([]fileReport, error) {
	reports := make([]fileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, jobs))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = analyzeFile(path, ruleNames, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func analyzeFile(path string, ruleNames []string, c *cache.Cache) (r fileReport) {
	start := time.Now()
	r = fileReport{path: path}
	defer func() { r.duration = time.Since(start) }()

	if !strings.EqualFold(filepath.Ext(path), ".sol") {
		r.err = fmt.Errorf("%w: %s", ErrNotSolidity, path)
		return r
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		r.err = fmt.Errorf("%w: %s", ErrFileNotFound, path)
		return r
	}
	if err != nil {
		r.err = fmt.Errorf("failed to read file: %w", err)
		return r
	}
	r.source = string(content)

	var key string
	if c != nil {
		key = cache.Key(content, ruleNames)
		result, hit, err := c.Get(key, path)
		if err != nil {
			log.Warningf("%s", err)
		}
		if hit {
			log.Debugf("cache hit for %s", path)
			r.result, r.cached = result, true
			return r
		}
	}

	unit, parseErrors, scanErrors := parser.ParseSource(path, r.source)
	if len(parseErrors) > 0 || len(scanErrors) > 0 {
		for _, e := range scanErrors {
			r.syntax = append(r.syntax, report.FromScanError(e))
		}
		for _, e := range parseErrors {
			r.syntax = append(r.syntax, report.FromParseError(e))
		}
		r.err = fmt.Errorf("%w in %s: %d", ErrSyntax, path, len(r.syntax))
		return r
	}

	a, err := analyzer.New(analyzer.WithRules(ruleNames...))
	if err != nil {
		r.err = err
		return r
	}

	result, directiveErrors := suppress.Apply(a.Analyze(unit, path), unit.Comments)
	for _, de := range directiveErrors {
		log.Warningf("%s:%s", path, de)
	}
	r.result = result

	if c != nil {
		if err := c.Put(key, result); err != nil {
			log.Warningf("%s", err)
		}
	}
	return r
}

func render(w io.Writer, format, outputFile string, reports []fileReport, results []issue.AnalysisResult) error {
	switch format {
	case config.FormatJSON, config.FormatSARIF:
		out := w
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outputFile, err)
			}
			defer f.Close()
			out = f
		}
		if format == config.FormatJSON {
			return report.JSON(out, results)
		}
		return report.SARIF(out, results)
	default:
		return renderText(w, reports)
	}
}

func renderText(w io.Writer, reports []fileReport) error {
	blue := color.New(color.FgBlue).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, r := range reports {
		fmt.Fprintln(w, blue(strings.Repeat("=", 50)))
		fmt.Fprintln(w, blue(fmt.Sprintf("🔍 Analyzing %s...", r.path)))

		switch {
		case len(r.syntax) > 0:
			reporter := report.NewReporter(r.path, r.source)
			for _, d := range r.syntax {
				fmt.Fprint(w, reporter.Format(d))
			}
			fmt.Fprintln(w, red(fmt.Sprintf("❌ %s has %d syntax errors", r.path, len(r.syntax))))
		case r.err != nil:
			fmt.Fprintln(w, red("❌ Error: "+r.err.Error()))
		default:
			if err := report.Text(w, r.result, r.source); err != nil {
				return err
			}
			note := formatDuration(r.duration)
			if r.cached {
				note += ", cached"
			}
			fmt.Fprintln(w, dim(fmt.Sprintf("Analyzed %s in %s", r.path, note)))
		}
	}
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
