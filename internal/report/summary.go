package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

const maxBarWidth = 20

// Text writes every issue of result with source context followed by the
// summary report. A clean result prints the success banner only.
func Text(w io.Writer, result issue.AnalysisResult, source string) error {
	if len(result.Issues) == 0 {
		_, err := fmt.Fprint(w, Clean())
		return err
	}

	reporter := NewReporter(result.File, source)
	var out strings.Builder
	for _, is := range result.Issues {
		out.WriteString(reporter.FormatIssue(is))
	}
	out.WriteString(Summary(result))

	_, err := io.WriteString(w, out.String())
	return err
}

// Clean is the banner printed when no issues are found.
func Clean() string {
	return color.New(color.FgGreen, color.Bold).Sprint("\n✨ Excellent! No gas optimization issues found!") + "\n" +
		color.New(color.Faint).Sprint("Your contract follows gas optimization best practices.") + "\n\n"
}

// Summary renders the severity distribution, the per-type breakdown, the
// optimization score and the estimated saving.
func Summary(result issue.AnalysisResult) string {
	var out strings.Builder
	dim := color.New(color.Faint).SprintFunc()
	white := color.New(color.FgWhite).SprintFunc()

	out.WriteString(color.New(color.Bold).Sprint("\n📊 Summary Report") + "\n")
	out.WriteString(dim(strings.Repeat("═", 50)) + "\n")

	out.WriteString(white("\n  Severity Distribution:") + "\n")
	bars := []struct {
		severity issue.Severity
		label    string
		paint    *color.Color
	}{
		{issue.High, "High", color.New(color.FgRed)},
		{issue.Medium, "Medium", color.New(color.FgYellow)},
		{issue.Low, "Low", color.New(color.FgBlue)},
	}
	for _, b := range bars {
		n := result.Summary.BySeverity[b.severity]
		if n == 0 {
			continue
		}
		out.WriteString(b.paint.Sprintf("    %-7s │ %s %d", b.label, Bar(n), n) + "\n")
	}

	out.WriteString(white("\n  Issue Types:") + "\n")
	for _, t := range issue.Types {
		if n := result.Summary.ByType[t]; n > 0 {
			out.WriteString(dim(fmt.Sprintf("    • %s: %d", t.Title(), n)) + "\n")
		}
	}

	score := issue.Score(result.Issues)
	out.WriteString(fmt.Sprintf("\n  Optimization Score: %s\n", scoreColor(score).Sprintf("%d/100", score)))
	out.WriteString(fmt.Sprintf("  Estimated Gas Savings: %s\n\n",
		color.New(color.FgGreen).Sprintf("~%d gas", result.Summary.EstimatedGasSaving)))

	return out.String()
}

// Bar is the distribution bar for n issues: two blocks per issue, capped.
func Bar(n int) string {
	return strings.Repeat("█", min(n*2, maxBarWidth))
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen, color.Bold)
	case score >= 50:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
