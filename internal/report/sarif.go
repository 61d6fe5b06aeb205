package report

import (
	"encoding/json"
	"io"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
	"github.com/babyhome/solidity-gas-optimizer/internal/rules"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	toolName     = "gasopt"
)

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name  string      `json:"name"`
	Rules []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	Physical sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine,omitempty"`
	StartColumn int `json:"startColumn,omitempty"`
}

// SARIFLevel maps an issue severity to a SARIF result level.
func SARIFLevel(s issue.Severity) string {
	switch s {
	case issue.High:
		return "error"
	case issue.Medium:
		return "warning"
	default:
		return "note"
	}
}

// ToSARIF renders results as a SARIF 2.1.0 log with one run.
func ToSARIF(results []issue.AnalysisResult) ([]byte, error) {
	driver := sarifDriver{Name: toolName}
	for _, e := range rules.Catalog() {
		driver.Rules = append(driver.Rules, sarifRule{
			ID:               issue.Type(e.Name).Code(),
			Name:             e.Name,
			ShortDescription: sarifMessage{Text: e.Description},
		})
	}

	found := []sarifResult{}
	for _, r := range results {
		for _, is := range r.Issues {
			text := is.Message
			if is.GasImpact != "" {
				text += " (" + is.GasImpact + ")"
			}
			found = append(found, sarifResult{
				RuleID:  is.Type.Code(),
				Level:   SARIFLevel(is.Severity),
				Message: sarifMessage{Text: text},
				Locations: []sarifLoc{{Physical: sarifPhys{
					ArtifactLocation: sarifArt{URI: r.File},
					Region:           sarifRegion{StartLine: is.Line, StartColumn: is.Column},
				}}},
			})
		}
	}

	s := sarif{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs:    []sarifRun{{Tool: sarifTool{Driver: driver}, Results: found}},
	}
	return json.MarshalIndent(s, "", "  ")
}

// SARIF writes the SARIF log for results to w.
func SARIF(w io.Writer, results []issue.AnalysisResult) error {
	data, err := ToSARIF(results)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
