package report

import (
	"encoding/json"
	"io"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

type jsonReport struct {
	Results []jsonResult `json:"results"`
}

type jsonResult struct {
	issue.AnalysisResult
	Score int `json:"score"`
}

// JSON writes all results as one indented document.
func JSON(w io.Writer, results []issue.AnalysisResult) error {
	doc := jsonReport{Results: make([]jsonResult, 0, len(results))}
	for _, r := range results {
		doc.Results = append(doc.Results, jsonResult{AnalysisResult: r, Score: issue.Score(r.Issues)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
