package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	issues := []Issue{
		{Type: StorageReadInLoop, Severity: High, Line: 1},
		{Type: StorageReadInLoop, Severity: Medium, Line: 2},
		{Type: PublicVsExternal, Severity: Low, Line: 3},
		{Type: UseCustomErrors, Severity: High, Line: 4},
	}

	summary := Summarize(issues)

	assert.Equal(t, 4, summary.TotalIssues)
	assert.Equal(t, 2, summary.ByType[StorageReadInLoop])
	assert.Equal(t, 1, summary.ByType[PublicVsExternal])
	assert.Equal(t, 2, summary.BySeverity[High])
	assert.Equal(t, 1, summary.BySeverity[Medium])
	assert.Equal(t, 1, summary.BySeverity[Low])
	assert.Equal(t, 2100+800+100+100, summary.EstimatedGasSaving)
}

func TestNewResultEmpty(t *testing.T) {
	result := NewResult("Vault.sol", nil)

	assert.Equal(t, "Vault.sol", result.File)
	assert.NotNil(t, result.Issues, "Issues should be an empty slice, not nil")
	assert.Zero(t, result.Summary.TotalIssues)
	assert.Zero(t, result.Summary.EstimatedGasSaving)
}

func TestFilterRecomputesSummary(t *testing.T) {
	result := NewResult("Vault.sol", []Issue{
		{Type: StorageReadInLoop, Severity: High},
		{Type: PublicVsExternal, Severity: Low},
	})

	filtered := result.Filter(func(is Issue) bool { return is.Severity.AtLeast(Medium) })

	require.Len(t, filtered.Issues, 1)
	assert.Equal(t, 1, filtered.Summary.TotalIssues)
	assert.Equal(t, 2100, filtered.Summary.EstimatedGasSaving)
	assert.Len(t, result.Issues, 2, "Filter should not modify the original")
}

func TestSeverity(t *testing.T) {
	t.Run("AtLeast", func(t *testing.T) {
		assert.True(t, High.AtLeast(Low))
		assert.True(t, Medium.AtLeast(Medium))
		assert.False(t, Low.AtLeast(Medium))
	})

	t.Run("ParseSeverity", func(t *testing.T) {
		s, err := ParseSeverity(" HIGH ")
		require.NoError(t, err)
		assert.Equal(t, High, s)

		_, err = ParseSeverity("critical")
		assert.Error(t, err)
	})
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		issues []Issue
		want   int
	}{
		{"no issues", nil, 100},
		{"mixed", []Issue{{Severity: High}, {Severity: Medium}, {Severity: Low}}, 83},
		{"unknown severity ignored", make([]Issue, 11), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.issues))
		})
	}

	many := make([]Issue, 12)
	for i := range many {
		many[i].Severity = High
	}
	assert.Equal(t, 0, Score(many))
}

func TestTypeCodes(t *testing.T) {
	seen := map[string]Type{}
	for _, typ := range Types {
		code := typ.Code()
		if prev, dup := seen[code]; dup {
			t.Errorf("code %s shared by %s and %s", code, prev, typ)
		}
		seen[code] = typ
		assert.NotEqual(t, string(typ), typ.Title(), "every known type should have a title")
	}

	assert.Equal(t, CodeOther, Type("made-up").Code())
	assert.Equal(t, "made-up", Type("made-up").Title())
}
