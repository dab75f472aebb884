package review

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseDecodeTolerance(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, r Response)
	}{
		{
			name: "line as number",
			body: `{"issues":[{"type":"bug","line":3,"description":"off by one"}]}`,
			check: func(t *testing.T, r Response) {
				assert.Equal(t, "3", string(r.Issues[0].Line))
			},
		},
		{
			name: "line as string",
			body: `{"issues":[{"type":"bug","line":"Lines 5-8","description":"x"}]}`,
			check: func(t *testing.T, r Response) {
				assert.Equal(t, "Lines 5-8", string(r.Issues[0].Line))
			},
		},
		{
			name: "line absent",
			body: `{"issues":[{"type":"warning"}]}`,
			check: func(t *testing.T, r Response) {
				assert.Empty(t, string(r.Issues[0].Line))
				assert.Empty(t, r.Issues[0].Description)
			},
		},
		{
			name: "score as string is treated as absent",
			body: `{"score":"ninety"}`,
			check: func(t *testing.T, r Response) {
				assert.False(t, r.Score.Valid())
			},
		},
		{
			name: "score null is treated as absent",
			body: `{"score":null}`,
			check: func(t *testing.T, r Response) {
				// Unmarshal skips null values, which must not leave a
				// zero-looking but valid score behind.
				assert.False(t, r.Score.Valid())
			},
		},
		{
			name: "score absent",
			body: `{}`,
			check: func(t *testing.T, r Response) {
				assert.False(t, r.Score.Valid())
			},
		},
		{
			name: "full payload",
			body: `{"score":92,"issues":[],"improved_code":"print('hi')","explanation":"Looks fine."}`,
			check: func(t *testing.T, r Response) {
				require.True(t, r.Score.Valid())
				assert.Equal(t, 92, r.Score.Clamped())
				assert.Equal(t, "print('hi')", r.ImprovedCode)
				assert.Equal(t, "Looks fine.", r.ExplanationOrDefault())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &r))
			tt.check(t, r)
		})
	}
}

func TestScoreClamped(t *testing.T) {
	tests := []struct {
		raw  float64
		want int
	}{
		{-10, 0},
		{0, 0},
		{49.4, 49},
		{49.5, 50},
		{92, 92},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		s := Score{value: tt.raw, valid: true}
		assert.Equal(t, tt.want, s.Clamped(), "Score(%v)", tt.raw)
	}
}

func TestScoreTier(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierPoor},
		{49, TierPoor},
		{50, TierFair},
		{79, TierFair},
		{80, TierGood},
		{100, TierGood},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreTier(tt.score), "ScoreTier(%d)", tt.score)
	}
}

func TestNormalizeIssueType(t *testing.T) {
	tests := []struct {
		raw  string
		want IssueType
	}{
		{"bug", IssueBug},
		{"error", IssueError},
		{"warning", IssueWarning},
		{"suggestion", IssueSuggestion},
		{"critical", IssueSuggestion},
		{"", IssueSuggestion},
		{"BUG", IssueSuggestion},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeIssueType(tt.raw), "NormalizeIssueType(%q)", tt.raw)
	}
}

func TestExplanationOrDefault(t *testing.T) {
	r := Response{}
	assert.Equal(t, DefaultExplanation, r.ExplanationOrDefault())
}
