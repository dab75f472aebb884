// Package review defines the wire contract with the review service and the
// client-side request lifecycle: payload types, input validation, the HTTP
// client, and the state machine driving a single review attempt.
package review

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// IssueType classifies a single review finding.
type IssueType string

const (
	IssueBug        IssueType = "bug"
	IssueError      IssueType = "error"
	IssueWarning    IssueType = "warning"
	IssueSuggestion IssueType = "suggestion"
)

// NormalizeIssueType maps any unrecognized type to IssueSuggestion so every
// finding always renders with a defined icon.
func NormalizeIssueType(raw string) IssueType {
	switch IssueType(raw) {
	case IssueBug, IssueError, IssueWarning, IssueSuggestion:
		return IssueType(raw)
	default:
		return IssueSuggestion
	}
}

// FlexString decodes JSON fields that some models return as a string and
// others as a bare number, e.g. "line": "Line 3" vs "line": 3.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}
	// Anything else (objects, arrays, null) displays as empty.
	*f = ""
	return nil
}

// Issue is one finding in a review response.
type Issue struct {
	Type        string     `json:"type"`
	Line        FlexString `json:"line,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Kind returns the normalized issue type.
func (i Issue) Kind() IssueType {
	return NormalizeIssueType(i.Type)
}

// Score is the optional numeric quality score. A missing or non-numeric
// value is treated as absent rather than failing the whole payload.
type Score struct {
	value float64
	valid bool
}

func (s *Score) UnmarshalJSON(data []byte) error {
	// Unmarshal treats null as a no-op, which would leave the zero value
	// looking like a real score of 0.
	if string(bytes.TrimSpace(data)) == "null" {
		s.valid = false
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		s.valid = false
		return nil
	}
	s.value = f
	s.valid = true
	return nil
}

// Valid reports whether the server supplied a usable numeric score.
func (s Score) Valid() bool { return s.valid }

// Clamped returns the score clamped to [0,100] and rounded to the nearest
// integer. Only meaningful when Valid.
func (s Score) Clamped() int {
	v := math.Min(100, math.Max(0, s.value))
	return int(math.Round(v))
}

// Tier buckets a clamped score for display coloring.
type Tier int

const (
	TierPoor Tier = iota // < 50
	TierFair             // 50..79
	TierGood             // >= 80
)

// ScoreTier returns the display tier for a clamped score.
func ScoreTier(clamped int) Tier {
	switch {
	case clamped >= 80:
		return TierGood
	case clamped >= 50:
		return TierFair
	default:
		return TierPoor
	}
}

// DefaultExplanation is shown when the server omits an explanation.
const DefaultExplanation = "No explanation provided."

// Response is the review service payload. The presence of Error signals
// failure regardless of the transport status; RetryAfter is only meaningful
// alongside Error. A response lives for one render cycle and is replaced
// wholesale by the next request.
type Response struct {
	Score        Score   `json:"score"`
	Issues       []Issue `json:"issues"`
	ImprovedCode string  `json:"improved_code"`
	Explanation  string  `json:"explanation"`
	Error        string  `json:"error,omitempty"`
	RetryAfter   int     `json:"retry_after,omitempty"`
}

// ExplanationOrDefault returns the explanation text with the placeholder
// fallback applied.
func (r *Response) ExplanationOrDefault() string {
	if r.Explanation == "" {
		return DefaultExplanation
	}
	return r.Explanation
}

// Request is the body of the one outbound call.
type Request struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}
