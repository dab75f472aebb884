// Package report serializes a review response into a standalone HTML file.
package report

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/sevigo/reviewterm/internal/review"
)

// icons maps an issue type to its display glyph. NormalizeIssueType
// guarantees the lookup always hits.
var icons = map[review.IssueType]string{
	review.IssueBug:        "🐞",
	review.IssueError:      "❌",
	review.IssueWarning:    "⚠️",
	review.IssueSuggestion: "💡",
}

// tierColors are the fixed score-bar colors: teal for ≥80, amber for ≥50,
// red below.
var tierColors = map[review.Tier]string{
	review.TierGood: "#14b8a6",
	review.TierFair: "#f59e0b",
	review.TierPoor: "#ef4444",
}

// Generate writes the review as review_report_<timestamp>.html in outputDir
// and returns the written path.
func Generate(resp *review.Response, language, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	name := fmt.Sprintf("review_report_%s.html", time.Now().Format("20060102_150405"))
	path := filepath.Join(outputDir, name)

	if err := os.WriteFile(path, []byte(Render(resp, language)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// Render builds the report document. All free-text fields from the response
// pass through html.EscapeString before insertion; the only raw HTML comes
// from chroma, which emits markup it generated itself.
func Render(resp *review.Response, language string) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Code Review Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; background: #f5f5f5; color: #333; padding: 20px; }
.container { max-width: 900px; margin: 0 auto; background: white; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
.score-track { background: #e5e7eb; border-radius: 6px; height: 12px; overflow: hidden; }
.score-fill { height: 100%; border-radius: 6px; transition: width 0.6s ease; }
.issue { border-left: 3px solid #d1d5db; padding: 8px 12px; margin: 8px 0; background: #fafafa; }
.issue .line { color: #6b7280; font-size: 13px; }
.empty-state { color: #059669; font-weight: 600; }
pre { background: #f8f8f8; padding: 12px; border-radius: 6px; overflow-x: auto; }
</style>
</head>
<body>
<div class="container">
<h1>Code Review Report</h1>
`)

	writeScore(&sb, resp.Score)
	writeIssues(&sb, resp.Issues)

	sb.WriteString("<h2>Improved Code</h2>\n")
	sb.WriteString(highlightCode(resp.ImprovedCode, language))

	sb.WriteString("<h2>Explanation</h2>\n<p>")
	sb.WriteString(html.EscapeString(resp.ExplanationOrDefault()))
	sb.WriteString("</p>\n</div>\n</body>\n</html>\n")

	return sb.String()
}

func writeScore(sb *strings.Builder, score review.Score) {
	sb.WriteString("<h2>Score</h2>\n")
	if !score.Valid() {
		sb.WriteString("<p class=\"score-label\">&mdash; / 100</p>\n")
		sb.WriteString("<div class=\"score-track\"><div class=\"score-fill\" style=\"width:0%\"></div></div>\n")
		return
	}

	clamped := score.Clamped()
	color := tierColors[review.ScoreTier(clamped)]
	fmt.Fprintf(sb, "<p class=\"score-label\">%d / 100</p>\n", clamped)
	fmt.Fprintf(sb, "<div class=\"score-track\"><div class=\"score-fill\" style=\"width:%d%%;background:%s\"></div></div>\n", clamped, color)
}

func writeIssues(sb *strings.Builder, issues []review.Issue) {
	sb.WriteString("<h2>Issues</h2>\n")
	if len(issues) == 0 {
		sb.WriteString("<p class=\"empty-state\">🎉 No issues found. Great job!</p>\n")
		return
	}

	// Rendering order is the response order.
	for _, issue := range issues {
		fmt.Fprintf(sb, "<div class=\"issue issue-%s\">\n", issue.Kind())
		fmt.Fprintf(sb, "<span class=\"icon\">%s</span> ", icons[issue.Kind()])
		if issue.Line != "" {
			fmt.Fprintf(sb, "<span class=\"line\">%s</span> ", html.EscapeString(string(issue.Line)))
		}
		fmt.Fprintf(sb, "<span class=\"description\">%s</span>\n</div>\n", html.EscapeString(issue.Description))
	}
}

// highlightCode renders the improved code with chroma syntax highlighting.
// Highlighting is best-effort: any failure falls back to an escaped <pre>
// block, never to raw insertion. Both paths tag the code region with the
// selected language.
func highlightCode(code, language string) string {
	tag := html.EscapeString(strings.ToLower(language))
	plain := fmt.Sprintf("<pre class=\"language-%s\"><code>%s</code></pre>\n",
		tag, html.EscapeString(code))

	lexer := lexers.Get(language)
	if lexer == nil {
		return plain
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plain
	}

	formatter := chromahtml.New(chromahtml.WithLineNumbers(false))
	var sb strings.Builder
	fmt.Fprintf(&sb, "<div class=\"language-%s\">\n", tag)
	if err := formatter.Format(&sb, styles.Get("github"), iterator); err != nil {
		return plain
	}
	sb.WriteString("</div>\n")
	return sb.String()
}
