package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/sevigo/reviewterm/internal/review"
)

// emptyStateMessage celebrates a clean review.
const emptyStateMessage = "🎉 No issues found. Great job!"

func (m *model) renderResults() string {
	var b strings.Builder

	b.WriteString(m.styles.heading.Render("SCORE"))
	b.WriteString("\n")
	b.WriteString(scoreLabel(m.result.Score))
	b.WriteString("\n")
	b.WriteString(m.scorebar.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.heading.Render("ISSUES"))
	b.WriteString("\n")
	b.WriteString(m.renderIssues(m.result.Issues))
	b.WriteString("\n")

	b.WriteString(m.styles.heading.Render("IMPROVED CODE"))
	b.WriteString("\n")
	b.WriteString(renderImprovedCode(m.result.ImprovedCode, m.language(), m.viewport.Width-2))
	b.WriteString("\n")

	b.WriteString(m.styles.heading.Render("EXPLANATION"))
	b.WriteString("\n")
	b.WriteString(m.result.ExplanationOrDefault())
	b.WriteString("\n")

	return b.String()
}

// scoreLabel renders "92 / 100", or an em-dash when the score is missing or
// non-numeric.
func scoreLabel(score review.Score) string {
	if !score.Valid() {
		return "— / 100"
	}
	return fmt.Sprintf("%d / 100", score.Clamped())
}

func (m *model) renderIssues(issues []review.Issue) string {
	if len(issues) == 0 {
		return m.styles.success.Render(emptyStateMessage) + "\n"
	}

	var b strings.Builder
	for _, issue := range issues {
		b.WriteString(issueRow(m.styles, issue))
		b.WriteString("\n")
	}
	return b.String()
}

// issueRow renders one finding: icon, line reference, description, in
// response order. The icon lookup is exhaustive because Kind normalizes.
func issueRow(st styles, issue review.Issue) string {
	var b strings.Builder
	b.WriteString(issueIcons[issue.Kind()])
	b.WriteString(" ")
	if issue.Line != "" {
		b.WriteString(st.issueLine.Render(string(issue.Line)))
		b.WriteString(" ")
	}
	b.WriteString(issue.Description)
	return b.String()
}

// renderImprovedCode shows the code in a fence tagged with the selected
// language so glamour can highlight it. Highlighting is best-effort: any
// failure falls back to the plain text, never to dropped output.
func renderImprovedCode(code, language string, width int) string {
	if strings.TrimSpace(code) == "" {
		return ""
	}
	if width < 20 {
		width = 80
	}

	// A four-backtick fence survives triple backticks inside the code.
	fence := fmt.Sprintf("````%s\n%s\n````", language, code)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return code
	}
	out, err := renderer.Render(fence)
	if err != nil {
		return code
	}
	return out
}
