package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/reviewterm/internal/app"
	"github.com/sevigo/reviewterm/internal/export"
	"github.com/sevigo/reviewterm/internal/report"
	"github.com/sevigo/reviewterm/internal/review"
)

var (
	language   string
	saveOutput bool
	htmlReport bool
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgWhite)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Submit a source file for an AI code review",
	Long: `Submit a source file for an AI code review and print the result.

The target language defaults to the file extension; pass --language to
override it. Input over 5000 characters is rejected before anything is sent.

Examples:
  reviewterm-cli review main.py
  reviewterm-cli review --language c++ --save legacy.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&language, "language", "l", "", "Target language (defaults to the file extension)")
	reviewCmd.Flags().BoolVar(&saveOutput, "save", false, "Write the improved code to improved_code.<ext>")
	reviewCmd.Flags().BoolVar(&htmlReport, "report", false, "Write an HTML report")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	path := args[0]

	a, err := app.New()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	code := strings.TrimSpace(string(data))

	lang := language
	if lang == "" {
		lang = export.LanguageForFile(path)
	}
	if lang == "" {
		lang = a.Cfg.DefaultLanguage
	}

	if err := review.ValidateCode(code); err != nil {
		return err
	}

	titleColor.Println("🔍 reviewterm — code review")
	dimColor.Printf("   File: %s (%s)\n\n", path, lang)

	resp, err := a.Reviewer.Review(context.Background(), code, lang)
	if err != nil {
		failure := review.AsFailure(err)
		errorColor.Printf("✖ %s\n", failure.Message)
		if failure.RetryAfter > 0 {
			dimColor.Printf("  Try again in %d seconds.\n", failure.RetryAfter)
		}
		return err
	}

	printReview(resp, lang)

	if saveOutput {
		saved, err := export.Save(".", lang, resp.ImprovedCode)
		if err != nil {
			return err
		}
		successColor.Printf("\n💾 Improved code written to %s\n", saved)
	}
	if htmlReport {
		written, err := report.Generate(resp, lang, a.Cfg.ReportDir)
		if err != nil {
			return err
		}
		successColor.Printf("📄 Report written to %s\n", written)
	}
	return nil
}

func printReview(resp *review.Response, lang string) {
	separator := strings.Repeat("═", 60)

	titleColor.Println(separator)
	printScore(resp.Score)
	titleColor.Println(separator)

	if len(resp.Issues) == 0 {
		fmt.Println()
		successColor.Println("🎉 No issues found. Great job!")
	} else {
		fmt.Println()
		warnColor.Printf("💡 ISSUES (%d)\n", len(resp.Issues))
		for _, issue := range resp.Issues {
			fmt.Println()
			printIssueBadge(issue.Kind())
			if issue.Line != "" {
				dimColor.Printf(" %s", issue.Line)
			}
			fmt.Println()
			infoColor.Printf("   %s\n", issue.Description)
		}
	}

	if resp.ImprovedCode != "" {
		fmt.Println()
		titleColor.Println("IMPROVED CODE")
		dimColor.Printf("(%s)\n", lang)
		fmt.Println(resp.ImprovedCode)
	}

	fmt.Println()
	titleColor.Println("EXPLANATION")
	infoColor.Println(resp.ExplanationOrDefault())
}

func printScore(score review.Score) {
	if !score.Valid() {
		infoColor.Println("SCORE: — / 100")
		return
	}
	clamped := score.Clamped()
	label := fmt.Sprintf("SCORE: %d / 100", clamped)
	switch review.ScoreTier(clamped) {
	case review.TierGood:
		color.New(color.FgCyan, color.Bold).Println(label)
	case review.TierFair:
		color.New(color.FgYellow, color.Bold).Println(label)
	default:
		color.New(color.FgRed, color.Bold).Println(label)
	}
}

func printIssueBadge(kind review.IssueType) {
	switch kind {
	case review.IssueBug:
		color.New(color.BgRed, color.FgWhite, color.Bold).Printf(" BUG ")
	case review.IssueError:
		color.New(color.BgHiRed, color.FgWhite).Printf(" ERROR ")
	case review.IssueWarning:
		color.New(color.BgYellow, color.FgBlack).Printf(" WARNING ")
	default:
		color.New(color.BgWhite, color.FgBlack).Printf(" SUGGESTION ")
	}
}
