package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/reviewterm/internal/review"
)

type styles struct {
	app         lipgloss.Style
	title       lipgloss.Style
	inputFrame  lipgloss.Style
	viewport    lipgloss.Style
	footer      lipgloss.Style
	inactive    lipgloss.Style
	error       lipgloss.Style
	success     lipgloss.Style
	command     lipgloss.Style
	counter     lipgloss.Style
	counterWarn lipgloss.Style
	heading     lipgloss.Style
	issueLine   lipgloss.Style
}

type ThemeName string

const (
	ThemeCyan    ThemeName = "cyan"
	ThemeMatrix  ThemeName = "matrix"
	ThemeAmber   ThemeName = "amber"
	ThemeDracula ThemeName = "dracula"
)

type ThemePalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Inactive  lipgloss.Color
}

var palettes = map[ThemeName]ThemePalette{
	ThemeCyan: {
		Primary:   lipgloss.Color("51"),
		Secondary: lipgloss.Color("33"),
		Success:   lipgloss.Color("46"),
		Warning:   lipgloss.Color("226"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	ThemeMatrix: {
		Primary:   lipgloss.Color("82"),
		Secondary: lipgloss.Color("46"),
		Success:   lipgloss.Color("82"),
		Warning:   lipgloss.Color("190"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	ThemeAmber: {
		Primary:   lipgloss.Color("220"),
		Secondary: lipgloss.Color("214"),
		Success:   lipgloss.Color("220"),
		Warning:   lipgloss.Color("208"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	ThemeDracula: {
		Primary:   lipgloss.Color("141"),
		Secondary: lipgloss.Color("117"),
		Success:   lipgloss.Color("84"),
		Warning:   lipgloss.Color("212"),
		Error:     lipgloss.Color("203"),
		Inactive:  lipgloss.Color("240"),
	},
}

// Score tier colors are fixed regardless of theme: teal for >= 80, amber
// for >= 50, red below.
var tierFills = map[review.Tier]string{
	review.TierGood: "#14b8a6",
	review.TierFair: "#f59e0b",
	review.TierPoor: "#ef4444",
}

// issueIcons maps normalized issue types to their display glyphs.
var issueIcons = map[review.IssueType]string{
	review.IssueBug:        "🐞",
	review.IssueError:      "✖",
	review.IssueWarning:    "⚠",
	review.IssueSuggestion: "💡",
}

func GetTheme(theme ThemeName) styles {
	if palette, ok := palettes[theme]; ok {
		return newStylesFromPalette(palette)
	}
	return newStylesFromPalette(palettes[ThemeCyan])
}

func ListThemes() []ThemeName {
	return []ThemeName{ThemeCyan, ThemeMatrix, ThemeAmber, ThemeDracula}
}

func newStylesFromPalette(p ThemePalette) styles {
	return styles{
		app: lipgloss.NewStyle().Margin(0, 1),
		title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Padding(0, 1),
		inputFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		viewport: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Inactive).
			PaddingLeft(1),
		footer: lipgloss.NewStyle().
			MarginTop(1),
		inactive:    lipgloss.NewStyle().Foreground(p.Inactive),
		error:       lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		success:     lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		command:     lipgloss.NewStyle().Foreground(p.Secondary).Italic(true),
		counter:     lipgloss.NewStyle().Foreground(p.Inactive),
		counterWarn: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		heading:     lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		issueLine:   lipgloss.NewStyle().Foreground(p.Secondary),
	}
}
