package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/reviewterm/internal/export"
	"github.com/sevigo/reviewterm/internal/report"
	"github.com/sevigo/reviewterm/internal/review"
)

// reviewCmd runs the one outbound request. The code must already be trimmed
// and validated.
func reviewCmd(client *review.Client, code, language string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Review(context.Background(), code, language)
		if err != nil {
			return reviewFinishedMsg{failure: review.AsFailure(err)}
		}
		return reviewFinishedMsg{resp: resp}
	}
}

func countdownTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{gen: gen}
	})
}

func copyCmd(code string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{err: export.CopyToClipboard(code)}
	}
}

func copyResetCmd(gen int) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return copyResetMsg{gen: gen}
	})
}

func saveCmd(language, code string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Save(".", language, code)
		return fileSavedMsg{path: path, err: err}
	}
}

func reportCmd(resp *review.Response, language, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := report.Generate(resp, language, dir)
		return reportSavedMsg{path: path, err: err}
	}
}
