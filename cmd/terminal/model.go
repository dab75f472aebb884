package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/reviewterm/internal/app"
	"github.com/sevigo/reviewterm/internal/review"
)

const scoreBarWidth = 40

// languages the review can target, in the order Ctrl+L cycles through them.
var languages = []string{
	"python", "javascript", "typescript", "java", "c", "c++", "c#",
	"go", "rust", "php", "ruby", "swift", "kotlin", "sql", "html", "css",
}

type model struct {
	styles styles
	app    *app.App

	// UI components
	textarea  textarea.Model
	viewport  viewport.Model
	spinner   spinner.Model
	scorebar  progress.Model
	isLoading bool

	// View state
	lifecycle    *review.Lifecycle
	langIndex    int
	errorMessage string
	result       *review.Response
	statusLine   string

	// Retry countdown. A new error bumps the generation, which orphans any
	// tick still in flight from the previous countdown.
	retryRemaining int
	countdownGen   int

	// Copy hint relabel, same generation trick on a two-second revert.
	copied  bool
	copyGen int

	width  int
	height int
	ready  bool
}

func initialModel(a *app.App, theme ThemeName) *model {
	st := GetTheme(theme)

	ta := textarea.New()
	ta.Placeholder = "Paste your code here..."
	ta.ShowLineNumbers = true
	ta.CharLimit = review.MaxCodeLen
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	lc, err := review.NewLifecycle()
	if err != nil {
		// The machine is static; a build failure is a programming error.
		panic(err)
	}

	langIndex := 0
	for i, lang := range languages {
		if lang == a.Cfg.DefaultLanguage {
			langIndex = i
			break
		}
	}

	return &model{
		styles:    st,
		app:       a,
		textarea:  ta,
		spinner:   sp,
		scorebar:  progress.New(progress.WithSolidFill(tierFills[review.TierPoor]), progress.WithWidth(scoreBarWidth), progress.WithoutPercentage()),
		lifecycle: lc,
		langIndex: langIndex,
	}
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *model) language() string {
	return languages[m.langIndex]
}

func (m *model) triggerEnabled() bool {
	return !m.isLoading && m.retryRemaining == 0 && m.lifecycle.CanTrigger()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab:
			// Two literal spaces at the caret instead of a focus change.
			m.textarea.InsertString("  ")
			return m, nil

		case tea.KeyCtrlR:
			return m, m.triggerReview()

		case tea.KeyCtrlL:
			m.langIndex = (m.langIndex + 1) % len(languages)
			return m, nil

		case tea.KeyCtrlY:
			if m.result != nil && m.result.ImprovedCode != "" {
				return m, copyCmd(m.result.ImprovedCode)
			}
			return m, nil

		case tea.KeyCtrlS:
			if m.result != nil {
				return m, saveCmd(m.language(), m.result.ImprovedCode)
			}
			return m, nil

		case tea.KeyCtrlE:
			if m.result != nil {
				return m, reportCmd(m.result, m.language(), m.app.Cfg.ReportDir)
			}
			return m, nil
		}

	case reviewFinishedMsg:
		return m.handleReviewFinished(msg)

	case countdownTickMsg:
		if msg.gen != m.countdownGen {
			// A newer error replaced this countdown.
			return m, nil
		}
		m.retryRemaining--
		if m.retryRemaining > 0 {
			return m, countdownTickCmd(m.countdownGen)
		}
		m.retryRemaining = 0
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			// Clipboard write degrades gracefully without a visible failure.
			m.app.Logger.Warn("clipboard copy failed", "error", msg.err)
			return m, nil
		}
		m.copied = true
		m.copyGen++
		return m, copyResetCmd(m.copyGen)

	case copyResetMsg:
		if msg.gen == m.copyGen {
			m.copied = false
		}
		return m, nil

	case fileSavedMsg:
		if msg.err != nil {
			m.statusLine = m.styles.error.Render("save failed: " + msg.err.Error())
		} else {
			m.statusLine = m.styles.success.Render("saved " + msg.path)
		}
		return m, nil

	case reportSavedMsg:
		if msg.err != nil {
			m.statusLine = m.styles.error.Render("report failed: " + msg.err.Error())
		} else {
			m.statusLine = m.styles.success.Render("report written to " + msg.path)
		}
		return m, nil

	case spinner.TickMsg:
		if m.isLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case progress.FrameMsg:
		bar, cmd := m.scorebar.Update(msg)
		m.scorebar = bar.(progress.Model)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		if m.result != nil {
			m.viewport.SetContent(m.renderResults())
		}
		return m, nil
	}

	var tiCmd, vpCmd tea.Cmd
	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *model) layout() {
	inner := m.width - 6
	if inner < 20 {
		inner = 20
	}
	m.textarea.SetWidth(inner)

	inputHeight := m.height / 3
	if inputHeight < 5 {
		inputHeight = 5
	}
	m.textarea.SetHeight(inputHeight)

	m.viewport = viewport.New(inner, m.height-inputHeight-8)
}

// triggerReview drives idle → validating → {error, loading}.
func (m *model) triggerReview() tea.Cmd {
	if !m.triggerEnabled() {
		return nil
	}
	if err := m.lifecycle.Send(review.EventTrigger); err != nil {
		return nil
	}

	trimmed := strings.TrimSpace(m.textarea.Value())
	if err := review.ValidateCode(trimmed); err != nil {
		failure := review.ValidationFailure(err)
		m.errorMessage = failure.Message
		m.app.Logger.Debug("validation failed", "kind", failure.Kind)
		// Show the banner and return to idle without network contact.
		_ = m.lifecycle.Send(review.EventInvalid)
		_ = m.lifecycle.Send(review.EventReset)
		return nil
	}
	_ = m.lifecycle.Send(review.EventValid)

	m.isLoading = true
	m.errorMessage = ""
	m.result = nil
	m.statusLine = ""
	return tea.Batch(m.spinner.Tick, reviewCmd(m.app.Reviewer, trimmed, m.language()))
}

func (m *model) handleReviewFinished(msg reviewFinishedMsg) (tea.Model, tea.Cmd) {
	// Every terminal path clears the loading indicator.
	m.isLoading = false

	if msg.failure != nil {
		_ = m.lifecycle.Send(review.EventFail)
		m.errorMessage = msg.failure.Message
		m.result = nil
		if msg.failure.Kind == review.KindServer && msg.failure.RetryAfter > 0 {
			m.countdownGen++
			m.retryRemaining = msg.failure.RetryAfter
			return m, countdownTickCmd(m.countdownGen)
		}
		m.retryRemaining = 0
		return m, nil
	}

	_ = m.lifecycle.Send(review.EventSucceed)
	m.result = msg.resp
	m.errorMessage = ""

	barCmd := m.setScoreBar(msg.resp.Score)
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
	return m, barCmd
}

// setScoreBar rebuilds the bar with the tier color and starts its width
// animation toward the score percentage.
func (m *model) setScoreBar(score review.Score) tea.Cmd {
	if !score.Valid() {
		m.scorebar = progress.New(progress.WithSolidFill(tierFills[review.TierPoor]), progress.WithWidth(scoreBarWidth), progress.WithoutPercentage())
		return m.scorebar.SetPercent(0)
	}
	clamped := score.Clamped()
	fill := tierFills[review.ScoreTier(clamped)]
	m.scorebar = progress.New(progress.WithSolidFill(fill), progress.WithWidth(scoreBarWidth), progress.WithoutPercentage())
	return m.scorebar.SetPercent(float64(clamped) / 100)
}

// triggerLabel is the text shown where the trigger hint lives: the spinner
// while loading, the countdown while retry is gated, otherwise the shortcut.
func (m *model) triggerLabel() string {
	switch {
	case m.isLoading:
		return m.spinner.View() + " " + m.styles.command.Render("Reviewing...")
	case m.retryRemaining > 0:
		return m.styles.inactive.Render(fmt.Sprintf("retry in %ds", m.retryRemaining))
	default:
		return m.styles.command.Render("ctrl+r review")
	}
}

func (m *model) counterView() string {
	n := utf8.RuneCountInString(m.textarea.Value())
	label := fmt.Sprintf("%d/%d", n, review.MaxCodeLen)
	if review.CounterInWarning(n) {
		return m.styles.counterWarn.Render(label)
	}
	return m.styles.counter.Render(label)
}

func (m *model) View() string {
	if !m.ready {
		return "\n  starting..."
	}

	statusParts := []string{
		m.counterView(),
		m.styles.inactive.Render("lang: ") + m.styles.command.Render(m.language()),
		m.triggerLabel(),
	}
	status := strings.Join(statusParts, m.styles.inactive.Render(" │ "))

	sections := []string{
		m.styles.title.Render("reviewterm — paste code, get an AI review"),
		m.styles.inputFrame.Render(m.textarea.View()),
		status,
	}

	if m.errorMessage != "" {
		sections = append(sections, m.styles.error.Render("⚠ "+m.errorMessage))
	}

	if m.result != nil {
		sections = append(sections, m.styles.viewport.Render(m.viewport.View()))
	}

	hints := "tab indent │ ctrl+l language │ ctrl+y copy │ ctrl+s save │ ctrl+e report │ esc quit"
	if m.copied {
		hints = strings.Replace(hints, "ctrl+y copy", m.styles.success.Render("✓ copied"), 1)
	}
	footer := m.styles.footer.Render(m.styles.inactive.Render(hints))
	if m.statusLine != "" {
		footer += "\n" + m.statusLine
	}
	sections = append(sections, footer)

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
