package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/codesentinel/server/internal/hardening"
)

func NewApp() *Model {
	language := textinput.New()
	language.Placeholder = "javascript"
	language.Prompt = "language > "
	language.PromptStyle = promptStyle
	language.Focus()

	editor := textarea.New()
	editor.Placeholder = "paste code to analyze"
	editor.ShowLineNumbers = true

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	return &Model{
		state:    StateLanguage,
		language: language,
		editor:   editor,
		spinner:  sp,
		client:   NewClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			// back out one state; from the language prompt esc quits
			switch m.state {
			case StateEditor:
				m.state = StateLanguage
				m.language.Focus()
				return m, textinput.Blink

			case StateResults:
				m.state = StateEditor
				m.err = nil
				return m, nil

			case StateLanguage:
				return m, tea.Quit
			}

		case "enter":
			if m.state == StateLanguage {
				m.state = StateEditor
				m.language.Blur()
				return m, m.editor.Focus()
			}

		case "ctrl+s":
			if m.state == StateEditor && strings.TrimSpace(m.editor.Value()) != "" {
				m.state = StateLoading
				return m, tea.Batch(
					m.spinner.Tick,
					m.client.AnalyzeCmd(m.editor.Value(), m.languageValue()),
				)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(msg.Width - 4)
		m.editor.SetHeight(msg.Height - 10)

		if !m.ready {
			m.results = viewport.New(msg.Width-4, msg.Height-6)
			m.ready = true
		} else {
			m.results.Width = msg.Width - 4
			m.results.Height = msg.Height - 6
		}

	case AnalysisResultMsg:
		m.state = StateResults
		m.report = msg.Suggestions
		m.err = nil
		m.results.SetContent(renderReport(msg.Suggestions, m.results.Width))
		m.results.GotoTop()
		return m, nil

	case AnalysisErrorMsg:
		m.state = StateResults
		m.report = nil
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd

	switch m.state {
	case StateLanguage:
		m.language, cmd = m.language.Update(msg)

	case StateEditor:
		m.editor, cmd = m.editor.Update(msg)

	case StateResults:
		m.results, cmd = m.results.Update(msg)
	}

	return m, cmd
}

func (m *Model) View() string {
	switch m.state {
	case StateLanguage:
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(logo),
			infoStyle.Render("  which language is the code in?"),
			"",
			"  "+m.language.View(),
			helpStyle.Render("  enter: continue | esc: quit"),
		)

	case StateEditor:
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("  analyze: "+m.languageValue()),
			borderStyle.Render(m.editor.View()),
			helpStyle.Render("  ctrl+s: analyze | esc: back | ctrl+c: quit"),
		)

	case StateLoading:
		return fmt.Sprintf("\n\n  %s analyzing...\n", m.spinner.View())

	case StateResults:
		if m.err != nil {
			return lipgloss.JoinVertical(lipgloss.Left,
				errorStyle.Render("\n  analysis failed"),
				infoStyle.Render("  "+m.err.Error()),
				helpStyle.Render("  esc: back | ctrl+c: quit"),
			)
		}

		return lipgloss.JoinVertical(lipgloss.Left,
			m.results.View(),
			helpStyle.Render("  up/down: scroll | esc: back | ctrl+c: quit"),
		)

	default:
		return "Unknown state"
	}
}

func (m *Model) languageValue() string {
	lang := strings.TrimSpace(m.language.Value())
	if lang == "" {
		lang = "javascript"
	}

	return lang
}

func renderReport(suggestions []hardening.Suggestion, width int) string {
	if len(suggestions) == 0 {
		return infoStyle.Render("\n  no hardening suggestions for this sample\n")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("  %d hardening suggestions", len(suggestions))))
	b.WriteString("\n")

	for i, s := range suggestions {
		sev, ok := severityStyles[string(s.Severity)]
		if !ok {
			sev = infoStyle
		}

		b.WriteString(fmt.Sprintf("\n  %s %s\n",
			sev.Render(fmt.Sprintf("[%s]", strings.ToUpper(string(s.Severity)))),
			suggestionTitleStyle.Render(fmt.Sprintf("%d. %s", i+1, s.Title)),
		))
		b.WriteString(wrap("  "+s.Description, width))
		b.WriteString("\n\n")
		b.WriteString(codeStyle.Render(s.RefactoredCode))
		b.WriteString("\n\n")
		b.WriteString(wrap("  why: "+s.Explanation, width))
		b.WriteString("\n")

		if s.Compliance != "" {
			b.WriteString(infoStyle.Render("  compliance: " + s.Compliance))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// minimal word wrap; lipgloss handles styling, not reflow
func wrap(text string, width int) string {
	if width <= 4 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	line := "  " + words[0]

	for _, word := range words[1:] {
		if len(line)+1+len(word) > width-2 {
			b.WriteString(line + "\n")
			line = "  " + word
			continue
		}
		line += " " + word
	}

	b.WriteString(line)

	return b.String()
}
