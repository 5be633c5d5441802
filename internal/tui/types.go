package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/codesentinel/server/internal/hardening"
)

// represents the current state of the TUI
type AppState int

const (
	StateLanguage AppState = iota
	StateEditor
	StateLoading
	StateResults
)

// main TUI application model
type Model struct {
	state    AppState
	width    int
	height   int
	err      error
	language textinput.Model
	editor   textarea.Model
	results  viewport.Model
	spinner  spinner.Model
	client   *Client
	report   []hardening.Suggestion
	ready    bool
}

// sent when the server returns hardening suggestions
type AnalysisResultMsg struct {
	Suggestions []hardening.Suggestion
}

// sent when a request fails
type AnalysisErrorMsg struct {
	err error
}
