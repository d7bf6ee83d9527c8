package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is indeterminate progress feedback around a generation run.
type Spinner interface {
	Start()
	Stop(success bool, message string)
}

// NewSpinner creates a Spinner. In headless or no-color mode it degrades to
// plain log lines on the writer.
func NewSpinner(theme *Theme, hm *HeadlessManager, title string) Spinner {
	if hm.IsHeadless() || theme.NoColor {
		return &headlessSpinner{theme: theme, title: title, writer: os.Stdout}
	}
	return &interactiveSpinner{theme: theme, title: title}
}

// --- headlessSpinner ---

type headlessSpinner struct {
	theme  *Theme
	title  string
	writer io.Writer
}

func (s *headlessSpinner) Start() {
	fmt.Fprintf(s.writer, "%s...\n", s.title)
}

func (s *headlessSpinner) Stop(success bool, message string) {
	if success {
		fmt.Fprintf(s.writer, "%s\n", message)
		return
	}
	fmt.Fprintf(s.writer, "failed: %s\n", message)
}

// --- interactiveSpinner ---

type spinnerStopMsg struct {
	success bool
	message string
}

type spinnerModel struct {
	spinner spinner.Model
	theme   *Theme
	title   string
	done    bool
	final   string
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spinner: s, theme: theme, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		if msg.success {
			m.final = m.theme.Success.Render(msg.message)
		} else {
			m.final = m.theme.Error.Render(msg.message)
		}
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return m.final + "\n"
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.title)
}

type interactiveSpinner struct {
	theme   *Theme
	title   string
	program *tea.Program
	running chan struct{}
}

func (s *interactiveSpinner) Start() {
	s.program = tea.NewProgram(newSpinnerModel(s.theme, s.title))
	s.running = make(chan struct{})
	go func() {
		defer close(s.running)
		_, _ = s.program.Run()
	}()
}

func (s *interactiveSpinner) Stop(success bool, message string) {
	if s.program == nil {
		return
	}
	s.program.Send(spinnerStopMsg{success: success, message: message})
	<-s.running
}
