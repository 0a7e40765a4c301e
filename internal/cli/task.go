package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// TaskModel shows a spinner while a single job runs, typically writing an
// export file. The job returns the path it produced.
type TaskModel struct {
	spinner spinner.Model
	label   string
	job     func() (string, error)
	running bool
	done    bool
	path    string
	err     error
}

type taskCompleteMsg struct {
	path string
	err  error
}

// NewTaskModel creates a task model for job, described by label.
func NewTaskModel(label string, job func() (string, error)) TaskModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return TaskModel{
		spinner: s,
		label:   label,
		job:     job,
		running: true,
	}
}

func (m TaskModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m TaskModel) run() tea.Msg {
	path, err := m.job()

	return taskCompleteMsg{path: path, err: err}
}

func (m TaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case taskCompleteMsg:
		m.running = false
		m.done = true
		m.path = msg.path
		m.err = msg.err

		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m TaskModel) View() string {
	if m.done {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("\n  ✗ %s failed: %v\n\n", m.label, m.err))
		}

		return fmt.Sprintf("\n  %s\n  %s\n\n", successStyle.Render("✓ "+m.label), pathStyle.Render("→ "+m.path))
	}

	if m.running {
		return fmt.Sprintf("\n  %s %s\n\n", m.spinner.View(), m.label)
	}

	return ""
}

// Result returns the produced path and the job's error.
func (m TaskModel) Result() (string, error) {
	return m.path, m.err
}

// RunTask runs job behind a spinner. It returns ErrCancelled when the user
// interrupts before the job reports back.
func RunTask(label string, job func() (string, error)) (string, error) {
	final, err := tea.NewProgram(NewTaskModel(label, job)).Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(TaskModel)
	if !ok || !m.done {
		return "", ErrCancelled
	}

	return m.Result()
}
