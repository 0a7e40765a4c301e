package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	boldStyle = lipgloss.NewStyle().Bold(true)
)

// BatchJob is one named unit of work that produces a file.
type BatchJob struct {
	Name string
	Run  func() (string, error)
}

// BatchResult is the outcome of a BatchJob.
type BatchResult struct {
	Name     string
	Path     string
	Err      error
	Duration time.Duration
}

// BatchModel runs jobs one after the other behind a progress bar.
type BatchModel struct {
	jobs    []BatchJob
	results []BatchResult
	current int

	spinner  spinner.Model
	progress progress.Model

	done      bool
	cancelled bool
}

type batchResultMsg struct {
	result BatchResult
}

// NewBatchModel creates a batch model for jobs.
func NewBatchModel(jobs []BatchJob) *BatchModel {
	m := &BatchModel{
		jobs:    jobs,
		results: make([]BatchResult, 0, len(jobs)),
	}

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = spinnerStyle

	m.progress = progress.New(progress.WithDefaultGradient())

	return m
}

func (m *BatchModel) Init() tea.Cmd {
	if len(m.jobs) == 0 {
		m.done = true
		return tea.Quit
	}

	return tea.Batch(m.spinner.Tick, m.runNext())
}

// runNext runs the job at m.current and reports its result.
func (m *BatchModel) runNext() tea.Cmd {
	job := m.jobs[m.current]

	return func() tea.Msg {
		start := time.Now()
		path, err := job.Run()

		return batchResultMsg{result: BatchResult{
			Name:     job.Name,
			Path:     path,
			Err:      err,
			Duration: time.Since(start),
		}}
	}
}

func (m *BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}

	case batchResultMsg:
		m.results = append(m.results, msg.result)
		m.current++

		if m.current >= len(m.jobs) {
			m.done = true
			return m, tea.Quit
		}

		return m, m.runNext()

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *BatchModel) View() string {
	if m.done {
		return m.renderComplete()
	}

	var b strings.Builder

	total := len(m.jobs)

	b.WriteString("\n")
	b.WriteString(boldStyle.Render("Exporting"))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d files)", total)))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(float64(m.current) / float64(total)))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" %d/%d\n\n", m.current, total)))

	if m.current < total {
		b.WriteString(fmt.Sprintf("  %s %s\n\n", m.spinner.View(), m.jobs[m.current].Name))
	}

	b.WriteString(m.renderResults())
	b.WriteString(dimStyle.Render("Press 'q' to cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m *BatchModel) renderResults() string {
	var b strings.Builder

	for _, r := range m.results {
		if r.Err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("  [FAIL] %s", r.Name)))
			b.WriteString(dimStyle.Render(fmt.Sprintf(" - %v\n", r.Err)))

			continue
		}

		b.WriteString(successStyle.Render(fmt.Sprintf("  [OK] %s", r.Name)))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" - %s (%.1fs)\n", r.Path, r.Duration.Seconds())))
	}

	if len(m.results) > 0 {
		b.WriteString("\n")
	}

	return b.String()
}

func (m *BatchModel) renderComplete() string {
	failed := 0
	for _, r := range m.results {
		if r.Err != nil {
			failed++
		}
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.renderResults())

	summary := fmt.Sprintf("Export complete: %d written, %d failed", len(m.results)-failed, failed)
	if failed > 0 {
		b.WriteString(warnStyle.Render(summary))
	} else {
		b.WriteString(successStyle.Render(summary))
	}

	b.WriteString("\n\n")

	return b.String()
}

// Results returns the results of the jobs that have finished.
func (m *BatchModel) Results() []BatchResult {
	return m.results
}

// RunBatch runs jobs behind a progress bar. When the user cancels, the
// results gathered so far are returned with ErrCancelled.
func RunBatch(jobs []BatchJob) ([]BatchResult, error) {
	m := NewBatchModel(jobs)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return nil, err
	}

	if m.cancelled {
		return m.Results(), ErrCancelled
	}

	return m.Results(), nil
}
