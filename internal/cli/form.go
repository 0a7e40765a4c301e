package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const fmtV1 = " %s\n %s\n\n"

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle  = focusedStyle
	noStyle      = lipgloss.NewStyle()
	formHelp     = blurredStyle

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
)

// Field describes one form input.
type Field struct {
	Label       string
	Placeholder string
	Value       string
	Required    bool
	Secret      bool
}

type FormModel struct {
	title      string
	fields     []Field
	inputs     []textinput.Model
	focusIndex int
	Submitted  bool
	Cancelled  bool
	missing    string
}

func NewForm(title string, fields []Field) *FormModel {
	m := &FormModel{
		title:  title,
		fields: fields,
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, f := range fields {
		t := textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256
		t.Placeholder = f.Placeholder
		t.SetValue(f.Value)

		if f.Secret {
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}

		if i == 0 {
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		}

		m.inputs[i] = t
	}

	return m
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Cancelled = true
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Submit on enter when on the button
			if s == "enter" && m.focusIndex == len(m.inputs) {
				if label := m.firstMissing(); label != "" {
					m.missing = label
					return m, nil
				}

				m.Submitted = true

				return m, tea.Quit
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.refocus()
		}
	}

	return m, m.updateInputs(msg)
}

func (m *FormModel) refocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle

			continue
		}

		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = noStyle
		m.inputs[i].TextStyle = noStyle
	}

	return tea.Batch(cmds...)
}

func (m *FormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only focused inputs react to key presses.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *FormModel) firstMissing() string {
	for i, f := range m.fields {
		if f.Required && strings.TrimSpace(m.inputs[i].Value()) == "" {
			return f.Label
		}
	}

	return ""
}

// Values returns the trimmed input values in field order.
func (m *FormModel) Values() []string {
	out := make([]string, len(m.inputs))
	for i := range m.inputs {
		out[i] = strings.TrimSpace(m.inputs[i].Value())
	}

	return out
}

func (m *FormModel) View() string {
	if m.Submitted || m.Cancelled {
		return ""
	}

	s := headerStyle.Render(m.title) + "\n"
	s += blurredStyle.Render("Fill in the fields below and press Tab to navigate") + "\n\n"

	for i, f := range m.fields {
		label := f.Label
		if f.Required {
			label += " *"
		}

		s += fmt.Sprintf(fmtV1, blurredStyle.Render(label+":"), m.inputs[i].View())
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)

	if m.missing != "" {
		s += errorStyle.Render(fmt.Sprintf(" %s is required", m.missing)) + "\n\n"
	}

	s += formHelp.Render(" tab/shift+tab: navigate • enter: submit • esc: cancel")

	return s
}

// RunForm shows a form and returns the entered values.
func RunForm(title string, fields []Field) ([]string, error) {
	final, err := tea.NewProgram(NewForm(title, fields)).Run()
	if err != nil {
		return nil, err
	}

	m := final.(*FormModel)
	if !m.Submitted {
		return nil, ErrCancelled
	}

	return m.Values(), nil
}
