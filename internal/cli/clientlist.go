package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/clientrec/internal/model"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

type clientItem struct {
	client model.Client
}

func (i clientItem) Title() string {
	return fmt.Sprintf("#%d %s", i.client.ID, i.client.Name)
}

func (i clientItem) Description() string {
	desc := i.client.Email

	if i.client.Company != "" {
		desc = fmt.Sprintf("%s | %s", desc, i.client.Company)
	}

	if i.client.City != "" {
		desc = fmt.Sprintf("%s | %s", desc, i.client.City)
	}

	return desc
}

func (i clientItem) FilterValue() string {
	return i.client.Name + " " + i.client.Email + " " + i.client.Company
}

type ClientListModel struct {
	list     list.Model
	selected *model.Client
	quitting bool
}

func (m ClientListModel) Init() tea.Cmd {
	return nil
}

func (m ClientListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(clientItem)
			if ok {
				m.selected = &i.client
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ClientListModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	return docStyle.Render(m.list.View())
}

func (m ClientListModel) GetSelectedClient() *model.Client {
	return m.selected
}

func NewClientList(title string, clients []model.Client) ClientListModel {
	items := make([]list.Item, len(clients))
	for i, c := range clients {
		items[i] = clientItem{client: c}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return ClientListModel{list: l}
}

// PickClient lets the user choose one of clients.
func PickClient(title string, clients []model.Client) (*model.Client, error) {
	final, err := tea.NewProgram(NewClientList(title, clients), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	selected := final.(ClientListModel).GetSelectedClient()
	if selected == nil {
		return nil, ErrCancelled
	}

	return selected, nil
}
