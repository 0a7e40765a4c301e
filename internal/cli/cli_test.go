package cli

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/clientrec/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMenu_SelectsAction(t *testing.T) {
	m := NewMenu("Main", []MenuItem{
		{Title: "Login", Action: "login"},
		{Title: "Exit", Action: "exit"},
	})

	next, _ := m.Update(key("down"))
	next, cmd := next.Update(key("enter"))

	assert.Equal(t, "exit", next.(MenuModel).GetChoice())
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestMenu_QuitWithoutChoice(t *testing.T) {
	m := NewMenu("Main", []MenuItem{{Title: "Login", Action: "login"}})

	next, cmd := m.Update(key("q"))

	assert.Empty(t, next.(MenuModel).GetChoice())
	assert.NotNil(t, cmd)
}

func TestClientList_Select(t *testing.T) {
	clients := []model.Client{
		{ID: 1, Name: "Ana", Email: "ana@x.com"},
		{ID: 2, Name: "Luis", Email: "luis@x.com", Company: "Globex", City: "Lima"},
	}

	m := NewClientList("Clients", clients)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	next, _ = next.Update(key("down"))
	next, _ = next.Update(key("enter"))

	selected := next.(ClientListModel).GetSelectedClient()
	require.NotNil(t, selected)
	assert.Equal(t, int64(2), selected.ID)
}

func TestClientItem_Description(t *testing.T) {
	item := clientItem{client: model.Client{ID: 2, Name: "Luis", Email: "luis@x.com", Company: "Globex", City: "Lima"}}

	assert.Equal(t, "#2 Luis", item.Title())
	assert.Equal(t, "luis@x.com | Globex | Lima", item.Description())
}

func TestForm_RequiredAndValues(t *testing.T) {
	m := NewForm("New client", []Field{
		{Label: "Name", Required: true},
		{Label: "City", Value: " Lima "},
	})

	// jump to the submit button with the name still empty
	_, _ = m.Update(key("tab"))
	_, _ = m.Update(key("tab"))
	_, cmd := m.Update(key("enter"))

	assert.Nil(t, cmd)
	assert.False(t, m.Submitted)
	assert.Contains(t, m.View(), "Name is required")

	// back to the first field and type a name
	_, _ = m.Update(key("tab"))
	for _, r := range "Ana" {
		_, _ = m.Update(key(string(r)))
	}

	_, _ = m.Update(key("tab"))
	_, _ = m.Update(key("tab"))
	_, cmd = m.Update(key("enter"))

	assert.NotNil(t, cmd)
	assert.True(t, m.Submitted)
	assert.Equal(t, []string{"Ana", "Lima"}, m.Values())
}

func TestForm_Cancel(t *testing.T) {
	m := NewForm("New client", []Field{{Label: "Name"}})

	_, _ = m.Update(key("esc"))

	assert.True(t, m.Cancelled)
	assert.Empty(t, m.View())
}

func TestStyles(t *testing.T) {
	assert.Contains(t, Success("saved %d", 3), "saved 3")
	assert.Contains(t, Failure(errors.New("boom")), "boom")
	assert.Contains(t, Warning("careful"), "careful")
	assert.Contains(t, Box("Info", [][2]string{{"Version", "1.0.0"}}), "1.0.0")
}

func TestTask_ReportsJobResult(t *testing.T) {
	m := NewTaskModel("Writing clients.csv", func() (string, error) {
		return "/tmp/clients.csv", nil
	})

	assert.Contains(t, m.View(), "Writing clients.csv")

	msg := m.run()
	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)

	path, err := next.(TaskModel).Result()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/clients.csv", path)
	assert.Contains(t, next.View(), "/tmp/clients.csv")
}

func TestTask_ReportsJobError(t *testing.T) {
	boom := errors.New("disk full")
	m := NewTaskModel("Writing report.pdf", func() (string, error) { return "", boom })

	next, _ := m.Update(m.run())

	_, err := next.(TaskModel).Result()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, next.View(), "disk full")
}

func TestBatch_RunsJobsInOrder(t *testing.T) {
	var order []string

	job := func(name string, err error) BatchJob {
		return BatchJob{Name: name, Run: func() (string, error) {
			order = append(order, name)
			if err != nil {
				return "", err
			}

			return "/out/" + name, nil
		}}
	}

	m := NewBatchModel([]BatchJob{
		job("clients.csv", nil),
		job("reports.xlsx", errors.New("locked")),
		job("statistics.pdf", nil),
	})

	require.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "0/3")

	for range 3 {
		msg := m.runNext()()
		_, _ = m.Update(msg)
	}

	assert.Equal(t, []string{"clients.csv", "reports.xlsx", "statistics.pdf"}, order)

	results := m.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "/out/clients.csv", results[0].Path)
	assert.EqualError(t, results[1].Err, "locked")

	view := m.View()
	assert.Contains(t, view, "2 written, 1 failed")
	assert.Contains(t, view, "[FAIL] reports.xlsx")
}

func TestBatch_Cancel(t *testing.T) {
	m := NewBatchModel([]BatchJob{{Name: "a", Run: func() (string, error) { return "a", nil }}})

	_, cmd := m.Update(key("q"))
	assert.NotNil(t, cmd)
	assert.True(t, m.cancelled)
	assert.Empty(t, m.Results())
}

func TestBatch_Empty(t *testing.T) {
	m := NewBatchModel(nil)

	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "0 written, 0 failed")
}
