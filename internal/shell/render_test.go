package shell

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/inovacc/clientrec/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPrintClients(t *testing.T) {
	var buf bytes.Buffer

	PrintClients(&buf, nil)
	assert.Equal(t, "No clients found.\n", buf.String())

	buf.Reset()
	PrintClients(&buf, []model.Client{
		{ID: 1, Name: "Ana Gomez", Email: "ana@x.com", Company: "Acme", City: "Lima", Country: "Peru"},
		{ID: 2, Name: "Luis", Email: "luis@x.com"},
	})

	out := buf.String()
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[2], "Ana Gomez")
	assert.Contains(t, lines[3], "N/A")
	assert.Contains(t, out, "2 client(s)")
}

func TestPrintClient(t *testing.T) {
	var buf bytes.Buffer

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	PrintClient(&buf, model.Client{ID: 9, Name: "Ana", Email: "a@x.com", CreatedAt: ts, UpdatedAt: ts})

	out := buf.String()
	assert.Contains(t, out, "Name:")
	assert.Contains(t, out, "Ana")
	assert.Equal(t, 5, strings.Count(out, "N/A"))
}

func TestPrintReportsAndFields(t *testing.T) {
	var buf bytes.Buffer

	PrintReports(&buf, nil)
	PrintFields(&buf, nil)
	assert.Equal(t, "No reports found.\nNo fields.\n", buf.String())

	buf.Reset()
	PrintReports(&buf, []model.Report{{ID: 3, ClientName: "Ana", Title: "Visit", Type: "general", Status: "pending"}})
	PrintFields(&buf, []model.ReportField{{ReportID: 3, Name: "budget", Type: "number"}})

	out := buf.String()
	assert.Contains(t, out, "Visit")
	assert.Contains(t, out, "1 report(s)")
	assert.Contains(t, out, "budget")
	assert.Contains(t, out, "N/A")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer

	PrintStats(&buf,
		model.ClientStats{
			TotalClients: 3,
			ByCountry:    []model.CountEntry{{Key: "Peru", Count: 2}},
			ByCity:       []model.CountEntry{{Key: "Lima", Count: 2}},
		},
		model.ReportStats{
			TotalReports: 2,
			ByStatus:     map[string]int{"pending": 1, "completed": 1},
			ByType:       map[string]int{"general": 2},
		},
	)

	out := buf.String()
	assert.Contains(t, out, "Total clients:")
	assert.Contains(t, out, "country Peru")
	assert.Contains(t, out, "city Lima")
	assert.Contains(t, out, "status completed")
	assert.Contains(t, out, "type general")
	assert.Less(t, strings.Index(out, "status completed"), strings.Index(out, "status pending"))
}
