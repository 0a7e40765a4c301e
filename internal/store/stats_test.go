package store

import (
	"fmt"
	"testing"

	"github.com/inovacc/clientrec/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStats_Empty(t *testing.T) {
	st, _ := newTestStore(t)

	stats, err := st.ClientStats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalClients)
	assert.Empty(t, stats.ByCountry)
	assert.Empty(t, stats.ByCity)
}

func TestClientStats_Grouping(t *testing.T) {
	st, _ := newTestStore(t)

	seed := []model.NewClient{
		{Country: "Spain", City: "Madrid"},
		{Country: "Spain", City: "Madrid"},
		{Country: "Spain", City: "Sevilla"},
		{Country: "Mexico", City: "Puebla"},
		{Country: "Argentina", City: "Rosario"},
		{Country: "", City: ""},
		{Country: "Chile"},
	}

	for i, c := range seed {
		c.Name = fmt.Sprintf("client %d", i)
		c.Email = fmt.Sprintf("c%d@x.com", i)
		mustCreateClient(t, st, c)
	}

	stats, err := st.ClientStats(t.Context())
	require.NoError(t, err)

	assert.Equal(t, len(seed), stats.TotalClients)
	assert.Equal(t, []model.CountEntry{
		{Key: "Spain", Count: 3},
		{Key: "Argentina", Count: 1},
		{Key: "Chile", Count: 1},
		{Key: "Mexico", Count: 1},
	}, stats.ByCountry)
	assert.Equal(t, []model.CountEntry{
		{Key: "Madrid", Count: 2},
		{Key: "Puebla", Count: 1},
		{Key: "Rosario", Count: 1},
		{Key: "Sevilla", Count: 1},
	}, stats.ByCity)
}

func TestClientStats_TopTenCities(t *testing.T) {
	st, _ := newTestStore(t)

	n := 0
	for city := range 14 {
		// city k gets k+1 clients so every count is distinct
		for range city + 1 {
			mustCreateClient(t, st, model.NewClient{
				Name:  fmt.Sprintf("c%d", n),
				Email: fmt.Sprintf("c%d@x.com", n),
				City:  fmt.Sprintf("city-%02d", city),
			})
			n++
		}
	}

	stats, err := st.ClientStats(t.Context())
	require.NoError(t, err)

	require.Len(t, stats.ByCity, 10)
	assert.Equal(t, "city-13", stats.ByCity[0].Key)
	assert.Equal(t, 14, stats.ByCity[0].Count)

	for i := 1; i < len(stats.ByCity); i++ {
		assert.GreaterOrEqual(t, stats.ByCity[i-1].Count, stats.ByCity[i].Count)
	}

	assert.Empty(t, stats.ByCountry)
}

func TestReportStats(t *testing.T) {
	st, _ := newTestStore(t)

	empty, err := st.ReportStats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalReports)
	assert.Empty(t, empty.ByStatus)
	assert.Empty(t, empty.ByType)

	clientID := mustCreateClient(t, st, model.NewClient{Name: "Ana", Email: "ana@x.com"})

	for _, in := range []model.NewReport{
		{ClientID: clientID, Title: "a"},
		{ClientID: clientID, Title: "b", Type: "audit"},
		{ClientID: clientID, Title: "c", Type: "audit"},
	} {
		_, err := st.CreateReport(t.Context(), in)
		require.NoError(t, err)
	}

	ok, err := st.UpdateReportStatus(t.Context(), 1, "completed")
	require.NoError(t, err)
	require.True(t, ok)

	stats, err := st.ReportStats(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalReports)
	assert.Equal(t, map[string]int{"pending": 2, "completed": 1}, stats.ByStatus)
	assert.Equal(t, map[string]int{"general": 1, "audit": 2}, stats.ByType)
}
