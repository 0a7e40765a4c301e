package store

import (
	"testing"

	"github.com/inovacc/clientrec/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClient_GetReturnsSuppliedFields(t *testing.T) {
	tests := []struct {
		name string
		in   model.NewClient
	}{
		{name: "required only", in: model.NewClient{Name: "Ana Gomez", Email: "ana@x.com"}},
		{
			name: "all fields",
			in: model.NewClient{
				Name:    "José Pérez",
				Email:   "jose@empresa.es",
				Phone:   "+34 600 000 000",
				Company: "Empresa SL",
				Address: "Calle Mayor 1",
				City:    "Madrid",
				Country: "España",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := newTestStore(t)

			id := mustCreateClient(t, st, tt.in)

			got, err := st.GetClient(t.Context(), id)
			require.NoError(t, err)

			assert.Equal(t, id, got.ID)
			assert.Equal(t, tt.in.Name, got.Name)
			assert.Equal(t, tt.in.Email, got.Email)
			assert.Equal(t, tt.in.Phone, got.Phone)
			assert.Equal(t, tt.in.Company, got.Company)
			assert.Equal(t, tt.in.Address, got.Address)
			assert.Equal(t, tt.in.City, got.City)
			assert.Equal(t, tt.in.Country, got.Country)
			assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestCreateClient_DuplicateEmail(t *testing.T) {
	st, _ := newTestStore(t)

	first := mustCreateClient(t, st, model.NewClient{Name: "Ana", Email: "ana@x.com"})

	_, err := st.CreateClient(t.Context(), model.NewClient{Name: "Other Ana", Email: "ana@x.com"})
	require.ErrorIs(t, err, ErrConstraintViolation)
	assert.NotErrorIs(t, err, ErrForeignKey)

	got, err := st.GetClient(t.Context(), first)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
}

func TestCreateClient_MissingField(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.CreateClient(t.Context(), model.NewClient{Name: "", Email: "a@x.com"})
	require.ErrorIs(t, err, ErrMissingField)

	_, err = st.CreateClient(t.Context(), model.NewClient{Name: "A", Email: "  "})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestGetClient_NotFound(t *testing.T) {
	st, _ := newTestStore(t)

	c, err := st.GetClient(t.Context(), 42)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, c)
}

func TestListClients_NewestFirst(t *testing.T) {
	st, _ := newTestStore(t)

	empty, err := st.ListClients(t.Context())
	require.NoError(t, err)
	assert.Empty(t, empty)

	a := mustCreateClient(t, st, model.NewClient{Name: "A", Email: "a@x.com"})
	b := mustCreateClient(t, st, model.NewClient{Name: "B", Email: "b@x.com"})
	c := mustCreateClient(t, st, model.NewClient{Name: "C", Email: "c@x.com"})

	clients, err := st.ListClients(t.Context())
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, []int64{c, b, a}, []int64{clients[0].ID, clients[1].ID, clients[2].ID})
}

func TestSearchClients(t *testing.T) {
	st, _ := newTestStore(t)

	mustCreateClient(t, st, model.NewClient{Name: "Ana Gomez", Email: "ana@x.com", Company: "Acme"})
	mustCreateClient(t, st, model.NewClient{Name: "Luis Ruiz", Email: "luis@globex.com"})
	mustCreateClient(t, st, model.NewClient{Name: "Marta 100%", Email: "marta@y.com", Company: "Initech"})

	tests := []struct {
		term string
		want []string
	}{
		{term: "ana", want: []string{"Ana Gomez"}},
		{term: "GLOBEX", want: []string{"Luis Ruiz"}},
		{term: "acme", want: []string{"Ana Gomez"}},
		{term: "100%", want: []string{"Marta 100%"}},
		{term: "%", want: []string{"Marta 100%"}},
		{term: "nobody", want: []string{}},
		{term: "", want: []string{"Marta 100%", "Luis Ruiz", "Ana Gomez"}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			clients, err := st.SearchClients(t.Context(), tt.term)
			require.NoError(t, err)

			names := make([]string, 0, len(clients))
			for _, c := range clients {
				names = append(names, c.Name)
			}

			assert.Equal(t, tt.want, names)
		})
	}
}

func TestUpdateClient_ChangesOnlyNamedFields(t *testing.T) {
	st, _ := newTestStore(t)

	id := mustCreateClient(t, st, model.NewClient{
		Name: "Ana", Email: "ana@x.com", Phone: "123", City: "Lima", Country: "Peru",
	})

	before, err := st.GetClient(t.Context(), id)
	require.NoError(t, err)

	ok, err := st.UpdateClient(t.Context(), id, model.ClientUpdate{City: strPtr("Cusco"), Phone: strPtr("")})
	require.NoError(t, err)
	assert.True(t, ok)

	after, err := st.GetClient(t.Context(), id)
	require.NoError(t, err)

	assert.Equal(t, "Cusco", after.City)
	assert.Empty(t, after.Phone)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.Country, after.Country)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateClient_NoWrite(t *testing.T) {
	st, _ := newTestStore(t)

	id := mustCreateClient(t, st, model.NewClient{Name: "Ana", Email: "ana@x.com"})

	before, err := st.GetClient(t.Context(), id)
	require.NoError(t, err)

	tests := []struct {
		name string
		id   int64
		upd  model.ClientUpdate
	}{
		{name: "empty update", id: id, upd: model.ClientUpdate{}},
		{name: "missing id", id: id + 100, upd: model.ClientUpdate{Name: strPtr("Ghost")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := st.UpdateClient(t.Context(), tt.id, tt.upd)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}

	after, err := st.GetClient(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	clients, err := st.ListClients(t.Context())
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestUpdateClient_Errors(t *testing.T) {
	st, _ := newTestStore(t)

	mustCreateClient(t, st, model.NewClient{Name: "Ana", Email: "ana@x.com"})
	id := mustCreateClient(t, st, model.NewClient{Name: "Luis", Email: "luis@x.com"})

	_, err := st.UpdateClient(t.Context(), id, model.ClientUpdate{Email: strPtr("ana@x.com")})
	require.ErrorIs(t, err, ErrConstraintViolation)

	_, err = st.UpdateClient(t.Context(), id, model.ClientUpdate{Name: strPtr("")})
	require.ErrorIs(t, err, ErrMissingField)

	got, err := st.GetClient(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "luis@x.com", got.Email)
	assert.Equal(t, "Luis", got.Name)
}

func TestDeleteClient_SecondDeleteReturnsFalse(t *testing.T) {
	st, _ := newTestStore(t)

	id := mustCreateClient(t, st, model.NewClient{Name: "Ana", Email: "ana@x.com"})

	ok, err := st.DeleteClient(t.Context(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = st.DeleteClient(t.Context(), id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteClient_RestrictedByReports(t *testing.T) {
	st, _ := newTestStore(t)

	id := mustCreateClient(t, st, model.NewClient{Name: "Ana", Email: "ana@x.com"})
	reportID, err := st.CreateReport(t.Context(), model.NewReport{ClientID: id, Title: "Q1"})
	require.NoError(t, err)

	ok, err := st.DeleteClient(t.Context(), id)
	require.ErrorIs(t, err, ErrClientHasReports)
	require.ErrorIs(t, err, ErrConstraintViolation)
	assert.False(t, ok)

	_, err = st.GetClient(t.Context(), id)
	require.NoError(t, err)

	_, err = st.GetReport(t.Context(), reportID)
	require.NoError(t, err)
}

// Ana Gomez walk-through: create, list, delete twice.
func TestClientLifecycle(t *testing.T) {
	st, _ := newTestStore(t)

	id, err := st.CreateClient(t.Context(), model.NewClient{Name: "Ana Gomez", Email: "ana@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	clients, err := st.ListClients(t.Context())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana Gomez", clients[0].Name)
	assert.Empty(t, clients[0].Phone)

	ok, err := st.DeleteClient(t.Context(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = st.GetClient(t.Context(), id)
	require.ErrorIs(t, err, ErrNotFound)

	ok, err = st.DeleteClient(t.Context(), id)
	require.NoError(t, err)
	assert.False(t, ok)
}
