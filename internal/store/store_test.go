package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/inovacc/clientrec/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		step: time.Second,
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now
	c.now = c.now.Add(c.step)

	return t
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()

	clock := newFakeClock()

	st, err := Open(t.Context(), filepath.Join(t.TempDir(), "data", "test.db"), WithClock(clock.Now))
	require.NoError(t, err)

	t.Cleanup(func() { _ = st.Close() })

	return st, clock
}

func strPtr(s string) *string { return &s }

func mustCreateClient(t *testing.T, st *Store, in model.NewClient) int64 {
	t.Helper()

	id, err := st.CreateClient(t.Context(), in)
	require.NoError(t, err)

	return id
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientrec.db")

	st, err := Open(t.Context(), path)
	require.NoError(t, err)

	_, err = st.CreateClient(t.Context(), model.NewClient{Name: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = Open(t.Context(), path)
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	clients, err := st.ListClients(t.Context())
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestOpen_MigrationFailure(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	gooseUpContext = func(context.Context, *sql.DB, string) error {
		return fmt.Errorf("boom")
	}

	_, err := Open(t.Context(), filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running migrations")
}
