package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers(t *testing.T) {
	st, _ := newTestStore(t)

	n, err := st.CountUsers(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	id, err := st.InsertUser(t.Context(), "admin", "hash-1", true)
	require.NoError(t, err)

	_, err = st.InsertUser(t.Context(), "admin", "hash-2", false)
	require.ErrorIs(t, err, ErrConstraintViolation)

	u, err := st.GetUserByUsername(t.Context(), "admin")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "hash-1", u.PasswordHash)
	assert.True(t, u.IsAdmin)
	assert.False(t, u.CreatedAt.IsZero())

	ok, err := st.UpdatePasswordHash(t.Context(), id, "hash-3")
	require.NoError(t, err)
	assert.True(t, ok)

	u, err = st.GetUserByID(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "hash-3", u.PasswordHash)

	ok, err = st.UpdatePasswordHash(t.Context(), id+1, "hash-4")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = st.GetUserByUsername(t.Context(), "nobody")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetUserByID(t.Context(), 99)
	require.ErrorIs(t, err, ErrNotFound)

	n, err = st.CountUsers(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
