package auth

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inovacc/clientrec/internal/model"
	"github.com/inovacc/clientrec/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	st, err := store.Open(t.Context(), filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return NewManager(st, WithCost(bcrypt.MinCost))
}

func TestHashAndVerify(t *testing.T) {
	m := NewManager(nil, WithCost(bcrypt.MinCost))

	h1, err := m.Hash("s3cret")
	require.NoError(t, err)
	h2, err := m.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, strings.HasPrefix(h1, "$2"))

	for _, h := range []string{h1, h2} {
		assert.True(t, m.Verify("s3cret", h))
		assert.False(t, m.Verify("s3cret ", h))
		assert.False(t, m.Verify("", h))
	}

	assert.False(t, m.Verify("s3cret", "not-a-hash"))
}

func TestCreateUser(t *testing.T) {
	m := newTestManager(t)
	ctx := t.Context()

	exists, err := m.UserExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	outcome, err := m.CreateUser(ctx, "admin", "pw", true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, outcome)

	outcome, err = m.CreateUser(ctx, "admin", "other", false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeConflict, outcome)

	exists, err = m.UserExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = m.CreateUser(ctx, "  ", "pw", false)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = m.CreateUser(ctx, "bob", "", false)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	m := newTestManager(t)
	ctx := t.Context()

	_, err := m.CreateUser(ctx, "admin", "pw", true)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "match", username: "admin", password: "pw"},
		{name: "wrong password", username: "admin", password: "PW", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "ghost", password: "pw", wantErr: ErrInvalidCredentials},
		{name: "empty password", username: "admin", password: "", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "admin", got.Username)
			assert.True(t, got.IsAdmin)
			assert.NotZero(t, got.ID)
		})
	}
}

func TestChangePassword(t *testing.T) {
	m := newTestManager(t)
	ctx := t.Context()

	_, err := m.CreateUser(ctx, "admin", "old", true)
	require.NoError(t, err)

	u, err := m.Authenticate(ctx, "admin", "old")
	require.NoError(t, err)

	ok, err := m.ChangePassword(ctx, u.ID, "wrong", "new")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.ChangePassword(ctx, u.ID+10, "old", "new")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.ChangePassword(ctx, u.ID, "old", "new")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = m.Authenticate(ctx, "admin", "old")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = m.Authenticate(ctx, "admin", "new")
	require.NoError(t, err)
}

func TestChangePassword_EmptyNewPassword(t *testing.T) {
	m := newTestManager(t)
	ctx := t.Context()

	_, err := m.CreateUser(ctx, "admin", "old", true)
	require.NoError(t, err)

	u, err := m.Authenticate(ctx, "admin", "old")
	require.NoError(t, err)

	ok, err := m.ChangePassword(ctx, u.ID, "old", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, ok)

	_, err = m.Authenticate(ctx, "admin", "old")
	require.NoError(t, err)
}

func TestGetUserByUsername(t *testing.T) {
	m := newTestManager(t)
	ctx := t.Context()

	_, err := m.CreateUser(ctx, "maria", "s3cret", false)
	require.NoError(t, err)

	u, err := m.GetUserByUsername(ctx, " maria ")
	require.NoError(t, err)
	assert.Equal(t, "maria", u.Username)
	assert.False(t, u.IsAdmin)
	assert.NotZero(t, u.ID)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "$2")
	assert.NotContains(t, string(data), "password")

	missing, err := m.GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Nil(t, missing)
}

type failingStore struct {
	err error
}

func (f failingStore) InsertUser(context.Context, string, string, bool) (int64, error) {
	return 0, f.err
}

func (f failingStore) GetUserByUsername(context.Context, string) (*model.User, error) {
	return nil, f.err
}

func (f failingStore) GetUserByID(context.Context, int64) (*model.User, error) {
	return nil, f.err
}

func (f failingStore) UpdatePasswordHash(context.Context, int64, string) (bool, error) {
	return false, f.err
}

func (f failingStore) CountUsers(context.Context) (int, error) {
	return 0, f.err
}

func TestInfrastructureErrorsPropagate(t *testing.T) {
	boom := errors.New("unable to open database file")
	m := NewManager(failingStore{err: boom}, WithCost(bcrypt.MinCost))
	ctx := t.Context()

	_, err := m.CreateUser(ctx, "admin", "pw", true)
	require.ErrorIs(t, err, boom)

	_, err = m.Authenticate(ctx, "admin", "pw")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	_, err = m.UserExists(ctx)
	require.ErrorIs(t, err, boom)

	_, err = m.ChangePassword(ctx, 1, "a", "b")
	require.ErrorIs(t, err, boom)

	_, err = m.GetUserByUsername(ctx, "admin")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestConfirmPassword(t *testing.T) {
	assert.NoError(t, ConfirmPassword("a", "a"))
	assert.ErrorIs(t, ConfirmPassword("a", "b"), ErrPasswordMismatch)
}

func TestCreateOutcome_String(t *testing.T) {
	assert.Equal(t, "created", OutcomeCreated.String())
	assert.Equal(t, "conflict", OutcomeConflict.String())
	assert.Equal(t, "unknown", CreateOutcome(0).String())
}
