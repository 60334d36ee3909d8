package users

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/infra/storage/kv"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRepo(t *testing.T) (*Repository, *kv.FileStore) {
	t.Helper()

	store, err := kv.NewFileStore(filepath.Join(t.TempDir(), "agenda.json"))
	require.NoError(t, err)
	return NewRepository(store, nopLogger{}), store
}

func TestLoad_SeedsDefaultAccountsOnFirstRun(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	users, err := repo.Load(ctx)
	require.NoError(t, err)

	require.Len(t, users, 2)
	assert.Equal(t, "admin@avora.com", users[0].Email)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
	assert.Equal(t, "user@avora.com", users[1].Email)
	assert.Equal(t, domain.RoleUser, users[1].Role)

	// Пароли захэшированы, не в открытом виде
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("admin123")))

	// Стартовые записи сразу записаны в хранилище
	_, err = store.Load(ctx, domain.KeyUsers)
	assert.NoError(t, err)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	saved := []domain.User{{
		Email:        "ana@example.com",
		Name:         "Ana Costa",
		Role:         domain.RoleUser,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}
