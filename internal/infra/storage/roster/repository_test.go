package roster

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestLoad_SeedsDefaultRosterOnFirstRun(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	roster, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfessionals, roster)

	// Стартовый ростер сразу записан в хранилище
	_, err = store.Load(ctx, domain.KeyProfessionals)
	assert.NoError(t, err)
}

func TestLoad_MalformedJSONFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	require.NoError(t, store.Save(ctx, domain.KeyProfessionals, []byte(`{broken`)))

	roster, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfessionals, roster)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	saved := []domain.Professional{{
		ID:        42,
		Name:      "Carla Mendes",
		Specialty: "Manicure",
		WorkDays:  domain.WorkDays{Saturday: true},
		StartTime: "10:00",
		EndTime:   "16:00",
		Active:    true,
	}}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}
