package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/infra/storage/kv"
)

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *kv.FileStore) {
	t.Helper()

	store, err := kv.NewFileStore(filepath.Join(t.TempDir(), "agenda.json"))
	require.NoError(t, err)

	svc := NewService(store, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2024, 3, 7, 3, 0, 0, 0, time.UTC)}
	return svc, store
}

func seedStore(t *testing.T, store *kv.FileStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.KeyProfessionals, []byte(`[{"id":1},{"id":2}]`)))
	require.NoError(t, store.Save(ctx, domain.KeyUsers, []byte(`[{"id":1}]`)))
	require.NoError(t, store.Save(ctx, domain.KeyAppointments, []byte(`{"2024-3-5":[{"id":1},{"id":2}],"2024-3-7":[{"id":3}]}`)))
	require.NoError(t, store.Save(ctx, domain.KeyDarkMode, []byte(`true`)))
}

func TestExport_SkipsMissingKeys(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	require.NoError(t, store.Save(ctx, domain.KeyDarkMode, []byte(`true`)))

	data, err := svc.Export(ctx)
	require.NoError(t, err)

	var snapshot map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &snapshot))

	require.Len(t, snapshot, 1)
	assert.JSONEq(t, `true`, string(snapshot[domain.KeyDarkMode]))
}

func TestImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedStore(t, store)

	exported, err := svc.Export(ctx)
	require.NoError(t, err)

	require.NoError(t, store.ClearAll(ctx))

	result, err := svc.Import(ctx, exported)
	require.NoError(t, err)
	assert.Equal(t, 4, result.KeysImported)

	value, err := store.Load(ctx, domain.KeyProfessionals)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(value))
}

func TestImport_ReplacesExistingState(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedStore(t, store)

	snapshot := []byte(`{"avoraDarkMode":false}`)

	result, err := svc.Import(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, 1, result.KeysImported)

	// Старые ключи снесены, остался только импортированный
	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.KeyDarkMode}, keys)
}

func TestImport_MalformedPayloadLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedStore(t, store)

	for _, payload := range []string{`not json`, `[1,2,3]`, `null`} {
		_, err := svc.Import(ctx, []byte(payload))
		assert.ErrorIs(t, err, ErrMalformedImport, "payload %q", payload)
	}

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 4)
}

func TestImport_PreservesUnknownKeys(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	_, err := svc.Import(ctx, []byte(`{"avoraDarkMode":true,"customKey":"custom"}`))
	require.NoError(t, err)

	value, err := store.Load(ctx, "customKey")
	require.NoError(t, err)
	assert.JSONEq(t, `"custom"`, string(value))
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedStore(t, store)

	require.NoError(t, svc.ClearAll(ctx))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestInfo(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedStore(t, store)

	info, err := svc.Info(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, info.Keys)
	assert.Equal(t, 2, info.Professionals)
	assert.Equal(t, 1, info.Users)
	assert.Equal(t, 3, info.Appointments)
	assert.Regexp(t, `^\d+\.\d{2} KB$`, info.StorageSize)
}

func TestWriteBackupFile(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	seedStore(t, store)

	dir := filepath.Join(t.TempDir(), "backups")

	path, err := svc.WriteBackupFile(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "avora-backup-2024-03-07.json"), path)

	// Записанный файл - валидный снапшот, пригодный для импорта
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	result, err := svc.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 4, result.KeysImported)
}
