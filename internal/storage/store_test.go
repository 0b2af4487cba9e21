package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV is an in-memory KV for exercising Load/Save failure paths.
type memKV struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemKV() *memKV { return &memKV{values: map[string]string{}} }

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *memKV) Close() error { return nil }

func sampleBook(t *testing.T) *day.Book {
	t.Helper()
	b := day.NewBook()
	b.SetOff("2026-02-01", true)
	b.SetPushSets("2026-02-10", 2)
	require.NoError(t, b.AddHang("2026-02-10", 40, true))
	require.NoError(t, b.AddHang("2026-02-10", 25, false))
	b.SetNotes("2026-02-10", "grip gave out")
	b.SetPushSets("2026-03-01", 5)
	return b
}

func TestLoadMissing(t *testing.T) {
	b := Load(context.Background(), newMemKV())

	require.NotNil(t, b)
	assert.NotNil(t, b.Days)
	assert.Empty(t, b.Days)
}

func TestLoadMalformed(t *testing.T) {
	for _, raw := range []string{"{not json", "null", "[]", `"days"`, `{"days":5}`} {
		t.Run(raw, func(t *testing.T) {
			kv := newMemKV()
			kv.values[StorageKey] = raw

			b := Load(context.Background(), kv)

			require.NotNil(t, b)
			assert.Empty(t, b.Days)
		})
	}
}

func TestLoadBackendError(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk on fire")

	b := Load(context.Background(), kv)

	assert.Empty(t, b.Days)
}

func TestLoadDefaultsDays(t *testing.T) {
	kv := newMemKV()
	kv.values[StorageKey] = `{"settings":{"theme":"dark"}}`

	b := Load(context.Background(), kv)

	assert.NotNil(t, b.Days)
	assert.Empty(t, b.Days)
}

func TestSaveAndLoad(t *testing.T) {
	kv := newMemKV()
	b := sampleBook(t)

	require.NoError(t, Save(context.Background(), kv, b))
	got := Load(context.Background(), kv)

	assert.Equal(t, b, got)
}

func TestSaveError(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("read-only")

	err := Save(context.Background(), kv, day.NewBook())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving log")
}

func TestExportImportRoundTrip(t *testing.T) {
	b := sampleBook(t)
	var buf bytes.Buffer
	require.NoError(t, Export(b, &buf))
	assert.Contains(t, buf.String(), "\n  \"days\"")

	kv := newMemKV()
	target := day.NewBook()
	require.NoError(t, Import(context.Background(), kv, target, &buf))

	assert.Equal(t, b.Days, target.Days)
	assert.Equal(t, b, Load(context.Background(), kv))
}

func TestImportWithoutDaysLeavesBookUnchanged(t *testing.T) {
	kv := newMemKV()
	b := sampleBook(t)
	require.NoError(t, Save(context.Background(), kv, b))
	before := kv.values[StorageKey]

	err := Import(context.Background(), kv, b, strings.NewReader(`{"notdays":{}}`))

	var importErr *day.ImportError
	require.True(t, errors.As(err, &importErr))
	assert.Contains(t, err.Error(), "import failed")
	assert.Equal(t, sampleBook(t), b)
	assert.Equal(t, before, kv.values[StorageKey])
}

func TestImportInvalidJSON(t *testing.T) {
	kv := newMemKV()
	b := sampleBook(t)

	err := Import(context.Background(), kv, b, strings.NewReader(`{"days":`))

	var importErr *day.ImportError
	require.True(t, errors.As(err, &importErr))
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.Equal(t, sampleBook(t), b)
	assert.Empty(t, kv.values)
}

func TestImportSaveErrorLeavesBookUnchanged(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("disk full")
	b := sampleBook(t)

	err := Import(context.Background(), kv, b, strings.NewReader(`{"days":{"2026-03-01":{"off":true}}}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, sampleBook(t), b)
	assert.Empty(t, kv.values)
}

func TestLoadEditSaveKeepsWronglyTypedFields(t *testing.T) {
	kv := newMemKV()
	kv.values[StorageKey] = `{"days":{"2026-02-01":{"off":"yes","pushSets":3.5,"hangs":[{"sec":"40","feet":true}]}}}`

	b := Load(context.Background(), kv)
	b.SetNotes("2026-02-01", "x")
	require.NoError(t, Save(context.Background(), kv, b))

	assert.JSONEq(t,
		`{"days":{"2026-02-01":{"off":"yes","pushSets":3.5,"hangs":[{"sec":"40","feet":true}],"notes":"x"}}}`,
		kv.values[StorageKey])
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("file vanished") }

func TestImportReadError(t *testing.T) {
	b := day.NewBook()

	err := Import(context.Background(), newMemKV(), b, failingReader{})

	require.Error(t, err)
	assert.Equal(t, "import failed: file vanished", err.Error())
}

func TestImportEmptyDaysAccepted(t *testing.T) {
	kv := newMemKV()
	b := sampleBook(t)

	require.NoError(t, Import(context.Background(), kv, b, strings.NewReader(`{"days":{}}`)))

	assert.Empty(t, b.Days)
	assert.Equal(t, `{"days":{}}`, kv.values[StorageKey])
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "daily-pushups-backup-2026-02-14.json", ExportFileName(now))
}
