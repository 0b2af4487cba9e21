package cli

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/GKA777/pushups-app/internal/config"
	"github.com/GKA777/pushups-app/internal/day"
	"github.com/GKA777/pushups-app/internal/storage"
	"github.com/stretchr/testify/require"
)

// fixedNow is Wednesday, February 11, 2026.
func fixedNow() time.Time {
	return time.Date(2026, 2, 11, 12, 0, 0, 0, time.Local)
}

// setupHome returns an empty home directory for a test.
func setupHome(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// seedBook saves the given JSON as the stored log under homeDir.
func seedBook(t *testing.T, homeDir, raw string) {
	t.Helper()
	var b day.Book
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	kv := storage.NewFileKV(config.Dir(homeDir))
	require.NoError(t, storage.Save(context.Background(), kv, &b))
}

// loadBook reads back the stored log under homeDir.
func loadBook(t *testing.T, homeDir string) *day.Book {
	t.Helper()
	return storage.Load(context.Background(), storage.NewFileKV(config.Dir(homeDir)))
}

const sampleLog = `{"days":{
	"2026-02-01": {"off":true,"pushSets":0,"hangs":[],"notes":"travel"},
	"2026-02-09": {"off":false,"pushSets":2,"hangs":[],"notes":""},
	"2026-02-10": {"off":false,"pushSets":3,"hangs":[{"sec":40,"feet":false},{"sec":30,"feet":true}],"notes":"felt strong"},
	"2026-03-01": {"off":false,"pushSets":5,"hangs":[],"notes":""}
}}`
