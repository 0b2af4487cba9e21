package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/sirupsen/logrus"
)

// StorageKey is the key the book is stored under. The suffix versions the
// layout.
const StorageKey = "daily_pushups_v1"

// ErrPersistenceRead marks saved data that could not be read. Load recovers
// from it; it only ever reaches the log.
var ErrPersistenceRead = errors.New("persisted data unreadable")

// Load reads the book from kv. Missing, unreadable or malformed data gives
// an empty book; the problem is logged and otherwise ignored.
func Load(ctx context.Context, kv KV) *day.Book {
	raw, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		logrus.WithError(fmt.Errorf("%w: %w", ErrPersistenceRead, err)).Warn("starting with an empty log")
		return day.NewBook()
	}
	if !ok || raw == "" {
		logrus.Debug("no saved log, starting empty")
		return day.NewBook()
	}

	var b day.Book
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		logrus.WithError(fmt.Errorf("%w: %w", ErrPersistenceRead, err)).Warn("starting with an empty log")
		return day.NewBook()
	}
	if b.Days == nil {
		b.Days = map[string]*day.Record{}
	}

	for _, key := range b.Keys() {
		r := b.Days[key]
		if r == nil || (r.Complete() && len(r.Malformed()) == 0) {
			continue
		}
		logrus.WithFields(logrus.Fields{
			"day":       key,
			"missing":   r.Missing(),
			"malformed": r.Malformed(),
		}).Debug("incomplete record, defaults fill in on first edit")
	}

	logrus.WithField("days", len(b.Days)).Debug("log loaded")
	return &b
}

// Save writes the whole book to kv, replacing what was there.
func Save(ctx context.Context, kv KV, b *day.Book) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding log: %w", err)
	}
	if err := kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("saving log: %w", err)
	}
	logrus.WithField("days", len(b.Days)).Debug("log saved")
	return nil
}

// Export writes the book as indented JSON.
func Export(b *day.Book, w io.Writer) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportFileName names a backup taken at now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("daily-pushups-backup-%s.json", now.UTC().Format(day.KeyLayout))
}

// Import replaces b with the book read from r and saves it. Any read,
// parse or shape problem is returned as a *day.ImportError and leaves b
// untouched, as does a failed save.
func Import(ctx context.Context, kv KV, b *day.Book, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &day.ImportError{Err: err}
	}

	var next day.Book
	if err := json.Unmarshal(data, &next); err != nil {
		return &day.ImportError{Err: err}
	}
	prev := *b
	if err := b.Replace(&next); err != nil {
		return err
	}
	if err := Save(ctx, kv, b); err != nil {
		*b = prev
		return err
	}

	logrus.WithField("days", len(b.Days)).Info("log imported")
	return nil
}
