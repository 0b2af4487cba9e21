package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/GKA777/pushups-app/internal/config"
	"github.com/GKA777/pushups-app/internal/dates"
	"github.com/GKA777/pushups-app/internal/day"
	"github.com/GKA777/pushups-app/internal/logging"
	"github.com/GKA777/pushups-app/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	dayHeadingLayout = "Monday, January 2, 2006"
	dayShortLayout   = "Mon Jan 2"
)

// app is what a command runs against: the effective config, the open
// store and the book loaded from it. The command owns it until Close.
type app struct {
	homeDir string
	cfg     *config.Config
	kv      storage.KV
	book    *day.Book
	logs    io.Closer
}

// openApp reads configuration, sets up logging, opens the configured
// backend and loads the book. Loading never fails; unreadable data starts
// an empty book.
func openApp(cmd *cobra.Command, homeDir string) (*app, error) {
	if err := config.LoadDotEnv(homeDir); err != nil {
		return nil, err
	}
	cfg, err := config.Read(homeDir)
	if err != nil {
		return nil, err
	}

	logs := logging.Setup(logging.SetupParams{
		LogFileName: cfg.LogFile,
		LogToStderr: verbose(cmd),
		LogLevel:    cfg.LogLevel,
	})

	ctx := commandContext(cmd)
	kv, err := storage.Open(ctx, cfg)
	if err != nil {
		_ = logs.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"command": cmd.CommandPath(),
		"backend": cfg.Backend,
	}).Debug("opened store")

	return &app{
		homeDir: homeDir,
		cfg:     cfg,
		kv:      kv,
		book:    storage.Load(ctx, kv),
		logs:    logs,
	}, nil
}

// save persists the whole book. Every mutating command calls it before
// returning.
func (a *app) save(cmd *cobra.Command) error {
	return storage.Save(commandContext(cmd), a.kv, a.book)
}

func (a *app) Close() error {
	err := a.kv.Close()
	_ = a.logs.Close()
	return err
}

// commandContext returns the command's context, or a background context
// when the command is run directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func verbose(cmd *cobra.Command) bool {
	f := cmd.Flag("verbose")
	return f != nil && f.Value.String() == "true"
}

// resolveDay turns a date expression into its key and local midnight.
func resolveDay(expr string, now time.Time) (string, time.Time, error) {
	d, err := dates.Parse(expr, now.In(time.Local))
	if err != nil {
		return "", time.Time{}, err
	}
	return day.Key(d), d, nil
}

// argOr returns args[i], or fallback when it was not given.
func argOr(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

// dayStatus renders a one-line view of a record, e.g.
// "Wed Feb 11  30 push-ups · 1 hang  PPP H40".
func dayStatus(d time.Time, r *day.Record) string {
	label := Silent(d.Format(dayShortLayout))
	if r != nil && r.Off {
		return fmt.Sprintf("%s  %s", label, Off(day.OffLine))
	}
	return fmt.Sprintf("%s  %s  %s", label, Text(day.Summary(r)), Primary(day.Line(r)))
}
