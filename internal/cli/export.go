package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/GKA777/pushups-app/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:     "export",
	Short:   "Write a JSON backup of the whole log",
	Example: "  pushups export\n  pushups export --out backup.json\n  pushups export --out -",
	Args:    cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "out", Short: "o", Usage: "output file, or - for stdout (default: daily-pushups-backup-YYYY-MM-DD.json)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		outFlag, _ := cmd.Flags().GetString("out")
		return runExport(cmd, homeDir, outFlag, time.Now)
	},
}.Build()

func runExport(cmd *cobra.Command, homeDir, outFlag string, nowFn func() time.Time) error {
	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if outFlag == "-" {
		return storage.Export(a.book, cmd.OutOrStdout())
	}

	outputPath := outFlag
	if outputPath == "" {
		outputPath = storage.ExportFileName(nowFn())
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := storage.Export(a.book, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text(fmt.Sprintf("exported %d days to", len(a.book.Days))), Primary(outputPath))
	return nil
}
