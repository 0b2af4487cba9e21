package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var noteCmd = LeafCommand{
	Use:     "note [TEXT...]",
	Short:   "Set a day's notes (opens an editor when TEXT is omitted)",
	Example: "  pushups note \"grip gave out on the last hang\"\n  pushups note --date yesterday\n  pushups note --clear",
	StrFlags: []StringFlag{
		{Name: "date", Short: "d", Usage: "day to edit (default: today)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "clear", Usage: "remove the notes"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		clearFlag, _ := cmd.Flags().GetBool("clear")
		return runNote(cmd, homeDir, strings.Join(args, " "), dateFlag, clearFlag, NewPromptFunc(), time.Now)
	},
}.Build()

func runNote(
	cmd *cobra.Command,
	homeDir, text, dateArg string,
	clearNotes bool,
	prompt PromptFunc,
	nowFn func() time.Time,
) error {
	key, d, err := resolveDay(dateArg, nowFn())
	if err != nil {
		return err
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	switch {
	case clearNotes:
		text = ""
	case text == "":
		current := ""
		if r := a.book.Get(key); r != nil {
			current = r.Notes
		}
		text, err = prompt(fmt.Sprintf("Notes for %s", d.Format(dayHeadingLayout)), current)
		if err != nil {
			return err
		}
	}

	a.book.SetNotes(key, strings.TrimRight(text, "\n"))
	if err := a.save(cmd); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if text == "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", Text("notes cleared for"), Primary(d.Format(dayShortLayout)))
	} else {
		_, _ = fmt.Fprintf(w, "%s %s\n", Text("notes saved for"), Primary(d.Format(dayShortLayout)))
	}
	return nil
}
