package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const completionMarker = "pushups completion"

type shellRC struct {
	file string // relative to the home directory
	line string
}

var shellRCs = map[string]shellRC{
	"bash":       {".bashrc", `eval "$(pushups completion generate bash)"`},
	"zsh":        {".zshrc", `eval "$(pushups completion generate zsh)"`},
	"fish":       {".config/fish/config.fish", `pushups completion generate fish | source`},
	"powershell": {".config/powershell/Microsoft.PowerShell_profile.ps1", `pushups completion generate powershell | Out-String | Invoke-Expression`},
}

var completionInstallCmd = LeafCommand{
	Use:   "install [SHELL]",
	Short: "Add completions to your shell startup file",
	Args:  cobra.RangeArgs(0, 1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Short: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, err := shellArg(args)
		if err != nil {
			return err
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runCompletionInstall(cmd, shell, homeDir, ResolveConfirmFunc(yes))
	},
}.Build()

func runCompletionInstall(cmd *cobra.Command, shell, homeDir string, confirm ConfirmFunc) error {
	rc, ok := shellRCs[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}
	display := filepath.Join("~", rc.file)

	if isCompletionInstalled(shell, homeDir) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("completions for %s are already in %s", Primary(shell), Primary(display))))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Add %s completions to %s?", shell, display))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := installCompletion(shell, homeDir); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("completions for %s added to %s", Primary(shell), Primary(display))))
	return nil
}

func isCompletionInstalled(shell, homeDir string) bool {
	rc, ok := shellRCs[shell]
	if !ok {
		return false
	}
	data, err := os.ReadFile(filepath.Join(homeDir, rc.file))
	if err != nil {
		return false
	}
	return strings.Contains(string(data), completionMarker)
}

// installCompletion appends the eval line to the shell's startup file. It is
// a no-op when the line is already there.
func installCompletion(shell, homeDir string) error {
	rc, ok := shellRCs[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}
	if isCompletionInstalled(shell, homeDir) {
		return nil
	}

	path := filepath.Join(homeDir, rc.file)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	_, writeErr := fmt.Fprintf(f, "\n# pushups shell completion\n%s\n", rc.line)
	if closeErr := f.Close(); closeErr != nil {
		return closeErr
	}
	return writeErr
}
