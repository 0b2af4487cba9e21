package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execCompletionInstall(shell, homeDir string, confirm ConfirmFunc) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := completionInstallCmd
	cmd.SetOut(stdout)
	err := runCompletionInstall(cmd, shell, homeDir, confirm)
	return stdout.String(), err
}

func TestDetectShell(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"/bin/zsh", "zsh"},
		{"/bin/bash", "bash"},
		{"/usr/local/bin/fish", "fish"},
		{"/bin/csh", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Setenv("SHELL", tt.shell)
			assert.Equal(t, tt.want, detectShell())
		})
	}
}

func TestInstallCompletionAppends(t *testing.T) {
	home := t.TempDir()
	zshrc := filepath.Join(home, ".zshrc")
	require.NoError(t, os.WriteFile(zshrc, []byte("# existing config\n"), 0644))

	require.NoError(t, installCompletion("zsh", home))

	data, err := os.ReadFile(zshrc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# existing config")
	assert.Contains(t, string(data), `eval "$(pushups completion generate zsh)"`)
	assert.True(t, isCompletionInstalled("zsh", home))
}

func TestInstallCompletionCreatesNestedFile(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, installCompletion("fish", home))

	data, err := os.ReadFile(filepath.Join(home, ".config", "fish", "config.fish"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "pushups completion generate fish | source")
}

func TestInstallCompletionIdempotent(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, installCompletion("bash", home))
	first, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)

	require.NoError(t, installCompletion("bash", home))

	second, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestInstallCompletionUnsupportedShell(t *testing.T) {
	err := installCompletion("csh", t.TempDir())
	assert.ErrorContains(t, err, "unsupported shell")
	assert.False(t, isCompletionInstalled("csh", t.TempDir()))
}

func TestCompletionInstallConfirmed(t *testing.T) {
	home := t.TempDir()

	stdout, err := execCompletionInstall("zsh", home, AlwaysYes())

	require.NoError(t, err)
	assert.Contains(t, stdout, "completions for zsh added to ~/.zshrc")
	assert.True(t, isCompletionInstalled("zsh", home))
}

func TestCompletionInstallDeclined(t *testing.T) {
	home := t.TempDir()

	stdout, err := execCompletionInstall("zsh", home, mockConfirm(false))

	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.NoFileExists(t, filepath.Join(home, ".zshrc"))
}

func TestCompletionInstallAlreadyInstalled(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, installCompletion("bash", home))

	stdout, err := execCompletionInstall("bash", home, mockConfirm(false))

	require.NoError(t, err)
	assert.Contains(t, stdout, "already in ~/.bashrc")
}
