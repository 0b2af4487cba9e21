package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execNote(homeDir, text, dateArg string, clearNotes bool, prompt PromptFunc) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := noteCmd
	cmd.SetOut(stdout)
	err := runNote(cmd, homeDir, text, dateArg, clearNotes, prompt, fixedNow)
	return stdout.String(), err
}

func TestNoteFromArgs(t *testing.T) {
	home := setupHome(t)

	stdout, err := execNote(home, "grip gave out", "", false, mockPrompt())

	require.NoError(t, err)
	assert.Contains(t, stdout, "notes saved for Wed Feb 11")
	assert.Equal(t, "grip gave out", loadBook(t, home).Get("2026-02-11").Notes)
}

func TestNoteFromPrompt(t *testing.T) {
	home := setupHome(t)
	seedBook(t, home, sampleLog)

	var gotInitial string
	prompt := func(_, initial string) (string, error) {
		gotInitial = initial
		return "felt strong\nslept well\n", nil
	}
	_, err := execNote(home, "", "yesterday", false, prompt)

	require.NoError(t, err)
	assert.Equal(t, "felt strong", gotInitial)
	assert.Equal(t, "felt strong\nslept well", loadBook(t, home).Get("2026-02-10").Notes)
}

func TestNoteClear(t *testing.T) {
	home := setupHome(t)
	seedBook(t, home, sampleLog)

	stdout, err := execNote(home, "", "2026-02-01", true, mockPrompt())

	require.NoError(t, err)
	assert.Contains(t, stdout, "notes cleared")
	r := loadBook(t, home).Get("2026-02-01")
	assert.Equal(t, "", r.Notes)
	assert.True(t, r.Off)
}

func TestNotePromptError(t *testing.T) {
	home := setupHome(t)

	_, err := execNote(home, "", "", false, mockPrompt())

	assert.Error(t, err)
	assert.Empty(t, loadBook(t, home).Days)
}
