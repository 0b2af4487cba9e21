package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execClear(homeDir, dateArg string, confirm ConfirmFunc) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := clearCmd
	cmd.SetOut(stdout)
	err := runClear(cmd, homeDir, dateArg, confirm, fixedNow)
	return stdout.String(), err
}

func TestClearConfirmed(t *testing.T) {
	home := setupHome(t)
	seedBook(t, home, sampleLog)

	stdout, err := execClear(home, "yesterday", AlwaysYes())

	require.NoError(t, err)
	assert.Contains(t, stdout, "cleared Tue Feb 10")
	b := loadBook(t, home)
	assert.NotContains(t, b.Days, "2026-02-10")
	assert.Len(t, b.Days, 3)
}

func TestClearDeclined(t *testing.T) {
	home := setupHome(t)
	seedBook(t, home, sampleLog)

	stdout, err := execClear(home, "yesterday", mockConfirm(false))

	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, loadBook(t, home).Days, "2026-02-10")
}

func TestClearAbsentDay(t *testing.T) {
	home := setupHome(t)
	seedBook(t, home, sampleLog)

	stdout, err := execClear(home, "today", func(string) (bool, error) {
		t.Fatal("confirm should not be called")
		return false, nil
	})

	require.NoError(t, err)
	assert.Contains(t, stdout, "nothing logged on Wed Feb 11")
	assert.Len(t, loadBook(t, home).Days, 4)
}
