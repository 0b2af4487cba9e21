package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/GKA777/pushups-app/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execMonth(homeDir, monthArg, exportFlag, outFlag string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := monthCmd
	cmd.SetOut(stdout)
	err := runMonth(cmd, homeDir, monthArg, exportFlag, outFlag, fixedNow)
	return stdout.String(), err
}

func TestMonthCurrent(t *testing.T) {
	home := setupHome(t)
	seedBook(t, home, sampleLog)

	stdout, err := execMonth(home, "", "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "February 2026")
	assert.Contains(t, stdout, "Sun Feb 1")
	assert.Contains(t, stdout, "Tue Feb 10")
	assert.Contains(t, stdout, "Totals:  50 push-ups · 2 hangs · 1 off day")
	assert.NotContains(t, stdout, "Sun Mar 1")
}

func TestMonthNamed(t *testing.T) {
	home := setupHome(t)
	seedBook(t, home, sampleLog)

	stdout, err := execMonth(home, "next month", "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "March 2026")
	assert.Contains(t, stdout, "Sun Mar 1")
	assert.Contains(t, stdout, "Totals:  50 push-ups · 0 hangs · 0 off days")
}

func TestMonthEmpty(t *testing.T) {
	home := setupHome(t)

	stdout, err := execMonth(home, "2025-12", "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "December 2025")
	assert.Contains(t, stdout, "Nothing logged this month.")
}

func TestMonthInvalid(t *testing.T) {
	_, err := execMonth(setupHome(t), "smarch", "", "")
	assert.Error(t, err)
}

func TestMonthExportPDF(t *testing.T) {
	home := setupHome(t)
	seedBook(t, home, sampleLog)
	out := filepath.Join(t.TempDir(), "feb.pdf")

	stdout, err := execMonth(home, "feb", "pdf", out)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported February 2026 to "+out)
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestMonthExportNothingLogged(t *testing.T) {
	home := setupHome(t)
	out := filepath.Join(t.TempDir(), "empty.pdf")

	stdout, err := execMonth(home, "", "pdf", out)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Nothing logged in February 2026.")
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestMonthExportUnsupported(t *testing.T) {
	_, err := execMonth(setupHome(t), "", "csv", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestRenderMonthPDF_CreatesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "test.pdf")

	data := report.Data{
		Year:  2026,
		Month: time.February,
		Rows: []report.Row{
			{Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), Key: "2026-02-01", Off: true, Headline: day.OffLine, Line: day.OffLine},
			{Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local), Key: "2026-02-10", Reps: 30, Hangs: 2, Headline: "30 push-ups · 2 hangs", Line: "PPP H40 H30f", Notes: "felt strong"},
		},
		Totals: day.Totals{Reps: 30, Hangs: 2, OffDays: 1},
	}

	require.NoError(t, renderMonthPDF(data, outPath))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}
