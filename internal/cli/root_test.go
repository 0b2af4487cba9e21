package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootHasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name()
	}

	for _, want := range []string{
		"init", "show", "line", "push", "hang", "off", "note", "clear", "status",
		"history", "month", "calendar", "export", "import", "rest",
		"config", "completion", "version",
	} {
		assert.Contains(t, names, want)
	}
}

func TestRootUseName(t *testing.T) {
	assert.Equal(t, "pushups", rootCmd.Use)
}

func TestRootVerboseFlag(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("verbose")
	if assert.NotNil(t, f) {
		assert.Equal(t, "false", f.DefValue)
	}
	assert.False(t, verbose(showCmd))
}
