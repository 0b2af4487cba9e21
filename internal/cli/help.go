package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// helpRule colours one kind of line in cobra's usage output. When split is
// set the first capture group keeps its indent, the second is highlighted and
// the rest is plain text.
type helpRule struct {
	re    *regexp.Regexp
	split bool
	style func(string) string
}

var helpRules = []helpRule{
	// section headers and the footer
	{re: regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`), style: Info},
	{re: regexp.MustCompile(`^Use "`), style: Silent},
	// flag lines, then command listings
	{re: regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`), split: true},
	{re: regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`), split: true},
}

func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(out)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		for i, line := range lines {
			lines[i] = colorizeLine(line)
		}
		cmd.Print(strings.Join(lines, "\n") + "\n")
	}
}

func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, r := range helpRules {
		if !r.split {
			if r.re.MatchString(trimmed) {
				return r.style(line)
			}
			continue
		}
		if m := r.re.FindStringSubmatch(line); m != nil {
			return m[1] + Primary(m[2]) + Text(m[3])
		}
	}
	return Text(line)
}
