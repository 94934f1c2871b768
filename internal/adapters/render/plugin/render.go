package plugin

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/check-mullvad-account/internal/domain"
)

// Render formats the report as a single monitoring plugin line,
// "SEVERITY - summary|label=value;warn;crit", without the trailing newline.
func Render(report domain.Report) string {
	var b strings.Builder
	b.WriteString(report.Severity.String())
	b.WriteString(" - ")
	b.WriteString(singleLine(report.Summary))

	if perf := report.PerfData; perf != nil {
		fmt.Fprintf(&b, "|%s=%d;%d;%d", perf.Label, perf.Value, perf.Warning, perf.Critical)
	}

	return b.String()
}

// Write prints the rendered line and returns the exit code to terminate with.
func Write(w io.Writer, report domain.Report) (int, error) {
	if _, err := fmt.Fprintln(w, Render(report)); err != nil {
		return domain.SeverityUnknown.ExitCode(), err
	}

	return report.Severity.ExitCode(), nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// singleLine keeps the output on one line; monitoring agents treat further
// lines as long output.
func singleLine(s string) string {
	return lineBreaks.Replace(s)
}
