package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/rfam/rfamops/internal/core/domain"
)

var (
	succeededColor = color.New(color.FgGreen)
	emptyColor     = color.New(color.FgYellow)
	skippedColor   = color.New(color.FgCyan)
	failedColor    = color.New(color.FgRed, color.Bold)
)

func colorStatus(s domain.OutcomeStatus) string {
	switch s {
	case domain.OutcomeSucceeded:
		return succeededColor.Sprint(s)
	case domain.OutcomeEmpty:
		return emptyColor.Sprint(s)
	case domain.OutcomeSkipped:
		return skippedColor.Sprint(s)
	case domain.OutcomeFailed:
		return failedColor.Sprint(s)
	default:
		return string(s)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// progressPrinter renders one line per finished accession. On a terminal
// the line is redrawn in place.
func progressPrinter(w io.Writer) func(done, total int, outcome domain.FetchOutcome) {
	tty := isTerminal(w)
	return func(done, total int, outcome domain.FetchOutcome) {
		line := fmt.Sprintf("[%d/%d] %s %s", done, total, outcome.Accession, colorStatus(outcome.Status))
		if !tty {
			fmt.Fprintln(w, line)
			return
		}
		fmt.Fprintf(w, "\r\033[K%s", line)
		if done == total {
			fmt.Fprintln(w)
		}
	}
}

func printSummary(w io.Writer, summary *domain.BatchSummary) {
	fmt.Fprintf(w, "Run %s\n", summary.RunID)
	fmt.Fprintf(w, "  %s %d\n", succeededColor.Sprint("succeeded:"), summary.Count(domain.OutcomeSucceeded))
	fmt.Fprintf(w, "  %s     %d\n", emptyColor.Sprint("empty:"), summary.Count(domain.OutcomeEmpty))
	fmt.Fprintf(w, "  %s   %d\n", skippedColor.Sprint("skipped:"), summary.Count(domain.OutcomeSkipped))
	fmt.Fprintf(w, "  %s    %d\n", failedColor.Sprint("failed:"), summary.Count(domain.OutcomeFailed))

	failed := summary.Failed()
	if len(failed) == 0 {
		return
	}
	fmt.Fprintln(w, "Failed accessions:")
	for _, o := range failed {
		fmt.Fprintf(w, "  %s: %s\n", o.Accession, o.Error)
	}
}

func printOutcome(w io.Writer, o domain.FetchOutcome) {
	fmt.Fprintf(w, "%s %s: %d/%d entries downloaded to %s\n",
		o.Accession, colorStatus(o.Status), o.Downloaded, o.Entries, o.Directory)
	for _, entry := range o.FailedEntries {
		fmt.Fprintf(w, "  failed entry: %s\n", entry)
	}
	if o.Error != "" && len(o.FailedEntries) == 0 {
		fmt.Fprintf(w, "  error: %s\n", o.Error)
	}
}
