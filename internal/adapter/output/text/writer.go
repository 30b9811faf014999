// Package text renders parsed patch sets as a diffstat-style summary for
// terminal output.
package text

import (
	"fmt"
	"io"

	"github.com/tovrstra/python-unidiff/internal/unidiff"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Writer renders a diffstat-style summary of a parsed patch set.
type Writer struct {
	out     io.Writer
	colored bool
}

// NewWriter constructs a text writer. When colored is true, insertion and
// deletion counts are rendered with ANSI colors.
func NewWriter(out io.Writer, colored bool) *Writer {
	return &Writer{out: out, colored: colored}
}

// Write renders one line per changed file plus a totals line.
func (w *Writer) Write(set *unidiff.PatchSet) error {
	totalAdded := 0
	totalRemoved := 0

	for _, file := range set.Files() {
		added := file.Added()
		removed := file.Removed()
		totalAdded += added
		totalRemoved += removed

		_, err := fmt.Fprintf(w.out, " %s %s | %s %s\n",
			statusLetter(file),
			file.Path(),
			w.green(fmt.Sprintf("+%d", added)),
			w.red(fmt.Sprintf("-%d", removed)),
		)
		if err != nil {
			return fmt.Errorf("write file stat: %w", err)
		}
	}

	_, err := fmt.Fprintf(w.out, "%d files changed, %s, %s\n",
		set.Len(),
		w.green(fmt.Sprintf("%d insertions(+)", totalAdded)),
		w.red(fmt.Sprintf("%d deletions(-)", totalRemoved)),
	)
	if err != nil {
		return fmt.Errorf("write totals: %w", err)
	}
	return nil
}

func statusLetter(file *unidiff.PatchedFile) string {
	switch {
	case file.IsAddedFile():
		return "A"
	case file.IsRemovedFile():
		return "D"
	default:
		return "M"
	}
}

func (w *Writer) green(s string) string {
	if !w.colored {
		return s
	}
	return ansiGreen + s + ansiReset
}

func (w *Writer) red(s string) string {
	if !w.colored {
		return s
	}
	return ansiRed + s + ansiReset
}
