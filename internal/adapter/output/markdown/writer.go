// Package markdown renders parsed patch sets as a Markdown report.
package markdown

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tovrstra/python-unidiff/internal/unidiff"
)

// Writer renders patch set summaries into Markdown.
type Writer struct{}

// NewWriter constructs a Markdown writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Render produces the full report for a parsed diff. The source label
// names where the diff came from (file path, stdin, or a revision range).
func (w *Writer) Render(set *unidiff.PatchSet, source string) string {
	var builder strings.Builder
	caser := cases.Title(language.English)

	builder.WriteString("# Diff Summary\n\n")
	builder.WriteString(fmt.Sprintf("- Source: %s\n", source))
	builder.WriteString(fmt.Sprintf("- Files changed: %d\n\n", set.Len()))

	builder.WriteString("| File | Status | Hunks | Added | Removed |\n")
	builder.WriteString("|------|--------|-------|-------|--------|\n")
	for _, file := range set.Files() {
		builder.WriteString(fmt.Sprintf("| %s | %s | %d | +%d | -%d |\n",
			file.Path(), status(file), file.Len(), file.Added(), file.Removed()))
	}
	builder.WriteString("\n")

	sections := []struct {
		label string
		files []*unidiff.PatchedFile
	}{
		{"added files", set.AddedFiles()},
		{"removed files", set.RemovedFiles()},
		{"modified files", set.ModifiedFiles()},
	}
	for _, section := range sections {
		if len(section.files) == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("## %s\n\n", caser.String(section.label)))
		for _, file := range section.files {
			builder.WriteString(fmt.Sprintf("- %s\n", file.Path()))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func status(file *unidiff.PatchedFile) string {
	switch {
	case file.IsAddedFile():
		return "added"
	case file.IsRemovedFile():
		return "removed"
	default:
		return "modified"
	}
}
