package unidiff

import (
	"fmt"
	"strings"
)

// Hunk is one contiguous block of changes: the ranges declared by an
// `@@ -start,len +start,len @@` header plus the ordered body lines.
// A declared length of 1 stands in for an omitted count (the format's
// shorthand for single-line hunks).
type Hunk struct {
	SourceStart   int    // Starting line in the source file
	SourceLength  int    // Declared number of source-side lines
	TargetStart   int    // Starting line in the target file
	TargetLength  int    // Declared number of target-side lines
	SectionHeader string // Trailing context from the header, if any

	lines []Line
}

// Len returns the number of body lines in the hunk.
func (h *Hunk) Len() int {
	return len(h.lines)
}

// At returns the i-th body line.
func (h *Hunk) At(i int) Line {
	return h.lines[i]
}

// Lines returns the ordered body lines. The returned slice is owned by the
// hunk and must not be modified.
func (h *Hunk) Lines() []Line {
	return h.lines
}

// Added returns the number of added lines in the hunk.
func (h *Hunk) Added() int {
	count := 0
	for _, l := range h.lines {
		if l.IsAdded() {
			count++
		}
	}
	return count
}

// Removed returns the number of removed lines in the hunk.
func (h *Hunk) Removed() int {
	count := 0
	for _, l := range h.lines {
		if l.IsRemoved() {
			count++
		}
	}
	return count
}

// SourceLines returns the lines belonging to the source file
// (context and removed), in order.
func (h *Hunk) SourceLines() []Line {
	var lines []Line
	for _, l := range h.lines {
		if l.IsContext() || l.IsRemoved() {
			lines = append(lines, l)
		}
	}
	return lines
}

// TargetLines returns the lines belonging to the target file
// (context and added), in order.
func (h *Hunk) TargetLines() []Line {
	var lines []Line
	for _, l := range h.lines {
		if l.IsContext() || l.IsAdded() {
			lines = append(lines, l)
		}
	}
	return lines
}

// Source returns the source-side lines rendered in diff body format.
func (h *Hunk) Source() []string {
	return renderLines(h.SourceLines())
}

// Target returns the target-side lines rendered in diff body format.
func (h *Hunk) Target() []string {
	return renderLines(h.TargetLines())
}

func renderLines(lines []Line) []string {
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = l.String()
	}
	return rendered
}

// IsValid reports whether the assembled body matches the declared ranges:
// the source-side line count equals SourceLength and the target-side count
// equals TargetLength. A hunk truncated by end of input reports false.
func (h *Hunk) IsValid() bool {
	return len(h.SourceLines()) == h.SourceLength &&
		len(h.TargetLines()) == h.TargetLength
}

// String renders the hunk header and body in unified diff format.
func (h *Hunk) String() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.SourceStart, h.SourceLength, h.TargetStart, h.TargetLength))
	if h.SectionHeader != "" {
		builder.WriteString(" ")
		builder.WriteString(h.SectionHeader)
	}
	for _, l := range h.lines {
		builder.WriteString("\n")
		builder.WriteString(l.String())
	}
	return builder.String()
}
