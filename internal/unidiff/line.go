package unidiff

// LineKind classifies a hunk body line by its leading marker.
type LineKind int

const (
	// LineContext is a line unchanged between source and target (starts with ' ').
	LineContext LineKind = iota
	// LineAdded is a line present only in the target file (starts with '+').
	LineAdded
	// LineRemoved is a line present only in the source file (starts with '-').
	LineRemoved
)

// marker returns the single-character prefix used in diff text.
func (k LineKind) marker() string {
	switch k {
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	default:
		return " "
	}
}

// Line is a single body line of a hunk.
type Line struct {
	Value      string   // Content with the marker stripped
	Kind       LineKind // The kind of change
	SourceLine *int     // Line number in the source file (nil for added lines)
	TargetLine *int     // Line number in the target file (nil for removed lines)
}

// IsAdded reports whether the line exists only in the target file.
func (l Line) IsAdded() bool {
	return l.Kind == LineAdded
}

// IsRemoved reports whether the line exists only in the source file.
func (l Line) IsRemoved() bool {
	return l.Kind == LineRemoved
}

// IsContext reports whether the line is unchanged between both files.
func (l Line) IsContext() bool {
	return l.Kind == LineContext
}

// String renders the line in diff body format, marker included.
func (l Line) String() string {
	return l.Kind.marker() + l.Value
}

// classifyLine determines the kind and content of a raw hunk body line from
// its leading character. A zero-length line (produced by some diff tools for
// fully blank context lines) counts as context with empty content. It performs
// classification only; line numbering belongs to the hunk assembler.
func classifyLine(raw string) (kind LineKind, value string, ok bool) {
	if raw == "" {
		return LineContext, "", true
	}
	switch raw[0] {
	case '+':
		return LineAdded, raw[1:], true
	case '-':
		return LineRemoved, raw[1:], true
	case ' ':
		return LineContext, raw[1:], true
	}
	return 0, "", false
}

// IntPtr returns a pointer to the given int value.
// Exported for use in tests across packages.
func IntPtr(n int) *int {
	return &n
}
