package unidiff

import "strings"

// DevNull is the sentinel path used by diff producers for a missing side
// of an added or removed file.
const DevNull = "/dev/null"

const (
	sourcePrefix = "a/"
	targetPrefix = "b/"
)

// PatchedFile is the change to one logical file: the source and target
// headers as parsed verbatim, plus the ordered hunks.
type PatchedFile struct {
	SourceFile      string // Path from the `---` header
	SourceTimestamp string // Timestamp from the `---` header, if any
	TargetFile      string // Path from the `+++` header
	TargetTimestamp string // Timestamp from the `+++` header, if any

	hunks []*Hunk
}

// Len returns the number of hunks in the file.
func (f *PatchedFile) Len() int {
	return len(f.hunks)
}

// At returns the i-th hunk.
func (f *PatchedFile) At(i int) *Hunk {
	return f.hunks[i]
}

// Hunks returns the ordered hunks. The returned slice is owned by the file
// and must not be modified.
func (f *PatchedFile) Hunks() []*Hunk {
	return f.hunks
}

// Path returns the file path abstracted from VCS prefixes: when both sides
// use the a/ and b/ convention the prefix is stripped, and when one side is
// /dev/null the path comes from the real side. Otherwise the raw source
// path is returned.
func (f *PatchedFile) Path() string {
	switch {
	case strings.HasPrefix(f.SourceFile, sourcePrefix) && strings.HasPrefix(f.TargetFile, targetPrefix):
		return f.SourceFile[len(sourcePrefix):]
	case strings.HasPrefix(f.SourceFile, sourcePrefix) && f.TargetFile == DevNull:
		return f.SourceFile[len(sourcePrefix):]
	case strings.HasPrefix(f.TargetFile, targetPrefix) && f.SourceFile == DevNull:
		return f.TargetFile[len(targetPrefix):]
	}
	return f.SourceFile
}

// Added returns the total number of added lines across all hunks.
func (f *PatchedFile) Added() int {
	total := 0
	for _, h := range f.hunks {
		total += h.Added()
	}
	return total
}

// Removed returns the total number of removed lines across all hunks.
func (f *PatchedFile) Removed() int {
	total := 0
	for _, h := range f.hunks {
		total += h.Removed()
	}
	return total
}

// IsAddedFile reports whether this change creates the file: a single hunk
// whose declared source start and length are both zero.
func (f *PatchedFile) IsAddedFile() bool {
	return len(f.hunks) == 1 && f.hunks[0].SourceStart == 0 && f.hunks[0].SourceLength == 0
}

// IsRemovedFile reports whether this change deletes the file: a single hunk
// whose declared target start and length are both zero.
func (f *PatchedFile) IsRemovedFile() bool {
	return len(f.hunks) == 1 && f.hunks[0].TargetStart == 0 && f.hunks[0].TargetLength == 0
}

// IsModifiedFile reports whether this change modifies an existing file.
func (f *PatchedFile) IsModifiedFile() bool {
	return !f.IsAddedFile() && !f.IsRemovedFile()
}

// String renders the file headers and hunks in unified diff format.
func (f *PatchedFile) String() string {
	var builder strings.Builder
	builder.WriteString("--- ")
	builder.WriteString(f.SourceFile)
	if f.SourceTimestamp != "" {
		builder.WriteString("\t")
		builder.WriteString(f.SourceTimestamp)
	}
	builder.WriteString("\n+++ ")
	builder.WriteString(f.TargetFile)
	if f.TargetTimestamp != "" {
		builder.WriteString("\t")
		builder.WriteString(f.TargetTimestamp)
	}
	for _, h := range f.hunks {
		builder.WriteString("\n")
		builder.WriteString(h.String())
	}
	return builder.String()
}
