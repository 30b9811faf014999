package unidiff

import "strings"

// PatchSet is the full parsed diff: the ordered per-file changes in their
// order of appearance in the source text.
type PatchSet struct {
	files []*PatchedFile
}

// Len returns the number of changed files.
func (p *PatchSet) Len() int {
	return len(p.files)
}

// At returns the i-th changed file.
func (p *PatchSet) At(i int) *PatchedFile {
	return p.files[i]
}

// Files returns the ordered changed files. The returned slice is owned by
// the set and must not be modified.
func (p *PatchSet) Files() []*PatchedFile {
	return p.files
}

// AddedFiles returns the files created by this patch.
func (p *PatchSet) AddedFiles() []*PatchedFile {
	return p.filter((*PatchedFile).IsAddedFile)
}

// RemovedFiles returns the files deleted by this patch.
func (p *PatchSet) RemovedFiles() []*PatchedFile {
	return p.filter((*PatchedFile).IsRemovedFile)
}

// ModifiedFiles returns the files modified in place by this patch.
func (p *PatchSet) ModifiedFiles() []*PatchedFile {
	return p.filter((*PatchedFile).IsModifiedFile)
}

func (p *PatchSet) filter(keep func(*PatchedFile) bool) []*PatchedFile {
	var files []*PatchedFile
	for _, f := range p.files {
		if keep(f) {
			files = append(files, f)
		}
	}
	return files
}

// String renders every file change in unified diff format.
func (p *PatchSet) String() string {
	rendered := make([]string, len(p.files))
	for i, f := range p.files {
		rendered[i] = f.String()
	}
	return strings.Join(rendered, "\n")
}
