// Package unidiff parses unified diff text (the format produced by
// `diff -u` and version control tools) into a structured, queryable
// representation: a PatchSet of PatchedFiles, each an ordered list of
// Hunks, each Hunk an ordered list of classified Lines with source and
// target line numbering applied.
//
// Parsing is a single streaming pass. The top-level scanner and the hunk
// assembler share one cursor over the input, so arbitrarily large diffs
// can be parsed line by line without buffering the whole text.
//
// The parser only reads diff text; it does not generate diffs or apply
// patches to file contents.
package unidiff
