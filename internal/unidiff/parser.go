package unidiff

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	reSourceHeader = regexp.MustCompile(`^--- ([^\t]+)(?:\t(.*))?$`)
	reTargetHeader = regexp.MustCompile(`^\+\+\+ ([^\t]+)(?:\t(.*))?$`)
	reHunkHeader   = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@(?: (.*))?$`)
)

// scanState tracks the file-header state machine of the top-level scanner.
type scanState int

const (
	// awaitingSource is the initial state and the state between files.
	awaitingSource scanState = iota
	// awaitingTarget means a `---` header was seen and a `+++` must follow.
	awaitingTarget
	// inFile means a file is open and hunk headers are valid.
	inFile
)

// ParseString parses unified diff text held in memory.
func ParseString(text string) (*PatchSet, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads unified diff text from r in a single streaming pass and
// returns the parsed PatchSet. The input must already be decoded text;
// callers with encoded files should wrap the reader with a decoder first.
//
// Lines that match no header grammar outside a hunk body are ignored as
// preamble or VCS noise (`diff --git`, index lines, commit messages).
// Scanning stops at end of input; the format has no end marker.
func Parse(r io.Reader) (*PatchSet, error) {
	src := newLineSource(r)
	set := &PatchSet{}

	state := awaitingSource
	var sourceFile, sourceTimestamp string
	var current *PatchedFile

	for {
		line, ok := src.next()
		if !ok {
			break
		}

		if m := reSourceHeader.FindStringSubmatch(line); m != nil {
			// Valid in any state; discards any in-progress file context.
			sourceFile, sourceTimestamp = m[1], m[2]
			current = nil
			state = awaitingTarget
			continue
		}

		if m := reTargetHeader.FindStringSubmatch(line); m != nil {
			if state != awaitingTarget {
				return nil, &ParseError{Msg: "target without source", Line: line}
			}
			current = &PatchedFile{
				SourceFile:      sourceFile,
				SourceTimestamp: sourceTimestamp,
				TargetFile:      m[1],
				TargetTimestamp: m[2],
			}
			set.files = append(set.files, current)
			state = inFile
			continue
		}

		if m := reHunkHeader.FindStringSubmatch(line); m != nil {
			if state != inFile {
				return nil, &ParseError{Msg: "unexpected hunk", Line: line}
			}
			hunk, err := parseHunk(m, src)
			if err != nil {
				return nil, err
			}
			current.hunks = append(current.hunks, hunk)
			continue
		}

		// Anything else is preamble or diff metadata; skip it.
	}

	if err := src.err(); err != nil {
		return nil, fmt.Errorf("read diff: %w", err)
	}
	return set, nil
}

// parseHunk assembles one hunk from a matched header and the shared line
// source, advancing the source past the consumed body. Body lines are
// classified and numbered from running source/target counters; consumption
// stops as soon as the hunk satisfies its declared line counts. If the
// input ends first, the partial hunk is kept and reports IsValid() == false
// rather than failing the parse.
func parseHunk(header []string, src *lineSource) (*Hunk, error) {
	hunk := &Hunk{
		SourceStart:   atoiDefault(header[1], 0),
		SourceLength:  atoiDefault(header[2], 1),
		TargetStart:   atoiDefault(header[3], 0),
		TargetLength:  atoiDefault(header[4], 1),
		SectionHeader: header[5],
	}

	sourceLine := hunk.SourceStart
	targetLine := hunk.TargetStart

	for !hunk.IsValid() {
		raw, ok := src.next()
		if !ok {
			break
		}

		kind, value, ok := classifyLine(raw)
		if !ok {
			return nil, &ParseError{Msg: "hunk body line expected", Line: raw}
		}

		line := Line{Value: value, Kind: kind}
		switch kind {
		case LineAdded:
			line.TargetLine = IntPtr(targetLine)
			targetLine++
		case LineRemoved:
			line.SourceLine = IntPtr(sourceLine)
			sourceLine++
		case LineContext:
			line.SourceLine = IntPtr(sourceLine)
			sourceLine++
			line.TargetLine = IntPtr(targetLine)
			targetLine++
		}
		hunk.lines = append(hunk.lines, line)
	}

	return hunk, nil
}

// atoiDefault converts a header range field, substituting def when the
// optional count was omitted. The header regexp guarantees digits.
func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, _ := strconv.Atoi(s)
	return n
}
