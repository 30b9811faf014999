package unidiff

import (
	"bufio"
	"io"
)

// maxLineBytes bounds a single input line. Generated diffs with minified
// sources can carry very long lines; 1 MiB is well past anything sane.
const maxLineBytes = 1 << 20

// lineSource is the single shared cursor over the input stream. The
// top-level scanner and the hunk assembler both pull from the same source,
// so the input is consumed exactly once and never buffered as a whole.
type lineSource struct {
	scanner *bufio.Scanner
}

func newLineSource(r io.Reader) *lineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineSource{scanner: scanner}
}

// next returns the next input line without its trailing newline. It returns
// ok=false at end of input or on a read error; err distinguishes the two.
func (s *lineSource) next() (line string, ok bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// err returns the first read error encountered, if any. End of input is not
// an error.
func (s *lineSource) err() error {
	return s.scanner.Err()
}
