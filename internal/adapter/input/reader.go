// Package input opens and decodes diff text on behalf of the parser.
// The parser itself only consumes already-decoded text; charset handling
// lives here so the core stays a pure in-memory transform.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Reader wraps r with a decoder for the named IANA charset. An empty name
// or UTF-8 returns r unchanged.
func Reader(r io.Reader, charset string) (io.Reader, error) {
	if charset == "" || strings.EqualFold(charset, "utf-8") {
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("resolve charset %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Open opens a diff file and decodes it from the named IANA charset. The
// returned ReadCloser yields UTF-8 text; closing it closes the file.
func Open(path, charset string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open diff: %w", err)
	}
	decoded, err := Reader(f, charset)
	if err != nil {
		f.Close()
		return nil, err
	}
	if decoded == io.Reader(f) {
		return f, nil
	}
	return &decodedFile{Reader: decoded, closer: f}, nil
}

// decodedFile pairs a decoding reader with the underlying file's closer.
type decodedFile struct {
	io.Reader
	closer io.Closer
}

func (d *decodedFile) Close() error {
	return d.closer.Close()
}
