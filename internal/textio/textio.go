// Package textio handles scoped file acquisition and encoding-aware line
// reading for the CLI: opening the input file or stdin, decoding it
// according to the --encoding flag, and handing back one validated UTF-8
// line at a time.
package textio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Stdin is the sentinel path meaning "read from standard input".
const Stdin = "-"

// Open acquires a readable source for path. path == Stdin reads from
// os.Stdin, wrapped in a no-op closer so callers can always defer Close
// without special-casing the dash.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textio: open %s: %w", path, err)
	}
	return f, nil
}

// decodedReader wraps r with a decoder for the named encoding. An empty name
// or "utf-8" is passed through unchanged: malformed UTF-8 is repaired per
// line in LineReader.Next rather than by a decoder here, since the
// replacement behavior needed for already-UTF-8 input is a one-line call to
// strings.ToValidUTF8 and doesn't warrant routing through x/text's
// transform pipeline. Any other name is resolved via htmlindex, the same
// registry browsers use for the encoding labels a user is likely to type
// (e.g. "iso-8859-1", "shift_jis", "windows-1252").
func decodedReader(r io.Reader, name string) (io.Reader, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("textio: unknown encoding %q: %w", name, err)
	}
	return transformReader(r, enc), nil
}

func transformReader(r io.Reader, enc encoding.Encoding) io.Reader {
	return enc.NewDecoder().Reader(r)
}
