package textio

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// LineReader yields one decoded, UTF-8-valid line at a time from an
// underlying reader: a file containing malformed byte sequences under the
// requested encoding is read with those sequences replaced rather than
// causing the run to fail.
type LineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader builds a LineReader over r, decoding it according to
// encodingName (the CLI's --encoding value; "" means UTF-8).
func NewLineReader(r io.Reader, encodingName string) (*LineReader, error) {
	decoded, err := decodedReader(r, encodingName)
	if err != nil {
		return nil, err
	}
	return &LineReader{scanner: bufio.NewScanner(decoded)}, nil
}

// Next returns the next line (without its terminator) and true, or ("",
// false) once the input is exhausted.
func (lr *LineReader) Next() (string, bool) {
	if !lr.scanner.Scan() {
		return "", false
	}
	line := lr.scanner.Text()
	if !utf8.ValidString(line) {
		line = strings.ToValidUTF8(line, string(utf8.RuneError))
	}
	return line, true
}

// Err reports any error encountered while scanning, other than io.EOF.
func (lr *LineReader) Err() error { return lr.scanner.Err() }
