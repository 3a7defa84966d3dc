package core

// reader.go builds the decoding pipeline the scanner reads files through:
// the contract's declared encoding is decoded to UTF-8 and a leading
// byte-order mark (commonly added by Windows tooling) is stripped so it
// never leaks into the first header column.

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
)

// newDecodingReader wraps r so the scanner always consumes UTF-8,
// regardless of the contract's encoding. Encoding names are resolved
// against the WHATWG index ("utf-8", "latin1", "windows-1252", ...).
// Malformed input bytes decode to U+FFFD rather than aborting the scan.
func newDecodingReader(r io.Reader, encodingName string) (io.Reader, error) {
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", encodingName, err)
	}
	return newBOMSkippingReader(enc.NewDecoder().Reader(r)), nil
}

// bomSkippingReader discards a single UTF-8 BOM (0xEF 0xBB 0xBF) at the
// start of the stream, if present.
type bomSkippingReader struct {
	r       *bufio.Reader
	checked bool
}

func newBOMSkippingReader(r io.Reader) *bomSkippingReader {
	return &bomSkippingReader{r: bufio.NewReader(r)}
}

func (b *bomSkippingReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		if lead, err := b.r.Peek(3); err == nil &&
			lead[0] == 0xEF && lead[1] == 0xBB && lead[2] == 0xBF {
			if _, err := b.r.Discard(3); err != nil {
				return 0, err
			}
		}
	}
	return b.r.Read(p)
}
