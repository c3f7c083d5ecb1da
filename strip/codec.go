package strip

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// textCodec converts between the on-disk bytes of a source file and the
// text the stripper works on.
type textCodec struct {
	name string
	enc  encoding.Encoding
}

func newTextCodec(label string) (*textCodec, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("'%s' : %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, fmt.Errorf("'%s' : %w", label, err)
	}
	return &textCodec{name: name, enc: enc}, nil
}

func (tc *textCodec) isUTF8() bool {
	return tc.name == "utf-8"
}

// decode returns the text of raw with \r\n and \r line endings turned into \n.
// Invalid utf-8 is an error rather than being replaced.
func (tc *textCodec) decode(raw []byte) (string, error) {
	if tc.isUTF8() {
		if off := invalidUTF8Offset(raw); off >= 0 {
			return "", fmt.Errorf("invalid utf-8 byte 0x%02x at offset %d", raw[off], off)
		}
		return newlines.Replace(string(raw)), nil
	}

	decoded, _, err := transform.Bytes(tc.enc.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("'%s' decode : %w", tc.name, err)
	}
	return newlines.Replace(string(decoded)), nil
}

func (tc *textCodec) encode(text string) ([]byte, error) {
	if tc.isUTF8() {
		return []byte(text), nil
	}

	encoded, _, err := transform.Bytes(tc.enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("'%s' encode : %w", tc.name, err)
	}
	return encoded, nil
}

func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
