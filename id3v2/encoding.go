package id3v2

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the one-byte encoding prefix carried by every text-bearing
// ID3v2 payload, per spec.md §4.2.
type Encoding byte

const (
	// EncodingLatin1 is ISO-8859-1, single byte per unit, 0x00 terminated.
	EncodingLatin1 Encoding = 0
	// EncodingUTF16 is UTF-16 with a byte-order mark, two bytes per
	// unit, 0x00 0x00 terminated.
	EncodingUTF16 Encoding = 1
	// EncodingUTF16BE is UTF-16BE without a BOM.
	EncodingUTF16BE Encoding = 2
	// EncodingUTF8 is valid only under Version24.
	EncodingUTF8 Encoding = 3
)

// wide reports whether enc uses two bytes per text unit.
func (enc Encoding) wide() bool {
	return enc == EncodingUTF16 || enc == EncodingUTF16BE
}

func (enc Encoding) valid(v Version) bool {
	switch enc {
	case EncodingLatin1, EncodingUTF16, EncodingUTF16BE:
		return true
	case EncodingUTF8:
		return v == Version24
	default:
		return false
	}
}

func textCodec(enc Encoding) encoding.Encoding {
	switch enc {
	case EncodingLatin1:
		return charmap.ISO8859_1
	case EncodingUTF16:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	default:
		return nil
	}
}

// decodeString decodes one terminated (or final, unterminated) segment of
// raw bytes under enc into a Go string, and returns the number of raw
// bytes consumed including the terminator (or len(raw) if no terminator
// was present, per the tolerant "decoder reads v2.2/2.3 as one string and
// ignores trailing bytes" rule of spec.md §4.3 for single-segment callers).
func decodeString(enc Encoding, raw []byte) (s string, consumed int, err error) {
	if enc == EncodingUTF8 {
		term := scanTerminator(raw, false)
		if term == -1 {
			return string(raw), len(raw), nil
		}
		return string(raw[:term]), term + 1, nil
	}

	term := scanTerminator(raw, enc.wide())
	body := raw
	termLen := 0
	if term != -1 {
		body = raw[:term]
		if enc.wide() {
			termLen = 2
		} else {
			termLen = 1
		}
		consumed = term + termLen
	} else {
		consumed = len(raw)
	}

	codec := textCodec(enc)
	if codec == nil {
		return "", 0, fmt.Errorf("id3v2: unsupported text encoding %d", enc)
	}

	out, err := codec.NewDecoder().Bytes(body)
	if err != nil {
		return "", 0, fmt.Errorf("id3v2: invalid text data: %w", err)
	}

	return string(out), consumed, nil
}

// decodeFinalString decodes raw in its entirety as one untermindated
// text segment, for fields that run to the end of the frame and carry no
// terminator of their own (e.g. the value/url half of a user-text frame).
func decodeFinalString(enc Encoding, raw []byte) (string, error) {
	if enc == EncodingUTF8 {
		return string(raw), nil
	}

	codec := textCodec(enc)
	if codec == nil {
		return "", fmt.Errorf("id3v2: unsupported text encoding %d", enc)
	}

	out, err := codec.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("id3v2: invalid text data: %w", err)
	}
	return string(out), nil
}

// encodeString encodes s under enc and appends the encoding's
// terminator. When enc is EncodingUTF16, a BOM is emitted at the start
// of the segment per spec.md §4.2.
func encodeString(enc Encoding, s string) ([]byte, error) {
	if enc == EncodingUTF8 {
		return append([]byte(s), 0x00), nil
	}

	codec := textCodec(enc)
	if codec == nil {
		return nil, fmt.Errorf("id3v2: unsupported text encoding %d", enc)
	}

	out, err := codec.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("id3v2: failed to encode text: %w", err)
	}

	if enc.wide() {
		return append(out, 0x00, 0x00), nil
	}
	return append(out, 0x00), nil
}

// trimOneTerminator strips a single trailing terminator of the given
// width, if present. Used when encoding the final segment of a frame
// (the last string of a text frame, a comment's text, a user-text value),
// which is written without a terminator of its own.
func trimOneTerminator(b []byte, wide bool) []byte {
	if wide {
		return bytes.TrimSuffix(b, []byte{0, 0})
	}
	return bytes.TrimSuffix(b, []byte{0})
}
