package id3v2

import "fmt"

// TextFrame is the payload of every T*** frame except TXXX (spec.md §4.3
// "text"). v2.2/v2.3 carry exactly one string; v2.4 may carry several,
// separated by the encoding's terminator.
type TextFrame struct {
	Encoding Encoding
	Texts    []string
}

func (f *TextFrame) decode(version Version, raw []byte) error {
	if len(raw) < 1 {
		return fmt.Errorf("id3v2: text frame payload is empty")
	}

	enc := Encoding(raw[0])
	if !enc.valid(version) {
		return fmt.Errorf("id3v2: text frame uses encoding %d, unsupported under v%s", enc, version)
	}
	f.Encoding = enc

	body := raw[1:]
	if version != Version24 {
		// v2.2/v2.3 decode as a single string; anything past the first
		// terminator (or the rest of body, if untermindated) is ignored.
		s, _, err := decodeString(enc, body)
		if err != nil {
			return err
		}
		f.Texts = []string{s}
		return nil
	}

	var texts []string
	for len(body) > 0 {
		s, consumed, err := decodeString(enc, body)
		if err != nil {
			return err
		}
		texts = append(texts, s)
		if consumed >= len(body) {
			break
		}
		body = body[consumed:]
	}
	if len(texts) == 0 {
		texts = []string{""}
	}
	f.Texts = texts
	return nil
}

func (f *TextFrame) encode(version Version) ([]byte, error) {
	out := []byte{byte(f.Encoding)}

	texts := f.Texts
	if version != Version24 && len(texts) > 1 {
		texts = texts[:1]
	}
	if len(texts) == 0 {
		texts = []string{""}
	}

	// Strings are separated by the encoding's terminator, but the final
	// string carries none of its own -- its end is implied by the end of
	// the frame (spec.md §8 scenario 1 sizes a single-string tag without
	// a trailing terminator byte).
	for i, s := range texts {
		enc, err := encodeString(f.Encoding, s)
		if err != nil {
			return nil, err
		}
		if i == len(texts)-1 {
			enc = trimOneTerminator(enc, f.Encoding.wide())
		}
		out = append(out, enc...)
	}
	return out, nil
}
