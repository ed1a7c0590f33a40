package id3v2

import "fmt"

// UserTextFrame is the payload of TXXX/TXX (user-defined text) and
// WXXX/WXX (user-defined URL) frames (spec.md §4.3 "user-text"). The
// Value of a WXXX/WXX frame is always Latin-1, regardless of Encoding.
type UserTextFrame struct {
	Encoding    Encoding
	Description string
	Value       string
	isURL       bool
}

func (f *UserTextFrame) decode(version Version, raw []byte) error {
	if len(raw) < 1 {
		return fmt.Errorf("id3v2: user-text frame payload is empty")
	}

	enc := Encoding(raw[0])
	if !enc.valid(version) {
		return fmt.Errorf("id3v2: user-text frame uses encoding %d, unsupported under v%s", enc, version)
	}
	f.Encoding = enc

	body := raw[1:]
	desc, consumed, err := decodeString(enc, body)
	if err != nil {
		return fmt.Errorf("id3v2: user-text description: %w", err)
	}
	f.Description = desc
	body = body[consumed:]

	valueEnc := enc
	if f.isURL {
		valueEnc = EncodingLatin1
	}
	value, err := decodeFinalString(valueEnc, body)
	if err != nil {
		return fmt.Errorf("id3v2: user-text value: %w", err)
	}
	f.Value = value
	return nil
}

func (f *UserTextFrame) encode(version Version) ([]byte, error) {
	out := []byte{byte(f.Encoding)}

	desc, err := encodeString(f.Encoding, f.Description)
	if err != nil {
		return nil, err
	}
	out = append(out, desc...)

	valueEnc := f.Encoding
	if f.isURL {
		valueEnc = EncodingLatin1
	}
	value, err := encodeString(valueEnc, f.Value)
	if err != nil {
		return nil, err
	}
	// The value/url segment runs to the end of the frame and carries no
	// terminator of its own (only the description does, per spec.md
	// §4.3's "user-text" shape).
	value = trimOneTerminator(value, valueEnc.wide())
	return append(out, value...), nil
}
