package id3v2

import "fmt"

// CommentFrame is the payload of COMM/COM (comments) and USLT/ULT
// (unsynchronised lyrics) frames (spec.md §4.3 "comment/lyrics").
type CommentFrame struct {
	Encoding    Encoding
	Language    string
	Description string
	Text        string
}

func (f *CommentFrame) decode(version Version, raw []byte) error {
	if len(raw) < 4 {
		return fmt.Errorf("id3v2: comment frame payload too short")
	}

	enc := Encoding(raw[0])
	if !enc.valid(version) {
		return fmt.Errorf("id3v2: comment frame uses encoding %d, unsupported under v%s", enc, version)
	}
	f.Encoding = enc
	f.Language = string(raw[1:4])

	body := raw[4:]
	desc, consumed, err := decodeString(enc, body)
	if err != nil {
		return fmt.Errorf("id3v2: comment description: %w", err)
	}
	f.Description = desc
	body = body[consumed:]

	text, err := decodeFinalString(enc, body)
	if err != nil {
		return fmt.Errorf("id3v2: comment text: %w", err)
	}
	f.Text = text
	return nil
}

func (f *CommentFrame) encode(_ Version) ([]byte, error) {
	if len(f.Language) != 3 {
		return nil, fmt.Errorf("id3v2: comment language must be 3 ASCII characters, got %q", f.Language)
	}

	out := []byte{byte(f.Encoding)}
	out = append(out, f.Language...)

	desc, err := encodeString(f.Encoding, f.Description)
	if err != nil {
		return nil, err
	}
	out = append(out, desc...)

	text, err := encodeString(f.Encoding, f.Text)
	if err != nil {
		return nil, err
	}
	text = trimOneTerminator(text, f.Encoding.wide())

	return append(out, text...), nil
}
