package id3v2

import "fmt"

// PlayCounterFrame is the payload of PCNT (v2.3/v2.4) and CNT (v2.2)
// frames (spec.md §4.3 "play-counter"): a big-endian unsigned integer at
// least 4 bytes wide. Width grows with the declared frame size rather
// than being fixed, since some taggers widen the counter past 2^32 plays.
type PlayCounterFrame struct {
	Count uint64
	width int
}

func (f *PlayCounterFrame) decode(_ Version, raw []byte) error {
	if len(raw) < 4 {
		return fmt.Errorf("id3v2: play counter frame must be at least 4 bytes, got %d", len(raw))
	}

	var n uint64
	for _, b := range raw {
		n = n<<8 | uint64(b)
	}
	f.Count = n
	f.width = len(raw)
	return nil
}

func (f *PlayCounterFrame) encode(_ Version) ([]byte, error) {
	width := f.width
	if width < 4 {
		width = 4
	}

	// Grow width if Count no longer fits in it, rather than truncating.
	for n := f.Count >> (8 * uint(width)); n > 0; n >>= 8 {
		width++
	}

	out := make([]byte, width)
	n := f.Count
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(n)
		n >>= 8
	}
	return out, nil
}
