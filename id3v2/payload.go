package id3v2

// Payload is the decoded value carried by a Frame. Each frame-id is bound
// to exactly one Payload implementation by the dispatch table in
// ids.go (spec.md §4.3).
type Payload interface {
	// decode populates the receiver from raw, the frame's payload bytes
	// as read from disk under version.
	decode(version Version, raw []byte) error
	// encode serializes the receiver back to payload bytes under version.
	encode(version Version) ([]byte, error)
}

// payloadKind identifies which Payload shape a frame-id is bound to.
type payloadKind int

const (
	kindText payloadKind = iota
	kindUserText
	kindUserURL
	kindURL
	kindComment
	kindPicture
	kindObject
	kindPlayCounter
	kindOpaque
)

// newPayload constructs the zero value Payload for kind, ready to have
// decode called on it (or to be filled in by a caller constructing a new
// frame from scratch).
func newPayload(kind payloadKind) Payload {
	switch kind {
	case kindText:
		return &TextFrame{}
	case kindUserText:
		return &UserTextFrame{}
	case kindUserURL:
		return &UserTextFrame{isURL: true}
	case kindURL:
		return &URLFrame{}
	case kindComment:
		return &CommentFrame{}
	case kindPicture:
		return &PictureFrame{}
	case kindObject:
		return &ObjectFrame{}
	case kindPlayCounter:
		return &PlayCounterFrame{}
	default:
		return &OpaqueFrame{}
	}
}
