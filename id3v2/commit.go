package id3v2

import (
	"io"
	"os"

	"code.cloudfoundry.org/bytefmt"
)

// DefaultPadding is the slack space written after the frame list whenever
// commit has to grow the tag region (spec.md §4.6), mirroring pytagger's
// ID3V2_FILE_DEFAULT_PADDING.
const DefaultPadding = 2048

// copyChunkSize sizes the buffer used to stream the trailing audio body
// past a growing tag. pytagger moves this in fixed 1024-byte chunks; this
// package rounds up to a full bytefmt unit so a single read syscall can
// carry a full unit on a typical filesystem block size.
const copyChunkSize = 4 * bytefmt.KILOBYTE

// Commit serializes the tag's current frame list back to the open file.
// It chooses between two strategies (spec.md §4.6):
//
//   - fast path: the serialized ext+frames fit inside the tag's existing
//     declared size. The header, ext header, frames, and remaining
//     padding are rewritten in place; the audio body is untouched.
//   - slow path: the serialized content no longer fits. The audio body is
//     streamed to a temp file, the tag region is rewritten with
//     DefaultPadding bytes of slack, and the body is streamed back after
//     it.
//
// If pretend is true, Commit computes everything but performs no writes,
// letting a caller preview which path would be taken.
func (t *Tag) Commit(pretend bool) error {
	if t.file == nil {
		return newErr("Commit", KindParameter, errNoFile)
	}

	framesBytes, err := t.serializeFrames()
	if err != nil {
		return err
	}

	hadFooter := t.flags.Footer

	// commit always clears the extension header and footer on write
	// (spec.md §9 open question 3): pytagger's construct_ext_header and
	// construct_footer are both stubs that emit nothing and clear the
	// corresponding tag flags.
	t.flags.Ext = false
	t.flags.Footer = false
	t.ext = nil

	required := uint32(len(framesBytes))

	if t.exists && t.size >= required {
		return t.commitFastPath(framesBytes, pretend)
	}
	return t.commitSlowPath(framesBytes, hadFooter, pretend)
}

func (t *Tag) serializeFrames() ([]byte, error) {
	var out []byte
	for _, f := range t.frames {
		b, err := f.serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// commitFastPath rewrites the tag header and body in place, preserving
// the file's existing size and leaving the audio body untouched.
func (t *Tag) commitFastPath(framesBytes []byte, pretend bool) error {
	header := tagHeader{Version: t.version, Flags: t.flags, Size: t.size}

	if pretend {
		return nil
	}

	if _, err := t.file.WriteAt(header.serialize(), 0); err != nil {
		return newErr("Commit", KindIO, err)
	}

	padding := int(t.size) - len(framesBytes)
	body := make([]byte, int(t.size))
	copy(body, framesBytes)
	// the remaining padding bytes are already zero from make([]byte, ...)

	if _, err := t.file.WriteAt(body, tagHeaderSize); err != nil {
		return newErr("Commit", KindIO, err)
	}

	t.padding = padding
	t.exists = true
	return nil
}

// commitSlowPath grows the tag region. It streams the trailing audio body
// to a temp file, rewrites the tag header/body with DefaultPadding bytes
// of slack, then streams the body back after the new tag.
func (t *Tag) commitSlowPath(framesBytes []byte, hadFooter, pretend bool) error {
	required := uint32(len(framesBytes)) + DefaultPadding

	// When no tag existed yet (ModeNew over a bare audio file) there is
	// nothing to skip: the whole file is audio body. Otherwise skip past
	// the old tag's header and declared size.
	var oldTagEnd int64
	if t.exists {
		oldTagEnd = int64(tagHeaderSize) + int64(t.size)
		if t.version != Version22 && hadFooter {
			oldTagEnd += tagHeaderSize // footer mirrors the header's width
		}
	}

	if pretend {
		return nil
	}

	tmp, err := os.CreateTemp("", "id3tag-body-*")
	if err != nil {
		return newErr("Commit", KindIO, err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := t.file.Seek(oldTagEnd, io.SeekStart); err != nil {
		return newErr("Commit", KindIO, err)
	}
	buf := make([]byte, copyChunkSize)
	if _, err := io.CopyBuffer(tmp, t.file, buf); err != nil {
		return newErr("Commit", KindIO, err)
	}

	if err := t.file.Truncate(0); err != nil {
		return newErr("Commit", KindIO, err)
	}
	if _, err := t.file.Seek(0, io.SeekStart); err != nil {
		return newErr("Commit", KindIO, err)
	}

	header := tagHeader{Version: t.version, Flags: t.flags, Size: required}
	if _, err := t.file.Write(header.serialize()); err != nil {
		return newErr("Commit", KindIO, err)
	}
	if _, err := t.file.Write(framesBytes); err != nil {
		return newErr("Commit", KindIO, err)
	}
	if _, err := t.file.Write(make([]byte, DefaultPadding)); err != nil {
		return newErr("Commit", KindIO, err)
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return newErr("Commit", KindIO, err)
	}
	if _, err := io.CopyBuffer(t.file, tmp, buf); err != nil {
		return newErr("Commit", KindIO, err)
	}

	t.size = required
	t.padding = DefaultPadding
	t.exists = true
	return nil
}
