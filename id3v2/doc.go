// Package id3v2 reads, edits, and writes the variable-length ID3v2 tag
// block embedded at the start of an MP3 file.
//
// It supports the 2.2, 2.3, and 2.4 revisions of the format, as defined at
// http://id3.org/id3v2.4.0-structure, http://id3.org/id3v2.3.0, and
// http://id3.org/id3v2-00. Commit chooses between an in-place overwrite
// and a splice of the trailing audio body depending on whether the new
// tag fits in the region already reserved for it.
package id3v2
