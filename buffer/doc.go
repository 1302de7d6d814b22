// Package buffer implements the pure, grapheme-accurate model of one editable
// line.
//
// The insertion point is a byte offset into the line's UTF-8 text and always
// sits on a grapheme-cluster boundary. Motion and deletion step over whole
// clusters, so a multi-codepoint emoji moves the cursor by one visual unit.
package buffer
