package buffer

import (
	"strings"
	"sync/atomic"
)

// Revision uniquely identifies a buffer revision. Each mutation creates a
// new revision.
type Revision uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// newRevision generates a new unique revision ID.
func newRevision() Revision {
	return Revision(atomic.AddUint64(&revisionCounter, 1))
}

// Buffer is an ordered sequence of text lines plus a dirty flag. It always
// contains at least one line; an empty document is a single empty line.
//
// Buffer is owned by a single editor loop and is not safe for concurrent
// use.
type Buffer struct {
	lines    []string
	dirty    bool
	revision Revision
}

// New creates an empty buffer containing one empty line.
func New() *Buffer {
	return &Buffer{
		lines:    []string{""},
		revision: newRevision(),
	}
}

// FromString creates a buffer from file content. Content is split on CR,
// LF or CRLF; which terminator was used, and whether the content ended
// with one, is not retained.
func FromString(s string) *Buffer {
	b := New()
	b.lines = splitLines(s)
	return b
}

// splitLines splits content on any line terminator, dropping a trailing
// empty fragment so "a\n" loads as one line, not two.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of a specific line, or the empty string for a row
// out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineLen returns the length of a specific line, or zero for a row out of
// range.
func (b *Buffer) LineLen(row int) int {
	return len(b.Line(row))
}

// Lines returns a copy of all lines in document order.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Contents returns the buffer serialized for saving: lines joined with a
// single LF and no trailing newline. A buffer holding one empty line
// serializes to the empty string.
func (b *Buffer) Contents() string {
	return strings.Join(b.lines, "\n")
}

// Dirty reports whether the buffer holds unsaved modifications.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// MarkSaved clears the dirty flag after a successful save.
func (b *Buffer) MarkSaved() {
	b.dirty = false
}

// Revision returns the current revision ID.
func (b *Buffer) Revision() Revision {
	return b.revision
}

// markDirty records a mutation.
func (b *Buffer) markDirty() {
	b.dirty = true
	b.revision = newRevision()
}

// Insert splices text into the line at row/col. The insertion is rejected,
// with no state change, if the resulting line would exceed maxLineLen or
// the position is out of range. Reports whether the buffer changed.
func (b *Buffer) Insert(row, col int, text string, maxLineLen int) bool {
	if row < 0 || row >= len(b.lines) {
		return false
	}
	line := b.lines[row]
	if col < 0 || col > len(line) {
		return false
	}
	if len(line)+len(text) > maxLineLen {
		return false
	}
	b.lines[row] = line[:col] + text + line[col:]
	b.markDirty()
	return true
}

// Delete removes the character at row/col (forward delete). At end of line
// it merges the line with the following one. A row past the end is clamped
// to the last row. At the final position of the document it is a no-op.
// Reports whether the buffer changed.
func (b *Buffer) Delete(row, col int) bool {
	if row < 0 {
		return false
	}
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	line := b.lines[row]
	switch {
	case col < 0 || col > len(line):
		return false
	case col < len(line):
		b.lines[row] = line[:col] + line[col+1:]
	case row < len(b.lines)-1:
		// End of line: merge with the next line.
		b.lines[row] = line + b.lines[row+1]
		b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	default:
		// Final position of the document.
		return false
	}
	b.markDirty()
	return true
}

// SplitLine splits the line at row into two lines at col: the prefix
// replaces the original row, the suffix becomes a new line immediately
// after it. The caller is responsible for moving the cursor to the start
// of the new line.
func (b *Buffer) SplitLine(row, col int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	if col < 0 || col > len(line) {
		return
	}
	b.lines = append(b.lines[:row+1], b.lines[row:]...)
	b.lines[row] = line[:col]
	b.lines[row+1] = line[col:]
	b.markDirty()
}
