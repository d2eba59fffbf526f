// Package buffer provides the in-memory text model: an ordered sequence
// of lines with insert, delete and split mutation primitives.
//
// The buffer tracks a dirty flag for unsaved-changes reporting and a
// revision ID that changes on every mutation. It never becomes empty: the
// empty document is represented as a single empty line.
//
// Columns and line lengths are measured in bytes. The editor operates on
// ASCII text; grapheme-aware column math is out of scope.
package buffer
