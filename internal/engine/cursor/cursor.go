// Package cursor provides the logical editing position within a buffer.
package cursor

import "fmt"

// Document is the read-only view of line geometry the cursor needs to
// stay legal. It is implemented by buffer.Buffer.
type Document interface {
	// LineCount returns the number of lines. Always >= 1.
	LineCount() int
	// LineLen returns the length of the given line, without its terminator.
	LineLen(row int) int
}

// Cursor is a logical position in a document: a row, a column, and the
// last explicitly requested column. The requested column survives vertical
// moves through shorter lines, so moving back onto a long line restores
// the horizontal position the user last asked for.
//
// SetColumn records the column as the preferred column; the clamp applied
// during vertical movement updates only the visible column. That asymmetry
// is the whole contract of this type.
type Cursor struct {
	row     int
	col     int
	colHint int
}

// New creates a cursor at the origin.
func New() *Cursor {
	return &Cursor{}
}

// Row returns the cursor's row.
func (c *Cursor) Row() int {
	return c.row
}

// Col returns the cursor's column.
func (c *Cursor) Col() int {
	return c.col
}

// ColHint returns the preferred column recorded by the last explicit
// column change.
func (c *Cursor) ColHint() int {
	return c.colHint
}

// Position returns the cursor's row and column.
func (c *Cursor) Position() (row, col int) {
	return c.row, c.col
}

// SetColumn sets the column explicitly and records it as the preferred
// column.
func (c *Cursor) SetColumn(col int) {
	if col < 0 {
		col = 0
	}
	c.col = col
	c.colHint = col
}

// clampToHint derives the column from the preferred column on a line of
// the given length. The preferred column itself is left untouched.
func (c *Cursor) clampToHint(lineLen int) {
	c.col = min(c.colHint, lineLen)
}

// MoveUp moves one row up, deriving the column from the preferred column.
// No-op on the first row.
func (c *Cursor) MoveUp(doc Document) {
	if c.row == 0 {
		return
	}
	c.row--
	c.clampToHint(doc.LineLen(c.row))
}

// MoveDown moves one row down, deriving the column from the preferred
// column. No-op on the last row.
func (c *Cursor) MoveDown(doc Document) {
	if c.row >= doc.LineCount()-1 {
		return
	}
	c.row++
	c.clampToHint(doc.LineLen(c.row))
}

// MoveLeft moves one column left, wrapping to the end of the previous line
// at column zero. No-op at the start of the document.
func (c *Cursor) MoveLeft(doc Document) {
	switch {
	case c.col > 0:
		c.SetColumn(c.col - 1)
	case c.row > 0:
		c.row--
		c.SetColumn(doc.LineLen(c.row))
	}
}

// MoveRight moves one column right, wrapping to the start of the next line
// at end of line. No-op at the end of the document.
func (c *Cursor) MoveRight(doc Document) {
	switch {
	case c.col < doc.LineLen(c.row):
		c.SetColumn(c.col + 1)
	case c.row < doc.LineCount()-1:
		c.row++
		c.SetColumn(0)
	}
}

// String returns a human-readable representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d hint=%d)", c.row, c.col, c.colHint)
}
