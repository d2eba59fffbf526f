// Package window maps logical buffer coordinates to a bounded, scrollable
// terminal region.
package window

import (
	"strings"

	"github.com/dshills/keylite/internal/engine/buffer"
	"github.com/dshills/keylite/internal/engine/cursor"
)

// HeaderHeight is the fixed number of screen rows above the text area:
// one title line and one separator line.
const HeaderHeight = 2

// helpText is shown right-justified in the title line.
const helpText = "Ctrl-Q: quit  Ctrl-W: save"

// Config carries the terminal geometry, read once at startup and fixed for
// the process lifetime.
type Config struct {
	Rows int // total terminal rows, including the header
	Cols int // terminal columns
}

// Window owns a cursor, references a buffer, and maintains the scroll
// offset that keeps the cursor inside the visible text area. After every
// movement operation the invariant
//
//	scrollRow <= cursor.row <= scrollRow+rows-1
//
// holds, where rows is the height of the text area.
type Window struct {
	cursor *cursor.Cursor
	buf    *buffer.Buffer

	scrollRow int
	scrollCol int // no horizontal scrolling; kept for translation symmetry

	rows int // text area height (terminal rows minus header)
	cols int

	title  string
	header string
}

// New creates a window over the given buffer with fixed terminal geometry.
func New(buf *buffer.Buffer, cfg Config) *Window {
	rows := cfg.Rows - HeaderHeight
	if rows < 1 {
		rows = 1
	}
	cols := cfg.Cols
	if cols < 1 {
		cols = 1
	}
	w := &Window{
		cursor: cursor.New(),
		buf:    buf,
		rows:   rows,
		cols:   cols,
	}
	w.SetTitle("")
	return w
}

// Size returns the text area dimensions.
func (w *Window) Size() (rows, cols int) {
	return w.rows, w.cols
}

// CursorPos returns the cursor's logical buffer position.
func (w *Window) CursorPos() (row, col int) {
	return w.cursor.Position()
}

// ColHint returns the cursor's preferred column.
func (w *Window) ColHint() int {
	return w.cursor.ColHint()
}

// ScrollRow returns the first visible buffer row.
func (w *Window) ScrollRow() int {
	return w.scrollRow
}

// CursorUp moves the cursor one row up, scrolling if it leaves the top of
// the text area.
func (w *Window) CursorUp() {
	w.cursor.MoveUp(w.buf)
	w.containCursor()
}

// CursorDown moves the cursor one row down, scrolling if it leaves the
// bottom of the text area.
func (w *Window) CursorDown() {
	w.cursor.MoveDown(w.buf)
	w.containCursor()
}

// CursorLeft moves the cursor one position left, wrapping to the end of
// the previous line and scrolling as needed.
func (w *Window) CursorLeft() {
	w.cursor.MoveLeft(w.buf)
	w.containCursor()
}

// CursorRight moves the cursor one position right, wrapping to the start
// of the next line and scrolling as needed. The move is not permitted once
// the cursor reaches the rightmost usable column; this bounds cursor
// travel independently of the insertion width limit.
func (w *Window) CursorRight() {
	if w.cursor.Col() >= w.cols-1 {
		return
	}
	w.cursor.MoveRight(w.buf)
	w.containCursor()
}

// containCursor restores the scroll-containment invariant after a cursor
// move. Movement is single-step, so at most one row of scroll is needed.
func (w *Window) containCursor() {
	if w.cursor.Row() < w.scrollRow {
		w.scrollRow--
	}
	if w.cursor.Row() > w.scrollRow+w.rows-1 {
		w.scrollRow++
	}
}

// Translate returns the on-screen coordinates of the cursor.
func (w *Window) Translate() (x, y int) {
	return w.cursor.Col() - w.scrollCol, w.cursor.Row() - w.scrollRow + HeaderHeight
}

// VisibleLines returns the slice of buffer lines currently in view.
func (w *Window) VisibleLines() []string {
	lines := w.buf.Lines()
	if w.scrollRow >= len(lines) {
		return nil
	}
	end := min(w.scrollRow+w.rows, len(lines))
	return lines[w.scrollRow:end]
}

// InsertText splices text into the current line at the cursor. The
// insertion is rejected when the resulting line would no longer fit the
// text area with one column to spare; keystrokes beyond the limit are
// dropped rather than wrapped. On success the cursor advances one bounded
// position right. Reports whether the buffer changed.
func (w *Window) InsertText(text string) bool {
	row, col := w.cursor.Position()
	if !w.buf.Insert(row, col, text, w.cols-2) {
		return false
	}
	w.CursorRight()
	return true
}

// DeleteChar forward-deletes the character at the cursor, merging lines at
// end of line. Reports whether the buffer changed.
func (w *Window) DeleteChar() bool {
	row, col := w.cursor.Position()
	return w.buf.Delete(row, col)
}

// SplitLine splits the current line at the cursor and places the cursor at
// the start of the new line, scrolling if needed.
func (w *Window) SplitLine() {
	row, col := w.cursor.Position()
	w.buf.SplitLine(row, col)
	w.cursor.MoveDown(w.buf)
	w.cursor.SetColumn(0)
	w.containCursor()
}

// SetTitle sets the title and recomputes the header line.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.header = layoutHeader(title, helpText, w.cols)
}

// Title returns the current title.
func (w *Window) Title() string {
	return w.title
}

// HeaderLine returns the title line: title left-justified, help text
// right-justified, padded with spaces to exactly the window width.
func (w *Window) HeaderLine() string {
	return w.header
}

// SeparatorLine returns the second header row.
func (w *Window) SeparatorLine() string {
	return strings.Repeat("-", w.cols)
}

// layoutHeader lays out title and help in a field of the given width. The
// help text is dropped first, then the title truncated, when space runs
// out.
func layoutHeader(title, help string, width int) string {
	if len(title) > width {
		title = title[:width]
	}
	gap := width - len(title) - len(help)
	if gap < 1 {
		return title + strings.Repeat(" ", width-len(title))
	}
	return title + strings.Repeat(" ", gap) + help
}
