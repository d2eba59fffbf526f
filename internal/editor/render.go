package editor

import (
	"github.com/dshills/keylite/internal/renderer/backend"
	"github.com/dshills/keylite/internal/renderer/window"
)

// draw repaints the whole screen: header, separator, the visible slice of
// the buffer, and the caret. The document is at most one screen of plain
// text, so a full redraw per event is cheap enough.
func (e *Editor) draw() {
	be := e.backend
	be.Clear()

	backend.DrawText(be, 0, 0, e.win.HeaderLine(), backend.StyleReverse)
	backend.DrawText(be, 0, 1, e.win.SeparatorLine(), backend.StyleDefault)

	for i, line := range e.win.VisibleLines() {
		backend.DrawText(be, 0, i+window.HeaderHeight, line, backend.StyleDefault)
	}

	be.ShowCursor(e.win.Translate())
	be.Show()
}
