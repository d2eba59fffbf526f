// Package backend provides terminal backend abstraction for the editor.
package backend

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventNotice carries an out-of-band message posted into the event
	// queue, such as a file watcher notification.
	EventNotice
)

// Key represents a keyboard key.
type Key int

// Key constants for the keys the editor binds.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlD
	KeyCtrlQ
	KeyCtrlW
)

// Style selects how a cell is drawn.
type Style int

const (
	StyleDefault Style = iota
	StyleReverse
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune

	// Resize event fields
	Width, Height int

	// Notice event fields
	Notice string
}

// Backend defines the interface for terminal/display backends.
// Implementations handle raw-mode lifecycle, drawing and input.
type Backend interface {
	// Init acquires the terminal (raw mode, alternate screen).
	// Must be called before any other method.
	Init() error

	// Shutdown releases the terminal on every exit path.
	Shutdown()

	// Size returns the terminal dimensions.
	Size() (width, height int)

	// Clear clears the entire screen.
	Clear()

	// SetContent sets a single cell. Positions outside the terminal are
	// silently ignored.
	SetContent(x, y int, ch rune, style Style)

	// ShowCursor positions and displays the caret.
	ShowCursor(x, y int)

	// Show flushes pending changes to the display.
	Show()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue. Safe to call
	// from other goroutines.
	PostEvent(ev Event)
}

// DrawText draws a string starting at x, y. A convenience shared by the
// editor's renderer and tests.
func DrawText(b Backend, x, y int, text string, style Style) {
	for i, ch := range text {
		b.SetContent(x+i, y, ch, style)
	}
}
