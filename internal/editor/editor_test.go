package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/keylite/internal/renderer/backend"
)

// newTestEditor creates an editor over a file seeded with content, with
// file watching disabled so tests stay deterministic.
func newTestEditor(t *testing.T, content string) (*Editor, string) {
	t.Helper()
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[editor]\nwatch_file = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "doc.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ed, err := New(Options{Path: path, ConfigPath: cfgPath})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(ed.Close)
	return ed, path
}

func key(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func runes(s string) []backend.Event {
	evs := make([]backend.Event, 0, len(s))
	for _, r := range s {
		evs = append(evs, backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r})
	}
	return evs
}

// script runs the editor loop over a null backend, feeding the given
// events followed by a quit.
func script(t *testing.T, ed *Editor, events ...backend.Event) *backend.NullBackend {
	t.Helper()
	nb := backend.NewNullBackend(80, 24)
	for _, ev := range events {
		nb.PostEvent(ev)
	}
	nb.PostEvent(key(backend.KeyCtrlQ))
	if err := ed.Run(nb); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	return nb
}

func TestMissingFileStartsEmpty(t *testing.T) {
	ed, _ := newTestEditor(t, "")
	if ed.buf.LineCount() != 1 || ed.buf.Line(0) != "" {
		t.Errorf("expected a single empty line, got %v", ed.buf.Lines())
	}
	if ed.buf.Dirty() {
		t.Error("a fresh document is not dirty")
	}
}

func TestTypingInsertsText(t *testing.T) {
	ed, _ := newTestEditor(t, "")
	nb := script(t, ed, runes("hi")...)

	if got := ed.buf.Line(0); got != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
	if !ed.buf.Dirty() {
		t.Error("typing must mark the buffer dirty")
	}
	if got := nb.Row(2); !strings.HasPrefix(got, "hi ") {
		t.Errorf("text row should show the typed text, got %q", got)
	}
}

func TestDirtyTitleIndicator(t *testing.T) {
	ed, path := newTestEditor(t, "x")
	nb := script(t, ed, runes("y")...)

	header := nb.Row(0)
	if !strings.HasPrefix(header, "*"+path) {
		t.Errorf("dirty title must carry the * prefix: %q", header)
	}
	if !strings.Contains(header, "Unsaved changes") {
		t.Errorf("dirty title must note unsaved changes: %q", header)
	}
}

func TestCleanTitle(t *testing.T) {
	ed, path := newTestEditor(t, "x")
	nb := script(t, ed)

	header := nb.Row(0)
	if !strings.HasPrefix(header, path) {
		t.Errorf("clean title should be the bare path: %q", header)
	}
	if strings.Contains(header, "Unsaved changes") {
		t.Errorf("clean title must not note unsaved changes: %q", header)
	}
	if !strings.Contains(header, "Ctrl-Q: quit") {
		t.Errorf("header should carry the help text: %q", header)
	}
}

func TestEnterSplitsLine(t *testing.T) {
	ed, _ := newTestEditor(t, "abc\ndef")
	script(t, ed,
		key(backend.KeyRight), key(backend.KeyRight), key(backend.KeyRight),
		key(backend.KeyEnter))

	want := []string{"abc", "", "def"}
	got := ed.buf.Lines()
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBackspaceAtEndOfLine(t *testing.T) {
	ed, _ := newTestEditor(t, "ab")
	script(t, ed,
		key(backend.KeyRight), key(backend.KeyRight),
		key(backend.KeyBackspace))

	if got := ed.buf.Line(0); got != "a" {
		t.Errorf("got %q, want %q", got, "a")
	}
	if !ed.buf.Dirty() {
		t.Error("backspace must mark the buffer dirty")
	}
}

func TestBackspaceAtDocumentStart(t *testing.T) {
	ed, _ := newTestEditor(t, "ab")
	script(t, ed, key(backend.KeyBackspace))

	if got := ed.buf.Line(0); got != "ab" {
		t.Errorf("backspace at document start must be a no-op, got %q", got)
	}
	if ed.buf.Dirty() {
		t.Error("no-op backspace must not mark the buffer dirty")
	}
}

func TestForwardDelete(t *testing.T) {
	ed, _ := newTestEditor(t, "ab")
	script(t, ed, key(backend.KeyDelete))
	if got := ed.buf.Line(0); got != "b" {
		t.Errorf("got %q, want %q", got, "b")
	}

	ed2, _ := newTestEditor(t, "ab")
	script(t, ed2, key(backend.KeyCtrlD))
	if got := ed2.buf.Line(0); got != "b" {
		t.Errorf("Ctrl-D should forward-delete too, got %q", got)
	}
}

func TestSaveWritesJoinedLines(t *testing.T) {
	ed, path := newTestEditor(t, "")
	script(t, ed, append(runes("hi"), key(backend.KeyEnter), key(backend.KeyCtrlW))...)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hi\n" {
		t.Errorf("saved %q, want %q", data, "hi\n")
	}
	if ed.buf.Dirty() {
		t.Error("save must clear the dirty flag")
	}
}

func TestSaveEmptyDocumentWritesEmptyFile(t *testing.T) {
	ed, path := newTestEditor(t, "")
	script(t, ed, key(backend.KeyCtrlW))

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("expected a zero-length file, got %d bytes", info.Size())
	}
	if ed.buf.Dirty() {
		t.Error("saving a clean document must not dirty it")
	}
}

func TestTabInsertsLiteralTab(t *testing.T) {
	ed, _ := newTestEditor(t, "")
	script(t, ed, key(backend.KeyTab))
	if got := ed.buf.Line(0); got != "\t" {
		t.Errorf("got %q, want a literal tab", got)
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	ed, _ := newTestEditor(t, "ab")
	script(t, ed,
		backend.Event{Type: backend.EventKey, Key: backend.KeyNone},
		backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: '\x07'},
		backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'é'})

	if got := ed.buf.Line(0); got != "ab" {
		t.Errorf("unbound and non-ASCII keys must be ignored, got %q", got)
	}
	if ed.buf.Dirty() {
		t.Error("ignored keys must not dirty the buffer")
	}
}

func TestNoticeShownInHeader(t *testing.T) {
	ed, _ := newTestEditor(t, "x")
	nb := script(t, ed, backend.Event{Type: backend.EventNotice, Notice: "changed on disk"})

	if got := nb.Row(0); !strings.Contains(got, "changed on disk") {
		t.Errorf("header should surface the notice, got %q", got)
	}
}

func TestResizeEventsIgnored(t *testing.T) {
	ed, _ := newTestEditor(t, "x")
	script(t, ed, backend.Event{Type: backend.EventResize, Width: 10, Height: 5})

	// Geometry is fixed at startup.
	if _, cols := ed.win.Size(); cols != 80 {
		t.Errorf("resize must not change geometry, got %d cols", cols)
	}
}

func TestRoundTripTerminatorLoss(t *testing.T) {
	// CRLF input saves back as LF with no trailing newline. The loss is
	// intentional.
	ed, path := newTestEditor(t, "a\r\nb\r\n")
	script(t, ed, key(backend.KeyCtrlW))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\nb" {
		t.Errorf("saved %q, want %q", data, "a\nb")
	}
}
