// Package editor owns the process lifecycle: load, run loop, save, quit.
// It is a sequential state machine reading one input event at a time and
// mapping it to a window or buffer operation.
package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/dshills/keylite/internal/config"
	"github.com/dshills/keylite/internal/engine/buffer"
	"github.com/dshills/keylite/internal/project/filestore"
	"github.com/dshills/keylite/internal/project/watcher"
	"github.com/dshills/keylite/internal/renderer/backend"
	"github.com/dshills/keylite/internal/renderer/window"
)

// Editor holds the document and drives the edit loop. All mutation happens
// on the goroutine that calls Run; the only other goroutine, the file
// watcher, communicates through the backend event queue.
type Editor struct {
	opts    Options
	cfg     config.Config
	log     *Logger
	logFile *os.File

	store   *filestore.Store
	buf     *buffer.Buffer
	win     *window.Window
	watch   *watcher.FileWatcher
	backend backend.Backend

	notice string
}

// New loads configuration and the document. An unreadable file falls back
// to an empty document; only configuration problems fail startup.
func New(opts Options) (*Editor, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		opts:  opts,
		cfg:   cfg,
		log:   NullLogger,
		store: filestore.New(filestore.WithBackup(cfg.Editor.Backup)),
	}

	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		level := ParseLogLevel(cfg.Logging.Level)
		if opts.LogLevel != "" {
			level = ParseLogLevel(opts.LogLevel)
		}
		e.logFile = f
		e.log = NewLogger(f, level)
	}

	content, err := e.store.Read(opts.Path)
	if err != nil {
		// The user still gets an editor; they just start from empty.
		if filestore.IsNotExist(err) {
			e.log.Debug("%s does not exist, starting empty", opts.Path)
		} else {
			e.log.Warn("could not read %s: %v", opts.Path, err)
		}
		content = ""
	}
	e.buf = buffer.FromString(content)

	return e, nil
}

// Close releases resources held outside the run loop.
func (e *Editor) Close() {
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

// Run acquires the terminal, drives the edit loop until quit, and releases
// the terminal on every exit path.
func (e *Editor) Run(be backend.Backend) error {
	if err := be.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer be.Shutdown()

	e.backend = be
	cols, rows := be.Size()
	e.win = window.New(e.buf, window.Config{Rows: rows, Cols: cols})

	if e.cfg.Editor.WatchFile {
		w, err := watcher.New(e.opts.Path, func() {
			be.PostEvent(backend.Event{Type: backend.EventNotice, Notice: "changed on disk"})
		})
		if err != nil {
			e.log.Warn("file watch unavailable: %v", err)
		} else {
			e.watch = w
			defer func() { _ = e.watch.Close() }()
		}
	}

	e.log.Info("editing %s (%d lines, %dx%d)", e.opts.Path, e.buf.LineCount(), cols, rows)

	for {
		e.refreshTitle()
		e.draw()

		ev := be.PollEvent()
		if err := e.dispatch(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				e.log.Info("quit")
				return nil
			}
			return err
		}
	}
}

// dispatch routes one event. Returning ErrQuit terminates the loop.
func (e *Editor) dispatch(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return e.handleKey(ev)
	case backend.EventNotice:
		e.notice = ev.Notice
	case backend.EventResize:
		// Geometry is fixed at startup; resize events are drained.
	}
	return nil
}

// handleKey applies one key binding. The bindings are fixed. Keys outside
// the table, and runes outside printable ASCII, are ignored.
func (e *Editor) handleKey(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyCtrlQ:
		return ErrQuit
	case backend.KeyCtrlW:
		e.save()
	case backend.KeyUp:
		e.win.CursorUp()
	case backend.KeyDown:
		e.win.CursorDown()
	case backend.KeyLeft:
		e.win.CursorLeft()
	case backend.KeyRight:
		e.win.CursorRight()
	case backend.KeyEnter:
		e.win.SplitLine()
	case backend.KeyDelete, backend.KeyCtrlD:
		e.win.DeleteChar()
	case backend.KeyBackspace:
		if row, col := e.win.CursorPos(); row != 0 || col != 0 {
			e.win.CursorLeft()
			e.win.DeleteChar()
		}
	case backend.KeyTab:
		e.win.InsertText("\t")
	case backend.KeyRune:
		if isPrintable(ev.Rune) {
			e.win.InsertText(string(ev.Rune))
		}
	}
	return nil
}

// save writes the buffer back to the file. The dirty flag is cleared only
// on success; a failed write keeps the document marked unsaved and reports
// through the header.
func (e *Editor) save() {
	e.win.SetTitle("Writing...")
	e.draw()

	if e.watch != nil {
		e.watch.Suppress()
		defer e.watch.Resume()
	}

	rev := e.buf.Revision()
	if err := e.store.Write(e.opts.Path, e.buf.Contents()); err != nil {
		e.log.Error("save failed: %v", err)
		e.notice = "write failed"
		return
	}
	e.buf.MarkSaved()
	e.notice = ""
	e.log.Info("saved %s (revision %d)", e.opts.Path, rev)
}

// refreshTitle recomputes the header from the document state.
func (e *Editor) refreshTitle() {
	title := e.opts.Path
	if e.buf.Dirty() {
		title = "*" + title + " - Unsaved changes"
	}
	if e.notice != "" {
		title += " [" + e.notice + "]"
	}
	e.win.SetTitle(title)
}

// isPrintable reports whether r is a printable ASCII character.
func isPrintable(r rune) bool {
	return r >= ' ' && r <= '~'
}
