package editor

import "errors"

// ErrQuit signals a clean, user-requested exit from the run loop.
var ErrQuit = errors.New("quit")
