package view

import "errors"

// ErrInterrupted is returned by Build when ctx is cancelled between cycles
// (§5 "cancellation is cooperative ... check a cancellation flag between
// logical phases [...] each cycle in the three-cycle builder").
var ErrInterrupted = errors.New("view: build interrupted")
