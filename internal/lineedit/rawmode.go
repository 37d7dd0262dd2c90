package lineedit

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// RawMode is a scoped guard around the terminal's attributes. Acquire it
// once at REPL start and unconditionally Restore it on every exit path
// (normal return, EOF, panic) — spec.md §9 calls this the single most
// important correctness property of the whole shell.
type RawMode struct {
	fd     int
	state  *term.State
	active bool
}

// Enter puts fd into raw mode (non-canonical, no echo, no CR/LF
// translation, VMIN=1/VTIME=0) if it names a terminal. If fd is not a tty,
// or MakeRaw fails for any other reason, Active reports false and callers
// must fall back to the OS's own line-buffered read (spec.md §7: "Terminal
// attribute failure").
func Enter(fd int) *RawMode {
	if !isatty.IsTerminal(uintptr(fd)) {
		return &RawMode{fd: fd}
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return &RawMode{fd: fd}
	}
	return &RawMode{fd: fd, state: state, active: true}
}

// Active reports whether fd is actually in raw mode.
func (r *RawMode) Active() bool {
	return r.active
}

// Restore puts the terminal back exactly as it was before Enter. It is safe
// to call even when Active is false.
func (r *RawMode) Restore() {
	if r.active {
		term.Restore(r.fd, r.state)
	}
}
