// Package lineedit reads one line at a time from the terminal, offering
// backspace, EOF-on-empty-line, and tab completion against builtins and
// search-path executables.
package lineedit

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"minishell/internal/builtin"
	"minishell/internal/pathresolve"
)

// Prompt is the exact two-byte prompt literal written before each line.
const Prompt = "$ "

// Editor holds the state scoped to one input line: the accumulated buffer
// and the pending-double-tab flag (spec.md §3). It is safe to reuse across
// lines; ReadLine resets both at the start of each call.
type Editor struct {
	in     *bufio.Reader
	out    io.Writer
	raw    bool
	buf    []byte
	second *string // pending_tab_prefix
}

// New returns an Editor. raw selects between the byte-by-byte raw-mode
// protocol (editing, completion, echo) and a degraded line-buffered read
// for when the terminal could not be placed in raw mode.
func New(in io.Reader, out io.Writer, raw bool) *Editor {
	return &Editor{in: bufio.NewReader(in), out: out, raw: raw}
}

// ReadLine reads one line. ok is false at end of input (EOF on an empty
// buffer), matching spec.md's EOF contract for both the raw and degraded
// paths.
func (e *Editor) ReadLine() (line string, ok bool) {
	if !e.raw {
		return e.readLineDegraded()
	}
	return e.readLineRaw()
}

func (e *Editor) readLineDegraded() (string, bool) {
	s, err := e.in.ReadString('\n')
	if s == "" && err != nil {
		return "", false
	}
	return strings.TrimRight(s, "\r\n"), true
}

func (e *Editor) readLineRaw() (string, bool) {
	e.buf = e.buf[:0]
	e.second = nil

	for {
		b, err := e.in.ReadByte()
		if err != nil {
			if len(e.buf) == 0 {
				e.write("\r\n")
				return "", false
			}
			return string(e.buf), true
		}

		switch {
		case b == '\n' || b == '\r':
			e.write("\r\n")
			return string(e.buf), true

		case b == '\t':
			e.completeTab()

		case b == 0x7f || b == 0x08:
			if len(e.buf) > 0 {
				e.buf = e.buf[:len(e.buf)-1]
				e.write("\b \b")
			}
			e.second = nil

		case b == 0x04:
			if len(e.buf) == 0 {
				e.write("\r\n")
				return "", false
			}
			// Non-empty buffer: EOT is ignored.

		case isPrintable(b):
			e.buf = append(e.buf, b)
			e.write(string(b))
			e.second = nil

		default:
			// Ignore everything else.
		}
	}
}

// isPrintable reports whether b is "any printable ASCII or space"
// (spec.md §4.2).
func isPrintable(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

// completeTab runs the §4.2 completion algorithm.
func (e *Editor) completeTab() {
	current := string(e.buf)

	if strings.ContainsAny(current, " \t") {
		e.bell()
		e.second = nil
		return
	}

	candidates := e.candidates(current)

	switch len(candidates) {
	case 0:
		e.bell()
		e.second = nil
		return

	case 1:
		suffix := candidates[0][len(current):]
		e.extend(suffix + " ")
		e.second = nil
		return
	}

	if lcp := longestCommonPrefix(candidates); len(lcp) > len(current) {
		e.extend(lcp[len(current):])
		e.second = nil
		return
	}

	if e.second != nil && *e.second == current {
		e.write("\r\n" + strings.Join(candidates, "  ") + "\r\n" + Prompt + current)
		e.second = nil
		return
	}

	e.bell()
	pending := current
	e.second = &pending
}

// candidates gathers the hard-coded completable builtins plus every
// PATH executable whose name begins with prefix, deduplicated and sorted.
func (e *Editor) candidates(prefix string) []string {
	seen := make(map[string]struct{})
	for _, name := range builtin.CompletionNames {
		if strings.HasPrefix(name, prefix) {
			seen[name] = struct{}{}
		}
	}
	for _, name := range pathresolve.ListNames(prefix) {
		seen[name] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func longestCommonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	prefix := ss[0]
	for _, s := range ss[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

func (e *Editor) extend(suffix string) {
	e.buf = append(e.buf, suffix...)
	e.write(suffix)
}

func (e *Editor) bell() {
	e.write("\x07")
}

func (e *Editor) write(s string) {
	io.WriteString(e.out, s)
}
