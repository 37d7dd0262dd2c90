package planner

// RedirectMode selects whether a redirected file is truncated or appended to.
type RedirectMode int

const (
	Truncate RedirectMode = iota
	Append
)

// RedirectTarget names a file a stream is diverted to and the mode to open
// it in.
type RedirectTarget struct {
	Path string
	Mode RedirectMode
}

// RedirectSpec holds the stdout/stderr redirections for one Stage. A nil
// field means that stream is not redirected. stdin redirection is not
// modeled — it does not exist in this shell.
type RedirectSpec struct {
	Stdout *RedirectTarget
	Stderr *RedirectTarget
}

// redirectOp describes one recognized redirection operator. Operators are
// matched longest-prefix-first so that "1>>" is never mis-parsed as "1>"
// followed by a stray ">".
type redirectOp struct {
	text   string
	stream redirectStream
	mode   RedirectMode
}

type redirectStream int

const (
	streamStdout redirectStream = iota
	streamStderr
)

// redirectOps is ordered longest-first; see §4.4 of the spec.
var redirectOps = []redirectOp{
	{"1>>", streamStdout, Append},
	{"2>>", streamStderr, Append},
	{">>", streamStdout, Append},
	{"1>", streamStdout, Truncate},
	{"2>", streamStderr, Truncate},
	{">", streamStdout, Truncate},
}

// matchOp returns the redirectOp whose text is a prefix of text, trying
// operators longest-first, or false if none match.
func matchOp(text string) (redirectOp, bool) {
	for _, op := range redirectOps {
		if len(text) >= len(op.text) && text[:len(op.text)] == op.text {
			return op, true
		}
	}
	return redirectOp{}, false
}

func (s *RedirectSpec) set(stream redirectStream, target RedirectTarget) {
	switch stream {
	case streamStdout:
		s.Stdout = &target
	case streamStderr:
		s.Stderr = &target
	}
}
