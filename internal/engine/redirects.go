package engine

import (
	"io"
	"os"

	"minishell/internal/planner"
)

// destinations holds the actual stdout/stderr writers for one stage, after
// any redirect files have been opened. Redirect open failures are silently
// ignored (spec.md §7): the stage proceeds with its fallback stream.
type destinations struct {
	stdout  io.Writer
	stderr  io.Writer
	closers []io.Closer
}

func (d destinations) close() {
	for _, c := range d.closers {
		c.Close()
	}
}

// prepareDestinations opens every redirect target named in spec immediately
// — "the moment planning completes" (spec.md §3) — regardless of whether the
// stage's command ever runs, so that an empty output file is observable even
// on a failed command lookup.
func prepareDestinations(spec planner.RedirectSpec, fallbackOut, fallbackErr io.Writer) destinations {
	d := destinations{stdout: fallbackOut, stderr: fallbackErr}

	if spec.Stdout != nil {
		if f, err := openRedirectFile(spec.Stdout); err == nil {
			d.stdout = f
			d.closers = append(d.closers, f)
		}
	}
	if spec.Stderr != nil {
		if f, err := openRedirectFile(spec.Stderr); err == nil {
			d.stderr = f
			d.closers = append(d.closers, f)
		}
	}
	return d
}

func openRedirectFile(target *planner.RedirectTarget) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if target.Mode == planner.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(target.Path, flags, 0o644)
}
