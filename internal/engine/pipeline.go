package engine

import (
	"bytes"
	"os"
	"os/exec"

	"minishell/internal/builtin"
	"minishell/internal/pathresolve"
	"minishell/internal/planner"
)

// runPipeline dispatches a multi-stage pipeline: an all-external fast path
// with real OS pipes when no stage is a builtin, or a buffered mixed-mode
// path otherwise. Builtins can never terminate the shell or change its cwd
// from inside a pipeline (spec.md §4.5, §9), so neither path can request an
// exit — Run already returns false unconditionally for len(p) > 1.
func (e *Engine) runPipeline(p planner.Pipeline) {
	if allExternal(p) {
		e.runExternalPipeline(p)
		return
	}
	e.runMixedPipeline(p)
}

func allExternal(p planner.Pipeline) bool {
	for _, stage := range p {
		if builtin.IsBuiltin(stage.Cmd) {
			return false
		}
	}
	return true
}

// runExternalPipeline spawns every stage with real OS pipes, left to right,
// and waits on all of them before returning. The parent closes each pipe's
// write end as soon as the stage writing to it has started, and its read end
// as soon as the stage reading from it has started, so pipes reach true EOF
// downstream (spec.md §5).
func (e *Engine) runExternalPipeline(p planner.Pipeline) {
	n := len(p)

	dests := make([]destinations, n)
	for i, stage := range p {
		dests[i] = prepareDestinations(stage.Redirects, e.Stdout, e.Stderr)
	}
	defer func() {
		for _, d := range dests {
			d.close()
		}
	}()

	cmds := make([]*exec.Cmd, 0, n)
	var prevRead *os.File

	for i, stage := range p {
		path, ok := pathresolve.Resolve(stage.Cmd)
		if !ok {
			dests[i].stdout.Write(notFoundMessage(stage.Cmd))
			e.waitAll(cmds)
			return
		}

		cmd := exec.Command(path, stage.Args...)
		if i == 0 {
			cmd.Stdin = e.Stdin
		} else {
			cmd.Stdin = prevRead
		}

		var nextRead, thisWrite *os.File
		if i < n-1 {
			r, w, err := os.Pipe()
			if err != nil {
				dests[i].stdout.Write(notFoundMessage(stage.Cmd))
				e.waitAll(cmds)
				return
			}
			cmd.Stdout = w
			nextRead, thisWrite = r, w
		} else {
			cmd.Stdout = dests[i].stdout
		}
		cmd.Stderr = dests[i].stderr

		if err := cmd.Start(); err != nil {
			dests[i].stdout.Write(notFoundMessage(stage.Cmd))
			if thisWrite != nil {
				thisWrite.Close()
			}
			if nextRead != nil {
				nextRead.Close()
			}
			e.waitAll(cmds)
			return
		}
		cmds = append(cmds, cmd)

		if prevRead != nil {
			prevRead.Close()
		}
		if thisWrite != nil {
			thisWrite.Close()
		}
		prevRead = nextRead
	}

	e.waitAll(cmds)
}

func (e *Engine) waitAll(cmds []*exec.Cmd) {
	for _, c := range cmds {
		c.Wait()
	}
}

// runMixedPipeline executes stages strictly sequentially, using an
// in-memory byte buffer as the "pipe" between them. Builtins run in-process
// with allow_exit=false, apply_cd=false, and receive no piped stdin; every
// stage's stderr is written to its destination immediately, while stdout is
// either written out (last stage) or carried forward as the next stage's
// input buffer.
func (e *Engine) runMixedPipeline(p planner.Pipeline) {
	n := len(p)
	var buffer []byte

	for i, stage := range p {
		dest := prepareDestinations(stage.Redirects, e.Stdout, e.Stderr)
		isLast := i == n-1

		if builtin.IsBuiltin(stage.Cmd) {
			result := builtin.Run(stage.Cmd, stage.Args, false, false)
			dest.stderr.Write(result.Stderr)
			if isLast {
				dest.stdout.Write(result.Stdout)
			} else {
				buffer = result.Stdout
			}
			dest.close()
			continue
		}

		path, ok := pathresolve.Resolve(stage.Cmd)
		if !ok {
			dest.stdout.Write(notFoundMessage(stage.Cmd))
			dest.close()
			return
		}

		cmd := exec.Command(path, stage.Args...)
		cmd.Stdin = bytes.NewReader(buffer)
		var stdoutBuf, stderrBuf bytes.Buffer
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf

		if err := cmd.Start(); err != nil {
			dest.stdout.Write(notFoundMessage(stage.Cmd))
			dest.close()
			return
		}
		cmd.Wait()

		dest.stderr.Write(stderrBuf.Bytes())
		if isLast {
			dest.stdout.Write(stdoutBuf.Bytes())
		} else {
			buffer = stdoutBuf.Bytes()
		}
		dest.close()
	}
}
