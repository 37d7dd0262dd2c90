package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"minishell/internal/planner"
	"minishell/internal/token"
)

func plan(t *testing.T, line string) planner.Pipeline {
	t.Helper()
	return planner.Plan(token.Tokenize(line))
}

func TestRun_BuiltinEcho(t *testing.T) {
	var out, errBuf bytes.Buffer
	e := &Engine{Stdout: &out, Stderr: &errBuf}
	if e.Run(plan(t, "echo hello world")) {
		t.Fatal("echo must not exit the shell")
	}
	if out.String() != "hello world\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRun_RedirectToFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	var out bytes.Buffer
	e := &Engine{Stdout: &out, Stderr: &out}
	e.Run(plan(t, "echo hi > "+target))

	if out.Len() != 0 {
		t.Fatalf("nothing should reach real stdout, got %q", out.String())
	}
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hi\n" {
		t.Fatalf("got %q", got)
	}
}

func TestRun_RedirectFileCreatedEvenOnLookupMiss(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	var out bytes.Buffer
	e := &Engine{Stdout: &out, Stderr: &out}
	e.Run(plan(t, "nonesuch-cmd-xyz > "+target))

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("redirect file should exist even though the command was not found: %v", err)
	}
	// The not-found message follows the stdout redirect into the file.
	got, _ := os.ReadFile(target)
	if !bytes.Contains(got, []byte("nonesuch-cmd-xyz: command not found")) {
		t.Fatalf("got %q", got)
	}
}

func TestRun_TruncateVsAppend(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(target, []byte("existing\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	e := &Engine{Stdout: &out, Stderr: &out}
	e.Run(plan(t, "echo hi >> "+target))
	got, _ := os.ReadFile(target)
	if string(got) != "existing\nhi\n" {
		t.Fatalf("append should preserve existing content, got %q", got)
	}

	e.Run(plan(t, "echo bye > "+target))
	got, _ = os.ReadFile(target)
	if string(got) != "bye\n" {
		t.Fatalf("truncate should discard existing content, got %q", got)
	}
}

func TestRun_CommandNotFound(t *testing.T) {
	var out bytes.Buffer
	e := &Engine{Stdout: &out, Stderr: &out}
	e.Run(plan(t, "nonesuch-cmd-xyz"))
	if out.String() != "nonesuch-cmd-xyz: command not found\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRun_ExitOutsidePipeline(t *testing.T) {
	var out bytes.Buffer
	e := &Engine{Stdout: &out, Stderr: &out}
	if !e.Run(plan(t, "exit")) {
		t.Fatal("exit as the sole command must request shell exit")
	}
}

func TestRun_ExitInsidePipelineIsNoop(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/cat")
	}
	var out bytes.Buffer
	e := &Engine{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: &out}
	if e.Run(plan(t, "exit | cat")) {
		t.Fatal("exit inside a pipeline must never terminate the shell")
	}
}

func TestRun_MixedPipelineBuiltinIntoExternal(t *testing.T) {
	if _, err := os.Stat("/usr/bin/wc"); err != nil {
		t.Skip("wc not available")
	}
	var out bytes.Buffer
	e := &Engine{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: &out}
	e.Run(plan(t, "echo foo | wc -c"))
	if out.String() != "4\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRun_MixedPipelineExternalIntoBuiltin(t *testing.T) {
	if _, err := os.Stat("/bin/cat"); err != nil {
		t.Skip("cat not available")
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(src, []byte("ignored\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	e := &Engine{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: &out}
	e.Run(plan(t, "cat "+src+" | echo replaced"))
	if out.String() != "replaced\n" {
		t.Fatalf("builtin stdin must be discarded, got %q", out.String())
	}
}

func TestRun_AllExternalPipeline(t *testing.T) {
	if _, err := os.Stat("/etc/hostname"); err != nil {
		t.Skip("/etc/hostname not available")
	}
	if _, err := os.Stat("/usr/bin/wc"); err != nil {
		t.Skip("wc not available")
	}
	if _, err := os.Stat("/bin/cat"); err != nil {
		t.Skip("cat not available")
	}
	var out bytes.Buffer
	e := &Engine{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: &out}
	e.Run(plan(t, "cat /etc/hostname | wc -l"))
	if out.String() != "1\n" {
		t.Fatalf("got %q", out.String())
	}
}
