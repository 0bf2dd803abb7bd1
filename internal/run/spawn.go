package run

import (
	"errors"
	"fmt"
	"strings"

	"termexec/internal/entry"
)

var ErrMalformedDescriptor = errors.New("malformed descriptor")

type Options struct {
	Shell          string
	DefaultExecArg string
}

func DefaultOptions() Options {
	return Options{Shell: "sh", DefaultExecArg: "-e"}
}

// LaunchSpec is the shell invocation for one launch attempt.
type LaunchSpec struct {
	Shell   string
	Command string
}

// Argv returns the argument vector handed to the shell.
func (s LaunchSpec) Argv() []string {
	return []string{s.Shell, "-c", s.Command}
}

// BuildSpec builds the shell command for d. With args, the terminal's exec
// flag and the args are appended unquoted, so the shell splits them again.
func BuildSpec(d entry.Descriptor, args []string, opts Options) (LaunchSpec, error) {
	exec, ok := d.Exec()
	if !ok {
		return LaunchSpec{}, fmt.Errorf("%w: missing Exec", ErrMalformedDescriptor)
	}
	shell := opts.Shell
	if shell == "" {
		shell = "sh"
	}
	def := opts.DefaultExecArg
	if def == "" {
		def = "-e"
	}
	cmd := exec
	if len(args) > 0 {
		parts := append([]string{exec, d.ExecArg(def)}, args...)
		cmd = strings.Join(parts, " ")
	}
	return LaunchSpec{Shell: shell, Command: cmd}, nil
}

// Outcome is the result of a launch attempt: either the process image was
// replaced, or the attempt failed and the caller may try the next one.
type Outcome struct {
	replaced bool
	err      error
}

func Replaced() Outcome { return Outcome{replaced: true} }

func Failed(err error) Outcome {
	if err == nil {
		err = errors.New("launch failed")
	}
	return Outcome{err: err}
}

func (o Outcome) IsReplaced() bool { return o.replaced }

func (o Outcome) Err() error { return o.err }

type Launcher interface {
	Launch(spec LaunchSpec) Outcome
}

// ExecLauncher replaces the current process with the shell, keeping the
// current environment. On success Launch does not return.
type ExecLauncher struct{}
