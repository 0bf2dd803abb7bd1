//go:build unix

package run

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

func (l ExecLauncher) Launch(spec LaunchSpec) Outcome {
	shell, err := exec.LookPath(spec.Shell)
	if err != nil {
		return Failed(fmt.Errorf("resolve shell %q: %w", spec.Shell, err))
	}
	if err := unix.Exec(shell, spec.Argv(), os.Environ()); err != nil {
		return Failed(fmt.Errorf("exec %s: %w", shell, err))
	}
	return Replaced()
}
