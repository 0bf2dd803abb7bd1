package run

import "os/exec"

// HasBinary reports whether name resolves to an executable on PATH, or is
// an executable path itself.
func HasBinary(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
