//go:build !unix

package run

import "errors"

func (l ExecLauncher) Launch(spec LaunchSpec) Outcome {
	return Failed(errors.New("process replacement is not supported on this platform"))
}
