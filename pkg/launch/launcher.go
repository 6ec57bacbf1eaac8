// Package launch hands non-directory entries to an external program.
package launch

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/filetug/filexp/pkg/filexp/ftlog"
	"github.com/pkg/errors"
)

// Launcher opens a file with whatever the user's environment considers its
// default application. Launch must not wait for the program to exit.
type Launcher interface {
	Launch(path string) error
}

var execCommand = exec.Command
var runtimeGOOS = runtime.GOOS

// waitOpener reaps the opener process once it exits.
var waitOpener = func(cmd *exec.Cmd) error { return cmd.Wait() }

var _ Launcher = (*SystemLauncher)(nil)

// SystemLauncher starts the platform opener or a configured command.
type SystemLauncher struct {
	opener []string
}

// NewSystemLauncher returns a launcher. A non-empty opener such as "code -r"
// replaces the platform default; the path is appended as the last argument.
func NewSystemLauncher(opener string) *SystemLauncher {
	return &SystemLauncher{opener: strings.Fields(opener)}
}

// Command returns the program and arguments used to open path.
func (l *SystemLauncher) Command(path string) (name string, args []string) {
	if len(l.opener) > 0 {
		args = append(args, l.opener[1:]...)
		return l.opener[0], append(args, path)
	}
	switch runtimeGOOS {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

func (l *SystemLauncher) Launch(path string) error {
	name, args := l.Command(path)
	cmd := execCommand(name, args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", name)
	}
	log := ftlog.Get("launch")
	log.Debug().Str("cmd", name).Str("path", path).Int("pid", cmd.Process.Pid).Msg("opener started")
	wait := waitOpener
	go func() {
		if err := wait(cmd); err != nil {
			log.Debug().Err(err).Str("cmd", name).Msg("opener exited")
		}
	}()
	return nil
}
