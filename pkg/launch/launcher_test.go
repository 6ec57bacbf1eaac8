package launch

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemLauncher_Command(t *testing.T) {
	origGOOS := runtimeGOOS
	defer func() { runtimeGOOS = origGOOS }()

	tests := []struct {
		name     string
		goos     string
		opener   string
		wantName string
		wantArgs []string
	}{
		{name: "darwin", goos: "darwin", wantName: "open", wantArgs: []string{"/tmp/a.txt"}},
		{name: "windows", goos: "windows", wantName: "cmd", wantArgs: []string{"/c", "start", "", "/tmp/a.txt"}},
		{name: "linux", goos: "linux", wantName: "xdg-open", wantArgs: []string{"/tmp/a.txt"}},
		{name: "freebsd", goos: "freebsd", wantName: "xdg-open", wantArgs: []string{"/tmp/a.txt"}},
		{name: "configured_opener", goos: "linux", opener: "code -r", wantName: "code", wantArgs: []string{"-r", "/tmp/a.txt"}},
		{name: "configured_opener_no_args", goos: "darwin", opener: " vim ", wantName: "vim", wantArgs: []string{"/tmp/a.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runtimeGOOS = tt.goos
			name, args := NewSystemLauncher(tt.opener).Command("/tmp/a.txt")
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSystemLauncher_Launch(t *testing.T) {
	origExecCommand, origWait := execCommand, waitOpener
	defer func() { execCommand, waitOpener = origExecCommand, origWait }()

	t.Run("starts_without_waiting", func(t *testing.T) {
		truePath, err := exec.LookPath("true")
		if err != nil {
			t.Skip("true is not available")
		}
		var gotName string
		execCommand = func(name string, args ...string) *exec.Cmd {
			gotName = name
			return exec.Command(truePath)
		}
		err = NewSystemLauncher("my-editor").Launch("/tmp/a.txt")
		assert.NoError(t, err)
		assert.Equal(t, "my-editor", gotName)
	})

	t.Run("reaps_exited_opener", func(t *testing.T) {
		truePath, err := exec.LookPath("true")
		if err != nil {
			t.Skip("true is not available")
		}
		execCommand = func(string, ...string) *exec.Cmd {
			return exec.Command(truePath)
		}
		reaped := make(chan *os.ProcessState, 1)
		waitOpener = func(cmd *exec.Cmd) error {
			err := cmd.Wait()
			reaped <- cmd.ProcessState
			return err
		}
		assert.NoError(t, NewSystemLauncher("").Launch("/tmp/a.txt"))
		select {
		case state := <-reaped:
			assert.True(t, state.Exited())
			assert.Equal(t, 0, state.ExitCode())
		case <-time.After(5 * time.Second):
			t.Fatal("opener process was not waited for")
		}
	})

	t.Run("start_error", func(t *testing.T) {
		execCommand = func(name string, args ...string) *exec.Cmd {
			return exec.Command("/nonexistent/filexp-opener")
		}
		err := NewSystemLauncher("").Launch("/tmp/a.txt")
		assert.Error(t, err)
	})
}
