package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/aidanlsb/maple/internal/shellquote"
)

// maxStderrTail is how much of a failed command's stderr ends up in the error.
const maxStderrTail = 512

type command struct {
	command string
	dir     string
}

// Exec returns a source over the standard output of a shell command. The
// command is run with "sh -c" (or "cmd /C" on Windows) in dir, or the
// current directory when dir is empty.
func Exec(cmd, dir string) Source {
	return &command{command: cmd, dir: dir}
}

func (c *command) Name() string { return "sh -c " + shellquote.Quote(c.command) }

func (c *command) Each(ctx context.Context, fn func(string) error) error {
	if strings.TrimSpace(c.command) == "" {
		return fmt.Errorf("empty command")
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", c.command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", c.command)
	}
	cmd.Dir = c.dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("pipe stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	scanErr := scanLines(ctx, stdout, fn)
	if scanErr != nil {
		// Stop the child so Wait does not block on a full pipe.
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		_ = cmd.Wait()
		return scanErr
	}

	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if tail := stderrTail(stderr.String()); tail != "" {
				return fmt.Errorf("command exited with status %d: %s", exitErr.ExitCode(), tail)
			}
			return fmt.Errorf("command exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("run command: %w", err)
	}
	return nil
}

func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxStderrTail {
		return s
	}
	return "..." + s[len(s)-maxStderrTail:]
}
