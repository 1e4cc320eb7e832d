package git

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
)

// Client runs the git CLI. Every mirror gets its own temporary working directory.
type Client struct {
	path    string
	tempDir string
}

var _ interfaces.GitMirror = (*Client)(nil)

type Option func(*Client)

// WithPath sets the git executable. Default is "git" resolved from PATH.
func WithPath(path string) Option {
	return func(x *Client) {
		x.path = path
	}
}

// WithTempDir sets the parent of working directories. Default is os.TempDir().
func WithTempDir(dir string) Option {
	return func(x *Client) {
		x.tempDir = dir
	}
}

func New(options ...Option) *Client {
	client := &Client{
		path: "git",
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// Run executes cmd in dir and returns stdout. A non-zero exit is returned as types.ToolError
// with the sanitized command line and scrubbed stderr.
func (x *Client) Run(ctx context.Context, dir string, cmd *Command) (string, error) {
	logging.From(ctx).Debug("running git", slog.String("command", cmd.String()), slog.String("dir", dir))

	var stdout, stderr bytes.Buffer
	proc := exec.CommandContext(ctx, x.path, cmd.Args()...)
	proc.Dir = dir
	proc.Stdout = &stdout
	proc.Stderr = &stderr
	proc.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"GIT_ASKPASS=",
	)

	if err := proc.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		toolErr := &types.ToolError{
			Command:  cmd.String(),
			Stderr:   strings.TrimSpace(cmd.Scrub(stderr.String())),
			ExitCode: exitCode,
		}
		return "", goerr.Wrap(toolErr, "git command failed",
			goerr.V("command", toolErr.Command),
			goerr.V("exit_code", exitCode),
			goerr.V("error", cmd.Scrub(err.Error())),
		)
	}

	return cmd.Scrub(stdout.String()), nil
}
