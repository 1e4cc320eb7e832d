package git

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
	"github.com/m-mizutani/repobroker/pkg/utils/safe"
)

const (
	// sourceRemote must differ from destinationRemote
	sourceRemote      = "upstream"
	destinationRemote = "origin"
)

// CloneAndPush clones the source branch and pushes it to the destination as the destination
// branch. The working directory is removed on return regardless of the result.
func (x *Client) CloneAndPush(ctx context.Context, input *model.MirrorInput) (*model.MirrorResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	srcURL, err := input.Source.URL()
	if err != nil {
		return nil, err
	}
	dstURL, err := input.Destination.URL()
	if err != nil {
		return nil, err
	}

	workDir, err := os.MkdirTemp(x.tempDir, "repobroker-mirror-*")
	if err != nil {
		return nil, goerr.Wrap(types.ErrExternalTool, "failed to create working directory",
			goerr.V("temp_dir", x.tempDir),
			goerr.V("error", err.Error()),
		)
	}
	defer safe.RemoveAll(workDir)
	repoDir := filepath.Join(workDir, "repo")

	// every step may echo a remote configured by an earlier one
	secrets := []string{srcURL, string(input.Source.Token), dstURL, string(input.Destination.Token)}

	srcBranch := input.SourceBranch.String()
	dstBranch := input.DestinationBranch.String()

	clone := NewCommand("clone", "--origin", sourceRemote, "--branch", srcBranch).
		Secret(srcURL, string(input.Source.Token)).
		Arg(repoDir).
		Conceal(secrets...)
	if _, err := x.Run(ctx, workDir, clone); err != nil {
		return nil, goerr.Wrap(err, "failed to clone source repository", goerr.V("source", input.Source.Redacted()))
	}

	steps := []*Command{
		NewCommand("remote", "add", destinationRemote).Secret(dstURL, string(input.Destination.Token)),
	}
	if srcBranch != dstBranch {
		steps = append(steps,
			NewCommand("checkout", srcBranch),
			NewCommand("branch", "-M", dstBranch),
		)
	}
	steps = append(steps, NewCommand("push", "--set-upstream", destinationRemote, dstBranch))

	for _, cmd := range steps {
		if _, err := x.Run(ctx, repoDir, cmd.Conceal(secrets...)); err != nil {
			return nil, goerr.Wrap(err, "failed to mirror repository",
				goerr.V("source", input.Source.Redacted()),
				goerr.V("destination", input.Destination.Redacted()),
			)
		}
	}

	result := &model.MirrorResult{HeadSHA: readHead(ctx, repoDir)}
	logging.From(ctx).Info("mirrored repository",
		slog.String("source", input.Source.Redacted()),
		slog.String("destination", input.Destination.Redacted()),
		slog.String("branch", dstBranch),
		slog.String("head", result.HeadSHA.String()),
	)
	return result, nil
}

// readHead returns the commit of HEAD in the working clone, or empty if it cannot be read.
func readHead(ctx context.Context, repoDir string) types.CommitSHA {
	repo, err := gogit.PlainOpen(repoDir)
	if err != nil {
		logging.From(ctx).Warn("failed to open working clone", slog.Any("error", err))
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		logging.From(ctx).Warn("failed to read HEAD of working clone", slog.Any("error", err))
		return ""
	}
	return types.CommitSHA(head.Hash().String())
}
