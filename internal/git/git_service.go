package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gopasspw/gitconfig"
	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/logger"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

type GitService struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func NewGitService() *GitService {
	return &GitService{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// HasStagedChanges checks if there are changes in the staging area
func (s *GitService) HasStagedChanges(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	err := cmd.Run()

	// exit status 1 means the index differs from HEAD
	return err != nil && cmd.ProcessState != nil && cmd.ProcessState.ExitCode() == 1
}

// ConfigValue reads a git-config entry as seen from the current repository.
// Unset keys yield an empty string.
func (s *GitService) ConfigValue(ctx context.Context, key string) (string, error) {
	gitDir, err := s.gitDir(ctx)
	if err != nil {
		return "", err
	}

	// the local scope is <gitdir>/config, not <worktree>/config
	cfg := gitconfig.New()
	cfg.LoadAll(gitDir)
	value := strings.TrimSpace(cfg.Get(key))
	logger.Debug(ctx, "git config value", "key", key, "value", value)
	return value, nil
}

func (s *GitService) gitDir(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--absolute-git-dir")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGetRepoRoot.WithError(err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CommitArgs builds the git arguments for opts.
func CommitArgs(opts models.CommitOptions) []string {
	args := []string{"commit"}
	if opts.All {
		args = append(args, "--all")
	}
	if opts.Amend {
		args = append(args, "--amend")
	}
	if opts.Signed {
		args = append(args, "--gpg-sign")
	}
	args = append(args, "--message", opts.Title)
	if opts.Description != "" {
		args = append(args, "--message", opts.Description)
	}
	return args
}

func (s *GitService) Commit(ctx context.Context, opts models.CommitOptions) error {
	args := CommitArgs(opts)
	logger.Info(ctx, "running git", "args", strings.Join(args, " "))

	var stderr strings.Builder
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = io.MultiWriter(s.stderr, &stderr)

	if err := cmd.Run(); err != nil {
		return errors.ErrCreateCommit.
			WithError(fmt.Errorf("git %s: %w", args[0], err)).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}
