// Package gitmeta resolves the commit checked out in a repository.
package gitmeta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

// ErrUnavailable is returned when HEAD cannot be resolved by any means.
var ErrUnavailable = errors.New("git head unavailable")

// Resolver looks up HEAD in-process first and falls back to the git CLI.
type Resolver struct {
	timeout time.Duration
	gitBin  string
	logger  *slog.Logger
}

// New creates a Resolver. Each Head call is bounded by timeout.
func New(timeout time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		timeout: timeout,
		gitBin:  "git",
		logger:  logger.With("component", "gitmeta"),
	}
}

// Head returns the full hash of HEAD for the repository containing root.
// Every failure is wrapped in ErrUnavailable; there are no retries.
func (r *Resolver) Head(ctx context.Context, root string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	hash, err := headFromRepo(ctx, root)
	if err == nil {
		return hash, nil
	}
	r.logger.Debug("go-git lookup failed, trying git cli", "root", root, "error", err)

	hash, cliErr := r.headFromCLI(ctx, root)
	if cliErr == nil {
		return hash, nil
	}
	r.logger.Debug("git cli lookup failed", "root", root, "error", cliErr)
	return "", fmt.Errorf("%w: %v", ErrUnavailable, errors.Join(err, cliErr))
}

// headFromRepo reads HEAD with go-git. go-git takes no context, so the
// lookup runs aside and is abandoned when ctx is done.
func headFromRepo(ctx context.Context, root string) (string, error) {
	type result struct {
		hash string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		hash, err := openHead(root)
		done <- result{hash, err}
	}()

	select {
	case res := <-done:
		return res.hash, res.err
	case <-ctx.Done():
		return "", fmt.Errorf("reading HEAD: %w", ctx.Err())
	}
}

func openHead(root string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening repository: %w", err)
	}
	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}

func (r *Resolver) headFromCLI(ctx context.Context, root string) (string, error) {
	cmd := exec.CommandContext(ctx, r.gitBin, "-C", root, "rev-parse", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	hash := strings.TrimSpace(string(out))
	if hash == "" {
		return "", errors.New("git rev-parse: empty output")
	}
	return hash, nil
}
