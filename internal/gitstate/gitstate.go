package gitstate

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/oshokin/gitversion/internal/config"
	"github.com/oshokin/gitversion/internal/logger"
)

// State describes a checkout at a single point in time. All fields are
// filled by Collect and never mutated afterwards.
type State struct {
	// VersionString is the composed human-readable version.
	VersionString string
	// Branch is the checked-out branch name, or "HEAD" when detached.
	Branch string
	// FullHash is the full hex hash of the HEAD commit.
	FullHash string
	// ShortHash is the abbreviated hash of the HEAD commit.
	ShortHash string
	// Dirty reports uncommitted changes in the worktree.
	Dirty bool
	// Distance is the number of commits between HEAD and Tag.
	Distance int
	// Tag is the nearest reachable tag name, empty when none exists.
	Tag string
	// Semver is Tag with the configured prefix stripped, "0.0.0" when no
	// tag is reachable.
	Semver string
	// Flag is the opaque marker copied from the configuration.
	Flag string
}

// fallbackSemver is used when no tag is reachable from HEAD.
const fallbackSemver = "0.0.0"

// errNoHead is returned for repositories without a single commit.
var errNoHead = errors.New("repository has no commits")

// Open opens the repository containing path, searching parent directories
// for the .git directory the way the git binary does.
func Open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", path, err)
	}

	return repo, nil
}

// Collect derives the full State of the provided repository using the
// generator configuration. The configuration must have been validated.
func Collect(ctx context.Context, repo *git.Repository, cfg *config.Config) (*State, error) {
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, errNoHead
		}

		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	state := &State{
		Branch:   "HEAD",
		FullHash: head.Hash().String(),
		Flag:     cfg.Flag,
	}
	if head.Name().IsBranch() {
		state.Branch = head.Name().Short()
	}

	state.ShortHash = abbreviate(state.FullHash, cfg.ShortHashLength)

	state.Dirty, err = worktreeDirty(repo)
	if err != nil {
		return nil, err
	}

	tagged, err := taggedCommits(repo)
	if err != nil {
		return nil, err
	}

	state.Tag, state.Distance, err = describe(repo, head.Hash(), tagged)
	if err != nil {
		return nil, err
	}

	state.Semver = fallbackSemver
	if state.Tag != "" {
		state.Semver = trimTagPrefix(state.Tag, cfg.TagPrefix)
	}

	state.VersionString, err = ComposeVersion(cfg.Template, state)
	if err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "collected repository state",
		"version", state.VersionString,
		"branch", state.Branch,
		"commit", state.ShortHash,
		"dirty", state.Dirty,
		"distance", state.Distance)

	return state, nil
}

// abbreviate shortens a full hex hash, tolerating hashes shorter than n.
func abbreviate(hash string, n int) string {
	if n <= 0 || n >= len(hash) {
		return hash
	}

	return hash[:n]
}

// trimTagPrefix strips the configured prefix from a tag name.
func trimTagPrefix(tag, prefix string) string {
	if prefix != "" && len(tag) > len(prefix) && tag[:len(prefix)] == prefix {
		return tag[len(prefix):]
	}

	return tag
}

// worktreeDirty reports whether the worktree has uncommitted changes.
// Bare repositories have no worktree and are reported clean.
func worktreeDirty(repo *git.Repository) (bool, error) {
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return false, nil
		}

		return false, fmt.Errorf("open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("read worktree status: %w", err)
	}

	return !status.IsClean(), nil
}

// taggedCommits maps commit hashes to tag names. Annotated tags are
// resolved to their target commit; lightweight tags already point at one.
func taggedCommits(repo *git.Repository) (map[plumbing.Hash]string, error) {
	refs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	tagged := make(map[plumbing.Hash]string)

	err = refs.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()

		tagObj, tagErr := repo.TagObject(hash)

		switch {
		case tagErr == nil:
			hash = tagObj.Target
		case errors.Is(tagErr, plumbing.ErrObjectNotFound):
			// Lightweight tag.
		default:
			return fmt.Errorf("resolve tag %s: %w", ref.Name().Short(), tagErr)
		}

		tagged[hash] = ref.Name().Short()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tagged, nil
}

// describe walks history from head and returns the first tagged commit it
// meets together with the number of commits in between. With no tag in
// reach, the distance is the total number of commits walked.
func describe(repo *git.Repository, head plumbing.Hash, tagged map[plumbing.Hash]string) (string, int, error) {
	commits, err := repo.Log(&git.LogOptions{From: head})
	if err != nil {
		return "", 0, fmt.Errorf("walk history: %w", err)
	}
	defer commits.Close()

	var (
		tag      string
		distance int
	)

	err = commits.ForEach(func(c *object.Commit) error {
		if name, ok := tagged[c.Hash]; ok {
			tag = name

			return storer.ErrStop
		}

		distance++

		return nil
	})
	if err != nil {
		return "", 0, fmt.Errorf("walk history: %w", err)
	}

	return tag, distance, nil
}
