package gitrepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
)

// CommitMessage is the message of commits holding fixed dependencies.
const CommitMessage = "[depfix] Fix for vulnerable dependencies"

// Repository is the local working copy the scanner runs on.
type Repository struct {
	repo       *git.Repository
	path       string
	prefix     string
	remoteName string
	authorName string
	authorMail string
	auth       transport.AuthMethod
	now        func() time.Time
}

var _ interfaces.BranchState = (*Repository)(nil)

type Option func(*Repository)

func WithFixedBranchPrefix(prefix string) Option {
	return func(x *Repository) {
		x.prefix = prefix
	}
}

func WithRemoteName(name string) Option {
	return func(x *Repository) {
		x.remoteName = name
	}
}

// WithAuthor sets the identity used for commits.
func WithAuthor(name, email string) Option {
	return func(x *Repository) {
		x.authorName = name
		x.authorMail = email
	}
}

// WithBasicAuth sets credentials for push. Without it the remote is accessed anonymously or
// with whatever the transport provides.
func WithBasicAuth(username string, password types.BitbucketAppPassword) Option {
	return func(x *Repository) {
		if username == "" || password == "" {
			return
		}
		x.auth = &http.BasicAuth{Username: username, Password: string(password)}
	}
}

func WithClock(now func() time.Time) Option {
	return func(x *Repository) {
		x.now = now
	}
}

// Open opens the git repository containing path.
func Open(path string, options ...Option) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}

	x := &Repository{
		repo:       repo,
		path:       path,
		prefix:     model.DefaultFixedBranchPrefix,
		remoteName: model.DefaultRemoteName,
		authorName: model.DefaultBotName,
		authorMail: model.DefaultBotEmail,
		now:        time.Now,
	}
	for _, opt := range options {
		opt(x)
	}

	return x, nil
}

func (x *Repository) head() (*plumbing.Reference, error) {
	head, err := x.repo.Head()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get HEAD", goerr.V("path", x.path))
	}
	if !head.Name().IsBranch() {
		return nil, goerr.Wrap(types.ErrNotOnBranch, "HEAD is detached", goerr.V("path", x.path), goerr.V("head", head.Hash().String()))
	}
	return head, nil
}

func (x *Repository) CurrentBranch(ctx context.Context) (string, error) {
	head, err := x.head()
	if err != nil {
		return "", err
	}
	return head.Name().Short(), nil
}

// FixedBranchName returns the name of the branch a fix for the current HEAD is committed to.
func (x *Repository) FixedBranchName(ctx context.Context) (string, error) {
	head, err := x.head()
	if err != nil {
		return "", err
	}
	return model.FixedBranchName(x.prefix, head.Name().Short(), head.Hash().String()), nil
}

func (x *Repository) Classify(ctx context.Context) (model.BranchClassification, error) {
	head, err := x.head()
	if err != nil {
		return model.NotYetFixed, err
	}

	current := head.Name().Short()
	fixed := model.FixedBranchName(x.prefix, current, head.Hash().String())

	if current == fixed {
		return model.AlreadyFixedByUs, nil
	}

	exists, err := x.branchExists(fixed)
	if err != nil {
		return model.NotYetFixed, err
	}
	if exists {
		return model.FixedBranchAlreadyExistsLocally, nil
	}

	return model.NotYetFixed, nil
}

func (x *Repository) branchExists(name string) (bool, error) {
	_, err := x.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, goerr.Wrap(err, "failed to look up branch", goerr.V("branch", name))
}

// HasUncommittedChanges reports whether the working tree has modified, deleted or untracked files.
func (x *Repository) HasUncommittedChanges(ctx context.Context) (bool, error) {
	wt, err := x.repo.Worktree()
	if err != nil {
		return false, goerr.Wrap(err, "failed to get worktree")
	}

	status, err := wt.Status()
	if err != nil {
		return false, goerr.Wrap(err, "failed to get worktree status")
	}

	return !status.IsClean(), nil
}

// CommitAllChanges creates the fixed branch at HEAD, checks it out keeping the working tree
// and commits every change on it.
func (x *Repository) CommitAllChanges(ctx context.Context) error {
	fixed, err := x.FixedBranchName(ctx)
	if err != nil {
		return err
	}

	wt, err := x.repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree")
	}

	if err := wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(fixed),
		Create: true,
		Keep:   true,
	}); err != nil {
		return goerr.Wrap(err, "failed to create fixed branch", goerr.V("branch", fixed))
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return goerr.Wrap(err, "failed to stage changes", goerr.V("branch", fixed))
	}

	hash, err := wt.Commit(CommitMessage, &git.CommitOptions{
		Author: &object.Signature{
			Name:  x.authorName,
			Email: x.authorMail,
			When:  x.now(),
		},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to commit changes", goerr.V("branch", fixed))
	}

	logging.From(ctx).Info("Committed fixed dependencies",
		slog.String("branch", fixed),
		slog.String("commit", hash.String()),
	)
	return nil
}

// DiscardAllChanges resets tracked files to HEAD and removes untracked files and directories.
func (x *Repository) DiscardAllChanges(ctx context.Context) error {
	head, err := x.repo.Head()
	if err != nil {
		return goerr.Wrap(err, "failed to get HEAD", goerr.V("path", x.path))
	}

	wt, err := x.repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree")
	}

	if err := wt.Reset(&git.ResetOptions{
		Commit: head.Hash(),
		Mode:   git.HardReset,
	}); err != nil {
		return goerr.Wrap(err, "failed to reset worktree", goerr.V("commit", head.Hash().String()))
	}

	if err := wt.Clean(&git.CleanOptions{Dir: true}); err != nil {
		return goerr.Wrap(err, "failed to remove untracked files")
	}

	logging.From(ctx).Info("Discarded local changes", slog.String("commit", head.Hash().String()))
	return nil
}

// PushCurrentBranch pushes the current branch to the remote branch of the same name.
func (x *Repository) PushCurrentBranch(ctx context.Context) error {
	branch, err := x.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	ref := plumbing.NewBranchReferenceName(branch)
	err = x.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: x.remoteName,
		RefSpecs:   []config.RefSpec{config.RefSpec(ref.String() + ":" + ref.String())},
		Auth:       x.auth,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		logging.From(ctx).Info("Remote branch is already up to date", slog.String("branch", branch))
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to push branch", goerr.V("branch", branch), goerr.V("remote", x.remoteName))
	}

	logging.From(ctx).Info("Pushed branch", slog.String("branch", branch), slog.String("remote", x.remoteName))
	return nil
}

// RemoteRepository returns host, owner and name of the configured remote.
func (x *Repository) RemoteRepository(ctx context.Context) (*model.RemoteRepository, error) {
	remote, err := x.repo.Remote(x.remoteName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get remote", goerr.V("remote", x.remoteName))
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "no remote URL found", goerr.V("remote", x.remoteName))
	}

	return model.ParseRemoteURL(urls[0])
}
