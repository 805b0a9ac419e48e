package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/gt"
)

// InitRepo creates a repository on branch main with one commit containing go.mod.
func InitRepo(t *testing.T) (string, *git.Repository, plumbing.Hash) {
	t.Helper()
	dir := t.TempDir()

	repo := gt.R1(git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName("main"),
		},
	})).NoError(t)

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/app\n"), 0644))

	wt := gt.R1(repo.Worktree()).NoError(t)
	gt.R1(wt.Add("go.mod")).NoError(t)
	hash := gt.R1(wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Now()},
	})).NoError(t)

	return dir, repo, hash
}

// AddBareRemote creates a bare repository and registers it as remote name of repo.
func AddBareRemote(t *testing.T, repo *git.Repository, name string) *git.Repository {
	t.Helper()
	dir := t.TempDir()

	remote := gt.R1(git.PlainInit(dir, true)).NoError(t)
	gt.R1(repo.CreateRemote(&config.RemoteConfig{
		Name: name,
		URLs: []string{dir},
	})).NoError(t)

	return remote
}
