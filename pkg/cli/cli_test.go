package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/depfix/pkg/cli"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/utils/testutil"
)

func writeScanner(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "scanner.sh")
	gt.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0700))
	return path
}

func runCLI(t *testing.T, workspace, script string, args ...string) (string, error) {
	var out bytes.Buffer
	orig := cli.Stdout
	cli.Stdout = &out
	t.Cleanup(func() { cli.Stdout = orig })

	argv := append([]string{
		"depfix", "--log-output", "stderr",
		"run",
		"--workspace", workspace,
		"--scanner-command", "/bin/sh",
		"--scanner-runtime-args", script,
		"--scanner-artifact", "",
		"--bigquery-project-id", "",
		"--archive-bucket", "",
		"--metrics-pushgateway-url", "",
		"--sentry-dsn", "",
	}, args...)

	err := cli.New().Run(context.Background(), argv)
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	t.Run("successful scan", func(t *testing.T) {
		script := writeScanner(t, "echo \"workspace: $1\"\necho \"token: $DEPFIX_API_TOKEN\"\n")
		out, err := runCLI(t, t.TempDir(), script, "--api-token", "test-token")
		gt.NoError(t, err)
		gt.True(t, strings.Contains(out, "[depfix] workspace: -Dcli.param.folder="))
		gt.True(t, strings.Contains(out, "[depfix] token: test-token\n"))
	})

	t.Run("scanner exit code becomes exit status", func(t *testing.T) {
		script := writeScanner(t, "echo vulnerable\nexit 3\n")
		out, err := runCLI(t, t.TempDir(), script, "--api-token", "test-token")

		var status *cli.ExitStatus
		gt.True(t, errors.As(err, &status))
		gt.V(t, status.Status()).Equal(3)
		gt.True(t, strings.Contains(out, "[depfix] Breaking build\n"))
		gt.True(t, strings.Contains(out, "Scanner analysis failed with exit code 3\n"))
	})

	t.Run("missing API token", func(t *testing.T) {
		script := writeScanner(t, "echo should not run\n")
		out, err := runCLI(t, t.TempDir(), script, "--api-token", "")

		var status *cli.ExitStatus
		gt.True(t, errors.As(err, &status))
		gt.V(t, status.Status()).Equal(types.ExitLaunchFailure)
		gt.True(t, strings.Contains(out, "Required environment variable has not been set\n"))
		gt.False(t, strings.Contains(out, "should not run"))
	})

	t.Run("autofix requires a git working copy", func(t *testing.T) {
		script := writeScanner(t, "exit 0\n")
		_, err := runCLI(t, t.TempDir(), script, "--api-token", "test-token", "--", "--autofix")
		gt.Error(t, err)

		var status *cli.ExitStatus
		gt.False(t, errors.As(err, &status))
	})

	t.Run("unknown provider", func(t *testing.T) {
		script := writeScanner(t, "exit 0\n")
		_, err := runCLI(t, t.TempDir(), script, "--api-token", "test-token", "--provider", "gitlab")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestRunCommandAutofix(t *testing.T) {
	dir, repo, hash := testutil.InitRepo(t)
	remote := testutil.AddBareRemote(t, repo, "origin")
	fixed := model.DefaultFixedBranchPrefix + hash.String()[:7]

	script := writeScanner(t, "echo scanning\necho 'require example.com/lib v1.2.4' >> go.mod\n")
	args := []string{
		"--api-token", "test-token",
		"--provider", "bitbucket",
		"--bitbucket-user", "",
		"--bitbucket-workspace", "",
		"--bitbucket-repo-slug", "",
		"--", "--autofix",
	}

	out, err := runCLI(t, dir, script, args...)
	gt.NoError(t, err)
	gt.True(t, strings.Contains(out, "[depfix] scanning\n"))
	gt.True(t, strings.Contains(out, "[depfix] Warning: DEPFIX_BITBUCKET_USER has not been set in the config"))
	gt.True(t, strings.Contains(out, "Skipping pull request creation for branch "+fixed))

	head := gt.R1(repo.Head()).NoError(t)
	gt.V(t, head.Name().Short()).Equal(fixed)
	pushed := gt.R1(remote.Reference(plumbing.NewBranchReferenceName(fixed), true)).NoError(t)
	gt.V(t, pushed.Hash()).Equal(head.Hash())

	t.Run("running again on the fixed branch does nothing", func(t *testing.T) {
		before := gt.R1(os.ReadFile(filepath.Join(dir, "go.mod"))).NoError(t)

		out, err := runCLI(t, dir, script, args...)
		gt.NoError(t, err)
		gt.True(t, strings.Contains(out, "[depfix] Warning: "+fixed+" is already fixed, no need to do anything\n"))
		gt.False(t, strings.Contains(out, "[depfix] scanning"))

		after := gt.R1(os.ReadFile(filepath.Join(dir, "go.mod"))).NoError(t)
		gt.V(t, string(after)).Equal(string(before))

		current := gt.R1(repo.Head()).NoError(t)
		gt.V(t, current.Hash()).Equal(head.Hash())
	})
}
