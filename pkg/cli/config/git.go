package config

import (
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/infra/gitrepo"
	"github.com/urfave/cli/v3"
)

// Git holds the working copy location and the identity used for fix commits.
type Git struct {
	workspace         string
	botName           string
	botEmail          string
	fixedBranchPrefix string
	remoteName        string
}

func (x *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "workspace",
			Aliases:     []string{"w"},
			Usage:       "Path to the checked out repository",
			Category:    "Git",
			Value:       ".",
			Destination: &x.workspace,
			Sources:     cli.EnvVars("DEPFIX_WORKSPACE", "BITBUCKET_CLONE_DIR", "WORKSPACE"),
		},
		&cli.StringFlag{
			Name:        "bot-name",
			Usage:       "Author name of fix commits",
			Category:    "Git",
			Value:       model.DefaultBotName,
			Destination: &x.botName,
			Sources:     cli.EnvVars("DEPFIX_GIT_BOT_NAME"),
		},
		&cli.StringFlag{
			Name:        "bot-email",
			Usage:       "Author email of fix commits",
			Category:    "Git",
			Value:       model.DefaultBotEmail,
			Destination: &x.botEmail,
			Sources:     cli.EnvVars("DEPFIX_GIT_BOT_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "fixed-branch-prefix",
			Usage:       "Prefix of branches holding fixes",
			Category:    "Git",
			Value:       model.DefaultFixedBranchPrefix,
			Destination: &x.fixedBranchPrefix,
			Sources:     cli.EnvVars("DEPFIX_FIXED_BRANCH_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "remote",
			Usage:       "Remote the fixed branch is pushed to",
			Category:    "Git",
			Value:       model.DefaultRemoteName,
			Destination: &x.remoteName,
			Sources:     cli.EnvVars("DEPFIX_GIT_REMOTE"),
		},
	}
}

// Workspace returns the absolute path of the working copy.
func (x *Git) Workspace() (string, error) {
	path, err := filepath.Abs(x.workspace)
	if err != nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "invalid workspace", goerr.V("workspace", x.workspace))
	}
	return path, nil
}

// Open opens the working copy at workspace. Push credentials are optional.
func (x *Git) Open(workspace string, user string, password types.BitbucketAppPassword) (*gitrepo.Repository, error) {
	options := []gitrepo.Option{
		gitrepo.WithAuthor(x.botName, x.botEmail),
		gitrepo.WithFixedBranchPrefix(x.fixedBranchPrefix),
		gitrepo.WithRemoteName(x.remoteName),
	}
	if user != "" && password != "" {
		options = append(options, gitrepo.WithBasicAuth(user, password))
	}

	return gitrepo.Open(workspace, options...)
}

func (x Git) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("workspace", x.workspace),
		slog.String("botName", x.botName),
		slog.String("botEmail", x.botEmail),
		slog.String("fixedBranchPrefix", x.fixedBranchPrefix),
		slog.String("remote", x.remoteName),
	)
}
