package config

import (
	"log/slog"

	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/infra/bitbucket"
	"github.com/urfave/cli/v3"
)

type Bitbucket struct {
	user        string
	appPassword types.BitbucketAppPassword `masq:"secret"`
	workspace   string
	repoSlug    string
	apiURL      string
}

func (x *Bitbucket) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bitbucket-user",
			Usage:       "Bitbucket user that opens pull requests and pushes fixed branches",
			Category:    "Bitbucket",
			Destination: &x.user,
			Sources:     cli.EnvVars(bitbucket.EnvUser),
		},
		&cli.StringFlag{
			Name:        "bitbucket-app-password",
			Usage:       "Bitbucket app password of the user",
			Category:    "Bitbucket",
			Destination: (*string)(&x.appPassword),
			Sources:     cli.EnvVars(bitbucket.EnvAppPassword),
		},
		&cli.StringFlag{
			Name:        "bitbucket-workspace",
			Usage:       "Bitbucket workspace (detected from the remote URL if not specified)",
			Category:    "Bitbucket",
			Destination: &x.workspace,
			Sources:     cli.EnvVars("DEPFIX_BITBUCKET_WORKSPACE", "BITBUCKET_WORKSPACE", "BITBUCKET_REPO_OWNER"),
		},
		&cli.StringFlag{
			Name:        "bitbucket-repo-slug",
			Usage:       "Bitbucket repository slug (detected from the remote URL if not specified)",
			Category:    "Bitbucket",
			Destination: &x.repoSlug,
			Sources:     cli.EnvVars("DEPFIX_BITBUCKET_REPO_SLUG", "BITBUCKET_REPO_SLUG"),
		},
		&cli.StringFlag{
			Name:        "bitbucket-api-url",
			Usage:       "Bitbucket REST API endpoint",
			Category:    "Bitbucket",
			Value:       bitbucket.DefaultBaseURL,
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("DEPFIX_BITBUCKET_API_URL"),
		},
	}
}

// Credentials returns the user and app password used for push and API calls.
func (x *Bitbucket) Credentials() (string, types.BitbucketAppPassword) {
	return x.user, x.appPassword
}

// Repository returns workspace and slug, filling unset values from remote.
func (x *Bitbucket) Repository(remote *model.RemoteRepository) (string, string) {
	workspace, slug := x.workspace, x.repoSlug
	if remote != nil {
		if workspace == "" {
			workspace = remote.Owner
		}
		if slug == "" {
			slug = remote.Name
		}
	}
	return workspace, slug
}

func (x *Bitbucket) New(remote *model.RemoteRepository, console interfaces.Console) *bitbucket.Client {
	workspace, slug := x.Repository(remote)
	return bitbucket.New(workspace, slug, x.user, x.appPassword,
		bitbucket.WithBaseURL(x.apiURL),
		bitbucket.WithConsole(console),
	)
}

func (x Bitbucket) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user", x.user),
		slog.Int("appPassword.len", len(x.appPassword)),
		slog.String("workspace", x.workspace),
		slog.String("repoSlug", x.repoSlug),
		slog.String("apiURL", x.apiURL),
	)
}
