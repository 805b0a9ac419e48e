package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds credentials for opening pull requests on GitHub. A GitHub App takes precedence
// over a token when both are given.
type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	apiURL     string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token that opens pull requests",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars(github.EnvToken, "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("DEPFIX_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("DEPFIX_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("DEPFIX_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint, e.g. for GitHub Enterprise Server",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("DEPFIX_GITHUB_API_URL", "GITHUB_API_URL"),
		},
	}
}

func (x *GitHub) New(ctx context.Context, remote *model.RemoteRepository, console interfaces.Console) (*github.Client, error) {
	var owner, repo string
	if remote != nil {
		owner, repo = remote.Owner, remote.Name
	}

	options := []github.Option{github.WithConsole(console)}
	if x.token != "" {
		options = append(options, github.WithToken(x.token))
	}
	if x.appID != 0 {
		options = append(options, github.WithApp(x.appID, x.installID, x.privateKey))
	}
	if x.apiURL != "" {
		options = append(options, github.WithBaseURL(x.apiURL))
	}

	return github.New(ctx, owner, repo, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("apiURL", x.apiURL),
	)
}
