package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/depfix/pkg/cli/config"
	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/infra"
	"github.com/secmon-lab/depfix/pkg/infra/gitrepo"
	"github.com/secmon-lab/depfix/pkg/infra/scanner"
	"github.com/secmon-lab/depfix/pkg/usecase"
	"github.com/secmon-lab/depfix/pkg/utils/console"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
	"github.com/secmon-lab/depfix/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

const (
	providerBitbucket = "bitbucket"
	providerGitHub    = "github"
)

// Stdout is the destination of console output. Replaced in tests.
var Stdout io.Writer = os.Stdout

func runCommand() *cli.Command {
	var (
		scannerCfg config.Scanner
		gitCfg     config.Git
		bitbucket  config.Bitbucket
		github     config.GitHub
		bigQuery   config.BigQuery
		archive    config.Archive
		metrics    config.Metrics
		sentry     config.Sentry
		provider   string
	)

	return &cli.Command{
		Name:      "run",
		Aliases:   []string{"r"},
		Usage:     "Run the scanner, and fix vulnerable dependencies when --autofix is given to the scanner",
		ArgsUsage: "[-- scanner arguments...]",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "provider",
				Usage:       "Pull request provider [bitbucket|github]",
				Value:       providerBitbucket,
				Sources:     cli.EnvVars("DEPFIX_PROVIDER"),
				Destination: &provider,
			},
		},
			scannerCfg.Flags(),
			gitCfg.Flags(),
			bitbucket.Flags(),
			github.Flags(),
			bigQuery.Flags(),
			archive.Flags(),
			metrics.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Info("starting depfix",
				slog.String("provider", provider),
				slog.Any("scanner", scannerCfg),
				slog.Any("git", gitCfg),
				slog.Any("bitbucket", bitbucket),
				slog.Any("github", github),
				slog.Any("bigquery", bigQuery),
				slog.Any("archive", archive),
				slog.Any("metrics", metrics),
				slog.Any("sentry", &sentry),
			)

			if provider != providerBitbucket && provider != providerGitHub {
				return goerr.Wrap(types.ErrInvalidOption, "unknown pull request provider", goerr.V("provider", provider))
			}

			flushSentry, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flushSentry()

			workspace, err := gitCfg.Workspace()
			if err != nil {
				return err
			}
			cfg, err := scannerCfg.Configuration(workspace, &gitCfg, os.Environ())
			if err != nil {
				return err
			}
			inv := scannerCfg.Invocation(workspace, c.Args().Slice())

			transcript, err := os.CreateTemp("", "depfix-*.log")
			if err != nil {
				return goerr.Wrap(err, "failed to create transcript file")
			}
			defer safe.Remove(transcript.Name())
			defer safe.Close(transcript)

			out := console.New(io.MultiWriter(Stdout, transcript))
			defer safe.Flush(out)

			options := []infra.Option{
				infra.WithConsole(out),
				infra.WithProcessRunner(scanner.New(
					scanner.WithDir(workspace),
					scanner.WithConsole(out),
					scanner.WithDomainMarker(cfg.ReportDomainMarker()),
				)),
			}

			user, password := bitbucketPushAuth(provider, &bitbucket)
			repo, err := gitCfg.Open(workspace, user, password)
			if err != nil {
				if inv.HasAutofix() {
					return goerr.Wrap(err, "autofix requires a git working copy", goerr.V("workspace", workspace))
				}
				logging.From(ctx).Warn("workspace is not a git working copy", "error", err)
			} else {
				options = append(options, infra.WithBranchState(repo))

				if inv.HasAutofix() {
					gateway, err := newPullRequestGateway(ctx, provider, repo, &bitbucket, &github, out)
					if err != nil {
						return err
					}
					if gateway != nil {
						options = append(options, infra.WithPullRequest(gateway))
					}
				}
			}

			bqClient, err := bigQuery.NewClient(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to create BigQuery client")
			}
			if bqClient != nil {
				options = append(options, infra.WithBigQuery(bqClient))
			}

			archiveClient, err := archive.NewClient(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to create archive client")
			}
			if archiveClient != nil {
				options = append(options, infra.WithArchive(archiveClient))
			}

			if m := metrics.NewClient(); m != nil {
				options = append(options, infra.WithMetrics(m))
			}

			uc := usecase.New(infra.New(options...),
				usecase.WithConfiguration(cfg),
				usecase.WithInvocation(inv),
				usecase.WithTranscript(transcript.Name()),
			)

			exitCode, err := uc.Run(ctx)
			if err != nil {
				return err
			}
			if exitCode != types.ExitSuccess {
				return &ExitStatus{code: exitCode}
			}
			return nil
		},
	}
}

func bitbucketPushAuth(provider string, bitbucket *config.Bitbucket) (string, types.BitbucketAppPassword) {
	if provider != providerBitbucket {
		return "", ""
	}
	return bitbucket.Credentials()
}

// newPullRequestGateway returns nil without error when the repository on the provider cannot be
// determined, so that the fix is still committed and pushed. A Bitbucket client without
// credentials is still created so that it reports what is missing.
func newPullRequestGateway(ctx context.Context, provider string, repo *gitrepo.Repository, bitbucket *config.Bitbucket, github *config.GitHub, out interfaces.Console) (interfaces.PullRequestGateway, error) {
	remote, err := repo.RemoteRepository(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to detect remote repository", "error", err)
		remote = nil
	}

	switch provider {
	case providerGitHub:
		if remote == nil {
			return nil, nil
		}
		client, err := github.New(ctx, remote, out)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub client")
		}
		return client, nil

	default:
		ws, slug := bitbucket.Repository(remote)
		user, password := bitbucket.Credentials()
		if (ws == "" || slug == "") && user != "" && password != "" {
			logging.From(ctx).Warn("Bitbucket repository is unknown, set --bitbucket-workspace and --bitbucket-repo-slug")
			return nil, nil
		}
		return bitbucket.New(remote, out), nil
	}
}
