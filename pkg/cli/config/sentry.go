package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 2 * time.Second

type Sentry struct {
	dsn         string
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("DEPFIX_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("DEPFIX_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Sentry release, e.g. the pipeline build number",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("DEPFIX_SENTRY_RELEASE", "BITBUCKET_BUILD_NUMBER"),
		},
	}
}

// Configure initializes Sentry and returns a function that flushes buffered events. Events are
// sent in the background, and a pipeline step exits right after the run.
func (x *Sentry) Configure(ctx context.Context) (func(), error) {
	if x.dsn == "" {
		logging.From(ctx).Debug("sentry is not configured")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	return func() { sentry.Flush(sentryFlushTimeout) }, nil
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("DSN", x.dsn != ""),
		slog.String("Environment", x.environment),
		slog.String("Release", x.release),
	)
}
