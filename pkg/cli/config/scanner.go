package config

import (
	"log/slog"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Scanner holds how the scanner is started and how it reaches the service.
type Scanner struct {
	command     string
	runtimeArgs string
	artifact    string
	baseURL     string
	apiToken    types.APIToken `masq:"secret"`
	apiTokenEnv string
}

func (x *Scanner) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "scanner-command",
			Usage:       "Command that starts the scanner",
			Category:    "Scanner",
			Value:       "java",
			Destination: &x.command,
			Sources:     cli.EnvVars("DEPFIX_SCANNER_COMMAND"),
		},
		&cli.StringFlag{
			Name:        "scanner-runtime-args",
			Usage:       "Space separated runtime arguments placed before the artifact, e.g. \"-Xmx2g\"",
			Category:    "Scanner",
			Destination: &x.runtimeArgs,
			Sources:     cli.EnvVars("DEPFIX_SCANNER_RUNTIME_ARGS"),
		},
		&cli.StringFlag{
			Name:        "scanner-artifact",
			Usage:       "Path to the scanner client artifact",
			Category:    "Scanner",
			Destination: &x.artifact,
			Sources:     cli.EnvVars("DEPFIX_SCANNER_ARTIFACT"),
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Base URL of the scanning service",
			Category:    "Scanner",
			Value:       model.DefaultBaseURL,
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("DEPFIX_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "api-token",
			Usage:       "API token of the scanning service",
			Category:    "Scanner",
			Destination: (*string)(&x.apiToken),
			Sources:     cli.EnvVars(model.DefaultAPITokenEnv),
		},
		&cli.StringFlag{
			Name:        "api-token-env",
			Usage:       "Name of the environment variable that passes the API token to the scanner",
			Category:    "Scanner",
			Value:       model.DefaultAPITokenEnv,
			Destination: &x.apiTokenEnv,
			Sources:     cli.EnvVars("DEPFIX_API_TOKEN_ENV"),
		},
	}
}

// Invocation composes the scanner command line for workspace with the user given client args.
func (x *Scanner) Invocation(workspace string, clientArgs []string) *model.Invocation {
	return model.NewInvocation(x.command, x.runtimeArgs, x.artifact, workspace, clientArgs)
}

// Configuration builds the run configuration. environ is the process environment snapshot.
func (x *Scanner) Configuration(workspace string, git *Git, environ []string) (model.Configuration, error) {
	baseURL, err := url.Parse(x.baseURL)
	if err != nil || baseURL.Host == "" {
		return model.Configuration{}, goerr.Wrap(types.ErrInvalidOption, "invalid base URL", goerr.V("url", x.baseURL))
	}

	cfg := model.Configuration{
		Workspace:   workspace,
		BaseURL:     baseURL,
		APIToken:    x.apiToken,
		APITokenEnv: x.apiTokenEnv,
		Environ:     environ,
	}
	if git != nil {
		cfg.BotName = git.botName
		cfg.BotEmail = git.botEmail
		cfg.FixedBranchPrefix = git.fixedBranchPrefix
		cfg.RemoteName = git.remoteName
	}

	return cfg.WithDefaults(), nil
}

func (x Scanner) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("command", x.command),
		slog.String("runtimeArgs", x.runtimeArgs),
		slog.String("artifact", x.artifact),
		slog.String("baseURL", x.baseURL),
		slog.Int("apiToken.len", len(x.apiToken)),
		slog.String("apiTokenEnv", x.apiTokenEnv),
	)
}
