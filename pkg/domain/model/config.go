package model

import (
	"log/slog"
	"net"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/types"
)

const (
	DefaultBaseURL     = "https://www.depfix.io"
	DefaultAPITokenEnv = "DEPFIX_API_TOKEN"
	DefaultBotName     = "depfix-bot"
	DefaultBotEmail    = "bot@depfix.io"
	DefaultRemoteName  = "origin"
)

// Configuration holds the settings of a single run. It is built once by the CLI from flags and
// the process environment, and only read afterwards.
type Configuration struct {
	Workspace         string
	BaseURL           *url.URL
	APIToken          types.APIToken `masq:"secret"`
	APITokenEnv       string
	BotName           string
	BotEmail          string
	FixedBranchPrefix string
	RemoteName        string

	// Environ is the snapshot of the process environment passed to the scanner.
	Environ []string
}

// WithDefaults returns a copy of the configuration with empty optional settings replaced by defaults.
func (x Configuration) WithDefaults() Configuration {
	if x.BaseURL == nil {
		x.BaseURL, _ = url.Parse(DefaultBaseURL)
	}
	if x.APITokenEnv == "" {
		x.APITokenEnv = DefaultAPITokenEnv
	}
	if x.BotName == "" {
		x.BotName = DefaultBotName
	}
	if x.BotEmail == "" {
		x.BotEmail = DefaultBotEmail
	}
	if x.FixedBranchPrefix == "" {
		x.FixedBranchPrefix = DefaultFixedBranchPrefix
	}
	if x.RemoteName == "" {
		x.RemoteName = DefaultRemoteName
	}
	x.Environ = append([]string{}, x.Environ...)
	return x
}

// Validate checks required settings. Only the API token is mandatory.
func (x Configuration) Validate() error {
	if x.APIToken == "" {
		return goerr.Wrap(types.ErrValidationFailed, "API token is not set", goerr.V("env", x.APITokenEnv))
	}
	if x.Workspace == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace is not set")
	}
	return nil
}

// ScannerEnv returns the environment of the scanner process: the snapshot followed by the
// API token variable. Later entries take precedence when the process starts.
func (x Configuration) ScannerEnv() []string {
	env := make([]string, 0, len(x.Environ)+1)
	env = append(env, x.Environ...)
	if x.APITokenEnv != "" && x.APIToken != "" {
		env = append(env, x.APITokenEnv+"="+string(x.APIToken))
	}
	return env
}

// ReportDomainMarker returns the substring a scanner output line must contain to be mined
// for a report URL. For https://www.example.io it is "example.".
func (x Configuration) ReportDomainMarker() string {
	if x.BaseURL == nil {
		return ""
	}
	return DomainMarker(x.BaseURL)
}

func DomainMarker(u *url.URL) string {
	host := u.Hostname()
	if host == "" || net.ParseIP(host) != nil {
		return host
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return host
	}
	return labels[len(labels)-2] + "."
}

func (x Configuration) LogValue() slog.Value {
	var baseURL string
	if x.BaseURL != nil {
		baseURL = x.BaseURL.String()
	}
	return slog.GroupValue(
		slog.String("workspace", x.Workspace),
		slog.String("baseURL", baseURL),
		slog.Any("apiToken", x.APIToken),
		slog.String("apiTokenEnv", x.APITokenEnv),
		slog.String("botName", x.BotName),
		slog.String("botEmail", x.BotEmail),
		slog.String("fixedBranchPrefix", x.FixedBranchPrefix),
		slog.Int("environ.len", len(x.Environ)),
	)
}
