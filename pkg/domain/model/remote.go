package model

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/types"
)

// RemoteRepository identifies the hosted repository behind a git remote.
type RemoteRepository struct {
	Host  string
	Owner string
	Name  string
}

func (x RemoteRepository) FullName() string {
	return x.Owner + "/" + x.Name
}

// ParseRemoteURL parses git remote URLs such as git@bitbucket.org:owner/repo.git,
// ssh://git@host/owner/repo.git and https://user@bitbucket.org/owner/repo.git.
func ParseRemoteURL(raw string) (*RemoteRepository, error) {
	var host, path string

	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return nil, goerr.Wrap(types.ErrValidationFailed, "failed to parse remote URL", goerr.V("url", raw), goerr.V("error", err))
		}
		host = u.Hostname()
		path = u.Path

	case strings.Contains(raw, "@") && strings.Contains(raw, ":"):
		// scp-like syntax: git@host:owner/repo.git
		at := strings.Index(raw, "@")
		rest := raw[at+1:]
		colon := strings.Index(rest, ":")
		host = rest[:colon]
		path = rest[colon+1:]

	default:
		return nil, goerr.Wrap(types.ErrValidationFailed, "unsupported remote URL", goerr.V("url", raw))
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if host == "" || len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "failed to parse owner/repo from remote URL", goerr.V("url", raw))
	}

	return &RemoteRepository{
		Host:  host,
		Owner: parts[0],
		Name:  parts[1],
	}, nil
}
