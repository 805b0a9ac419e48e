package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/depfix/pkg/domain/model"
)

func TestParseRemoteURL(t *testing.T) {
	testCases := []struct {
		url   string
		host  string
		owner string
		name  string
	}{
		{"git@github.com:owner/repo.git", "github.com", "owner", "repo"},
		{"https://github.com/owner/repo.git", "github.com", "owner", "repo"},
		{"https://user@bitbucket.org/team/service", "bitbucket.org", "team", "service"},
		{"ssh://git@bitbucket.org/team/service.git", "bitbucket.org", "team", "service"},
		{"http://bb-proxy:29418/team/service.git/", "bb-proxy", "team", "service"},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			remote := gt.R1(model.ParseRemoteURL(tc.url)).NoError(t)
			gt.V(t, remote.Host).Equal(tc.host)
			gt.V(t, remote.Owner).Equal(tc.owner)
			gt.V(t, remote.Name).Equal(tc.name)
			gt.V(t, remote.FullName()).Equal(tc.owner + "/" + tc.name)
		})
	}

	t.Run("invalid URLs", func(t *testing.T) {
		for _, u := range []string{"/local/path/repo", "https://github.com/only-owner", "git@github.com:a/b/c.git"} {
			_, err := model.ParseRemoteURL(u)
			gt.Error(t, err)
		}
	})
}
