package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const (
	EnvToken = "DEPFIX_GITHUB_TOKEN"

	msgCredentialAbsent = "[depfix] Warning: %s has not been set in the config (please check for settings in " +
		"the repository secrets of your GitHub account), cannot create pull request without this setting."
)

// Client is a pull request gateway for a GitHub repository.
type Client struct {
	owner   string
	repo    string
	baseURL string
	console interfaces.Console

	token     types.GitHubToken
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey

	client *github.Client
}

var _ interfaces.PullRequestGateway = (*Client)(nil)

type Option func(*Client)

// WithToken authenticates with a personal access token or a workflow token.
func WithToken(token types.GitHubToken) Option {
	return func(x *Client) {
		x.token = token
	}
}

// WithApp authenticates as a GitHub App installation. It takes precedence over WithToken.
func WithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) Option {
	return func(x *Client) {
		x.appID = appID
		x.installID = installID
		x.pem = pem
	}
}

// WithBaseURL sets the REST API endpoint, e.g. for GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithConsole(console interfaces.Console) Option {
	return func(x *Client) {
		x.console = console
	}
}

func New(ctx context.Context, owner, repo string, options ...Option) (*Client, error) {
	x := &Client{
		owner: owner,
		repo:  repo,
	}
	for _, opt := range options {
		opt(x)
	}

	httpClient, err := x.buildHTTPClient(ctx)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		x.warn(ctx, fmt.Sprintf(msgCredentialAbsent, EnvToken))
		return x, nil
	}

	client := github.NewClient(httpClient)
	if x.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(x.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", x.baseURL))
		}
		client.BaseURL = u
	}
	x.client = client

	return x, nil
}

func (x *Client) buildHTTPClient(ctx context.Context) (*http.Client, error) {
	switch {
	case x.appID != 0:
		if x.installID == 0 || x.pem == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App requires installation ID and private key",
				goerr.V("appID", x.appID))
		}

		itr, err := ghinstallation.New(http.DefaultTransport, int64(x.appID), int64(x.installID), []byte(x.pem))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("appID", x.appID))
		}
		if x.baseURL != "" {
			itr.BaseURL = strings.TrimSuffix(x.baseURL, "/")
		}
		return &http.Client{Transport: itr, Timeout: time.Minute}, nil

	case x.token != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(x.token)})
		client := oauth2.NewClient(ctx, ts)
		client.Timeout = time.Minute
		return client, nil

	default:
		return nil, nil
	}
}

func (x *Client) warn(ctx context.Context, msg string) {
	logging.From(ctx).Warn(msg)
	if x.console != nil {
		x.console.Println(msg)
	}
}

func (x *Client) info(ctx context.Context, msg string) {
	logging.From(ctx).Info(msg)
	if x.console != nil {
		x.console.Println(msg)
	}
}

// CreatePullRequest opens a pull request from branch to the default branch unless an open one
// already exists.
func (x *Client) CreatePullRequest(ctx context.Context, branch string) error {
	if x.client == nil {
		x.warn(ctx, fmt.Sprintf(model.MsgSkippingPullRequest, branch))
		return nil
	}

	found, err := x.FindOpenPullRequest(ctx, branch)
	if err != nil {
		logging.From(ctx).Error("Error occurred while fetching pull requests", slog.Any("error", err))
		return err
	}
	if found != nil {
		x.warn(ctx, fmt.Sprintf(model.MsgFoundPullRequest, found.ID, x.owner, x.repo, branch))
		x.warn(ctx, model.MsgPullRequestExists)
		return nil
	}

	repo, _, err := x.client.Repositories.Get(ctx, x.owner, x.repo)
	if err != nil {
		return goerr.Wrap(err, "failed to get repository", goerr.V("owner", x.owner), goerr.V("repo", x.repo))
	}

	logging.From(ctx).Info("Creating pull request",
		slog.String("org", x.owner),
		slog.String("repo", x.repo),
		slog.String("branch", branch),
		slog.String("base", repo.GetDefaultBranch()),
	)

	pr, _, err := x.client.PullRequests.Create(ctx, x.owner, x.repo, &github.NewPullRequest{
		Title: github.String(model.PullRequestTitle),
		Head:  github.String(branch),
		Base:  github.String(repo.GetDefaultBranch()),
		Body:  github.String(model.PullRequestBody),
	})
	if err != nil {
		logging.From(ctx).Error("Error occurred while creating pull request", slog.Any("error", err))
		return goerr.Wrap(err, "failed to create pull request", goerr.V("branch", branch))
	}

	logging.From(ctx).Debug("Created pull request", slog.Int("number", pr.GetNumber()), slog.String("url", pr.GetHTMLURL()))
	x.info(ctx, fmt.Sprintf(model.MsgFinishedPullRequest, x.owner, x.repo, branch))
	return nil
}

// FindOpenPullRequest returns the open pull request whose head is branch, or nil.
func (x *Client) FindOpenPullRequest(ctx context.Context, branch string) (*model.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		Head:        x.owner + ":" + branch,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		prs, resp, err := x.client.PullRequests.List(ctx, x.owner, x.repo, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull requests", goerr.V("owner", x.owner), goerr.V("repo", x.repo))
		}

		for _, pr := range prs {
			if pr.GetHead().GetRef() != branch {
				continue
			}
			return &model.PullRequest{
				ID:           strconv.Itoa(pr.GetNumber()),
				SourceBranch: branch,
				State:        model.PullRequestOpen,
				CreatedOn:    pr.GetCreatedAt().Time,
			}, nil
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return nil, nil
}
