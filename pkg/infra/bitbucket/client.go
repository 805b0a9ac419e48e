package bitbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
	"github.com/secmon-lab/depfix/pkg/utils/safe"
)

const (
	DefaultBaseURL = "https://api.bitbucket.org"
	UserAgent      = "depfix-scanner-client_1.0"

	EnvUser        = "DEPFIX_BITBUCKET_USER"
	EnvAppPassword = "DEPFIX_BITBUCKET_APP_PASSWORD"
)

const msgCredentialAbsent = "[depfix] Warning: %s has not been set in the config (please check for settings in " +
	"Bitbucket Settings > Account Variables of your Bitbucket account interface), cannot create pull request without this setting."

// Client is a pull request gateway for a Bitbucket Cloud repository.
type Client struct {
	httpClient interfaces.HTTPClient
	baseURL    string
	workspace  string
	repoSlug   string
	user       string
	password   types.BitbucketAppPassword
	console    interfaces.Console
	disabled   bool
}

var _ interfaces.PullRequestGateway = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

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

// New creates a client for workspace/repoSlug. Missing credentials do not fail construction;
// they are reported once here and pull request creation is skipped afterwards.
func New(workspace, repoSlug, user string, password types.BitbucketAppPassword, options ...Option) *Client {
	x := &Client{
		httpClient: &http.Client{Timeout: time.Minute},
		baseURL:    DefaultBaseURL,
		workspace:  workspace,
		repoSlug:   repoSlug,
		user:       user,
		password:   password,
	}
	for _, opt := range options {
		opt(x)
	}

	switch {
	case user == "":
		x.warn(context.Background(), fmt.Sprintf(msgCredentialAbsent, EnvUser))
		x.disabled = true
	case password == "":
		x.warn(context.Background(), fmt.Sprintf(msgCredentialAbsent, EnvAppPassword))
		x.disabled = true
	}

	return x
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

// CreatePullRequest opens a pull request from branch unless an open one already exists.
func (x *Client) CreatePullRequest(ctx context.Context, branch string) error {
	if x.disabled {
		x.warn(ctx, fmt.Sprintf(model.MsgSkippingPullRequest, branch))
		return nil
	}

	logging.From(ctx).Info("Fetching pull requests",
		slog.String("org", x.workspace),
		slog.String("repo", x.repoSlug),
		slog.String("branch", branch),
	)

	found, err := x.FindOpenPullRequest(ctx, branch)
	if err != nil {
		logging.From(ctx).Error("Error occurred while fetching pull requests", slog.Any("error", err))
		return err
	}
	if found != nil {
		x.warn(ctx, fmt.Sprintf(model.MsgFoundPullRequest, found.ID, x.workspace, x.repoSlug, branch))
		x.warn(ctx, model.MsgPullRequestExists)
		return nil
	}

	logging.From(ctx).Info("Creating pull request",
		slog.String("org", x.workspace),
		slog.String("repo", x.repoSlug),
		slog.String("branch", branch),
	)

	body := &createPullRequestRequest{
		Title: model.PullRequestTitle,
	}
	body.Summary.Raw = model.PullRequestBody
	body.Source.Branch.Name = branch

	var created pullRequest
	if err := x.do(ctx, http.MethodPost, x.pullRequestsURL(nil), body, &created); err != nil {
		logging.From(ctx).Error("Error occurred while creating pull request", slog.Any("error", err))
		return goerr.Wrap(err, "failed to create pull request", goerr.V("branch", branch))
	}

	x.info(ctx, fmt.Sprintf(model.MsgFinishedPullRequest, x.workspace, x.repoSlug, branch))
	return nil
}

// FindOpenPullRequest returns the open pull request whose source is branch, or nil. Listings
// are eventually consistent, so a listed candidate is confirmed by reading it directly and is
// dropped only when that read reports it is no longer open.
func (x *Client) FindOpenPullRequest(ctx context.Context, branch string) (*model.PullRequest, error) {
	prs, err := x.ListOpenPullRequests(ctx)
	if err != nil {
		return nil, err
	}

	for _, pr := range prs {
		if pr.SourceBranch != branch {
			continue
		}

		current, err := x.GetPullRequest(ctx, pr.ID)
		if err != nil {
			logging.From(ctx).Warn("Fail to confirm pull request state, treating it as open",
				slog.String("branch", branch),
				slog.String("id", pr.ID),
				slog.Any("error", err),
			)
			return pr, nil
		}
		if current.State != model.PullRequestOpen {
			logging.From(ctx).Warn("REST API call has returned incorrect OPEN pull request",
				slog.String("branch", branch),
				slog.String("id", pr.ID),
				slog.String("state", string(current.State)),
			)
			continue
		}
		return current, nil
	}

	return nil, nil
}

// GetPullRequest reads the pull request with id.
func (x *Client) GetPullRequest(ctx context.Context, id string) (*model.PullRequest, error) {
	var pr pullRequest
	if err := x.do(ctx, http.MethodGet, x.repositoryURL("pullrequests", id), nil, &pr); err != nil {
		return nil, goerr.Wrap(err, "failed to get pull request", goerr.V("id", id))
	}
	return pr.toModel(), nil
}

// ListOpenPullRequests returns all open pull requests of the repository, following pagination.
func (x *Client) ListOpenPullRequests(ctx context.Context) ([]*model.PullRequest, error) {
	var prs []*model.PullRequest

	next := x.pullRequestsURL(url.Values{"state": {string(model.PullRequestOpen)}})
	for next != "" {
		var page pullRequestPage
		if err := x.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, goerr.Wrap(err, "failed to list pull requests")
		}

		for _, v := range page.Values {
			prs = append(prs, v.toModel())
		}
		next = page.Next
	}

	return prs, nil
}

// DeclinePullRequest declines the pull request with id.
func (x *Client) DeclinePullRequest(ctx context.Context, id string) error {
	endpoint := x.repositoryURL("pullrequests", id, "decline")
	if err := x.do(ctx, http.MethodPost, endpoint, nil, nil); err != nil {
		return goerr.Wrap(err, "failed to decline pull request", goerr.V("id", id))
	}

	logging.From(ctx).Info("Declined pull request", slog.String("id", id))
	return nil
}

// WaitUntilNoOpenPullRequest polls until branch has no open pull request. It gives up with
// types.ErrRetryExhausted after attempts polls spaced by interval.
func (x *Client) WaitUntilNoOpenPullRequest(ctx context.Context, branch string, attempts int, interval time.Duration) error {
	for i := 0; i < attempts; i++ {
		prs, err := x.ListOpenPullRequests(ctx)
		if err != nil {
			return err
		}

		var open int
		for _, pr := range prs {
			if pr.SourceBranch == branch {
				open++
			}
		}
		if open == 0 {
			return nil
		}

		logging.From(ctx).Debug("Waiting for pull requests to be closed",
			slog.String("branch", branch),
			slog.Int("open", open),
			slog.Int("attempt", i+1),
		)

		if i+1 < attempts {
			select {
			case <-ctx.Done():
				return goerr.Wrap(ctx.Err(), "interrupted while waiting for pull requests")
			case <-time.After(interval):
			}
		}
	}

	return goerr.Wrap(types.ErrRetryExhausted, "pull request is still open",
		goerr.V("branch", branch),
		goerr.V("attempts", attempts),
	)
}

func (x *Client) repositoryURL(elem ...string) string {
	u := strings.TrimSuffix(x.baseURL, "/") + "/2.0/repositories/" + url.PathEscape(x.workspace) + "/" + url.PathEscape(x.repoSlug)
	for _, e := range elem {
		u += "/" + url.PathEscape(e)
	}
	return u
}

func (x *Client) pullRequestsURL(query url.Values) string {
	u := x.repositoryURL("pullrequests")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (x *Client) do(ctx context.Context, method, endpoint string, input, output any) error {
	var body io.Reader
	if input != nil {
		raw, err := json.Marshal(input)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", endpoint))
	}
	req.SetBasicAuth(x.user, string(x.password))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request", goerr.V("method", method), goerr.V("url", endpoint))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return goerr.Wrap(types.ErrPullRequestAPI, "unexpected status code",
			goerr.V("method", method),
			goerr.V("url", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	if output == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(output); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("url", endpoint))
	}
	return nil
}

type createPullRequestRequest struct {
	Title   string `json:"title"`
	Summary struct {
		Raw string `json:"raw"`
	} `json:"summary"`
	Source struct {
		Branch struct {
			Name string `json:"name"`
		} `json:"branch"`
	} `json:"source"`
}

type pullRequest struct {
	ID        int64     `json:"id"`
	State     string    `json:"state"`
	CreatedOn time.Time `json:"created_on"`
	Source    struct {
		Branch struct {
			Name string `json:"name"`
		} `json:"branch"`
	} `json:"source"`
}

func (x *pullRequest) toModel() *model.PullRequest {
	return &model.PullRequest{
		ID:           strconv.FormatInt(x.ID, 10),
		SourceBranch: x.Source.Branch.Name,
		State:        model.PullRequestState(x.State),
		CreatedOn:    x.CreatedOn,
	}
}

type pullRequestPage struct {
	Values []pullRequest `json:"values"`
	Next   string        `json:"next"`
}
