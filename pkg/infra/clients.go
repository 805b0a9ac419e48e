package infra

import (
	"net/http"
	"os"
	"time"

	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/infra/scanner"
	"github.com/secmon-lab/depfix/pkg/utils/console"
)

type Clients struct {
	runner      interfaces.ProcessRunner
	branchState interfaces.BranchState
	pullRequest interfaces.PullRequestGateway
	console     interfaces.Console
	httpClient  interfaces.HTTPClient
	bqClient    interfaces.BigQuery
	archive     interfaces.Archive
	metrics     interfaces.Metrics
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		console:    console.New(os.Stdout),
		httpClient: &http.Client{Timeout: time.Minute},
	}

	for _, opt := range options {
		opt(client)
	}

	if client.runner == nil {
		client.runner = scanner.New(scanner.WithConsole(client.console))
	}

	return client
}

func (x *Clients) ProcessRunner() interfaces.ProcessRunner {
	return x.runner
}
func (x *Clients) BranchState() interfaces.BranchState {
	return x.branchState
}
func (x *Clients) PullRequest() interfaces.PullRequestGateway {
	return x.pullRequest
}
func (x *Clients) Console() interfaces.Console {
	return x.console
}
func (x *Clients) HTTPClient() interfaces.HTTPClient {
	return x.httpClient
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Archive() interfaces.Archive {
	return x.archive
}
func (x *Clients) Metrics() interfaces.Metrics {
	return x.metrics
}

func WithProcessRunner(runner interfaces.ProcessRunner) Option {
	return func(x *Clients) {
		x.runner = runner
	}
}

func WithBranchState(state interfaces.BranchState) Option {
	return func(x *Clients) {
		x.branchState = state
	}
}

func WithPullRequest(gateway interfaces.PullRequestGateway) Option {
	return func(x *Clients) {
		x.pullRequest = gateway
	}
}

func WithConsole(c interfaces.Console) Option {
	return func(x *Clients) {
		x.console = c
	}
}

func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithArchive(archive interfaces.Archive) Option {
	return func(x *Clients) {
		x.archive = archive
	}
}

func WithMetrics(metrics interfaces.Metrics) Option {
	return func(x *Clients) {
		x.metrics = metrics
	}
}
