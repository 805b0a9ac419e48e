package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ProcessRunner BranchState PullRequestGateway BigQuery Archive Metrics

import (
	"context"
	"io"
	"net/http"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/depfix/pkg/domain/model"
)

// ProcessRunner starts the scanner and reports its exit code and the report data mined from
// its output. A non-zero exit code is a result, not an error.
type ProcessRunner interface {
	Run(ctx context.Context, inv *model.Invocation, env []string) (*model.ScanResult, error)
}

// BranchState answers questions about and mutates the local working copy.
type BranchState interface {
	CurrentBranch(ctx context.Context) (string, error)
	FixedBranchName(ctx context.Context) (string, error)
	Classify(ctx context.Context) (model.BranchClassification, error)
	HasUncommittedChanges(ctx context.Context) (bool, error)
	CommitAllChanges(ctx context.Context) error
	DiscardAllChanges(ctx context.Context) error
	PushCurrentBranch(ctx context.Context) error
	RemoteRepository(ctx context.Context) (*model.RemoteRepository, error)
}

type PullRequestGateway interface {
	CreatePullRequest(ctx context.Context, branch string) error
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// Archive stores run artifacts such as the console transcript.
type Archive interface {
	Put(ctx context.Context, name string, r io.Reader) (string, error)
}

type Metrics interface {
	Observe(record *model.RunRecord)
	Push(ctx context.Context) error
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
