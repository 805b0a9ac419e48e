package infra_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/depfix/pkg/domain/mock"
	"github.com/secmon-lab/depfix/pkg/infra"
	"github.com/secmon-lab/depfix/pkg/infra/scanner"
	"github.com/secmon-lab/depfix/pkg/utils/console"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// A scanner runner and a console are always available
		_, ok := clients.ProcessRunner().(*scanner.Runner)
		gt.True(t, ok)
		gt.V(t, clients.Console()).NotEqual(nil)
		gt.V(t, clients.HTTPClient()).NotEqual(nil)
		// Optional integrations should be nil without configuration
		gt.V(t, clients.BranchState()).Equal(nil)
		gt.V(t, clients.PullRequest()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.Archive()).Equal(nil)
		gt.V(t, clients.Metrics()).Equal(nil)
	})

	t.Run("WithProcessRunner option sets runner", func(t *testing.T) {
		runner := &mock.ProcessRunnerMock{}
		clients := infra.New(infra.WithProcessRunner(runner))
		gt.V(t, clients.ProcessRunner()).Equal(runner)
	})

	t.Run("WithConsole option sets console", func(t *testing.T) {
		c := console.New(&bytes.Buffer{})
		clients := infra.New(infra.WithConsole(c))
		gt.V(t, clients.Console()).Equal(c)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		branchState := &mock.BranchStateMock{}
		gateway := &mock.PullRequestGatewayMock{}
		mockBQ := &mock.BigQueryMock{}
		archive := &mock.ArchiveMock{}
		metrics := &mock.MetricsMock{}

		clients := infra.New(
			infra.WithBranchState(branchState),
			infra.WithPullRequest(gateway),
			infra.WithBigQuery(mockBQ),
			infra.WithArchive(archive),
			infra.WithMetrics(metrics),
		)

		gt.V(t, clients.BranchState()).Equal(branchState)
		gt.V(t, clients.PullRequest()).Equal(gateway)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.Archive()).Equal(archive)
		gt.V(t, clients.Metrics()).Equal(metrics)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
