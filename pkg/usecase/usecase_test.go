package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/secmon-lab/depfix/pkg/domain/mock"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/infra"
	"github.com/secmon-lab/depfix/pkg/usecase"
	"github.com/secmon-lab/depfix/pkg/utils/console"
)

type fixture struct {
	runner  *mock.ProcessRunnerMock
	state   *mock.BranchStateMock
	gateway *mock.PullRequestGatewayMock
	console *console.Console
	out     *bytes.Buffer
	config  model.Configuration
}

func newFixture(t *testing.T) *fixture {
	out := &bytes.Buffer{}
	return &fixture{
		runner: &mock.ProcessRunnerMock{
			RunFunc: func(ctx context.Context, inv *model.Invocation, env []string) (*model.ScanResult, error) {
				return &model.ScanResult{ExitCode: 0}, nil
			},
		},
		state: &mock.BranchStateMock{
			CurrentBranchFunc: func(ctx context.Context) (string, error) {
				return "main", nil
			},
			FixedBranchNameFunc: func(ctx context.Context) (string, error) {
				return "fixed-by-depfix-1a2b3c4", nil
			},
			ClassifyFunc: func(ctx context.Context) (model.BranchClassification, error) {
				return model.NotYetFixed, nil
			},
			HasUncommittedChangesFunc: func(ctx context.Context) (bool, error) {
				return false, nil
			},
			CommitAllChangesFunc: func(ctx context.Context) error {
				return nil
			},
			DiscardAllChangesFunc: func(ctx context.Context) error {
				return nil
			},
			PushCurrentBranchFunc: func(ctx context.Context) error {
				return nil
			},
			RemoteRepositoryFunc: func(ctx context.Context) (*model.RemoteRepository, error) {
				return &model.RemoteRepository{Host: "bitbucket.org", Owner: "acme", Name: "shop"}, nil
			},
		},
		gateway: &mock.PullRequestGatewayMock{
			CreatePullRequestFunc: func(ctx context.Context, branch string) error {
				return nil
			},
		},
		console: console.New(out),
		out:     out,
		config: model.Configuration{
			Workspace: t.TempDir(),
			APIToken:  "test-token",
		},
	}
}

func (x *fixture) useCase(clientArgs []string, options ...infra.Option) *usecase.UseCase {
	clients := infra.New(append([]infra.Option{
		infra.WithProcessRunner(x.runner),
		infra.WithBranchState(x.state),
		infra.WithPullRequest(x.gateway),
		infra.WithConsole(x.console),
	}, options...)...)

	inv := model.NewInvocation("java", "-Xmx1g", "/opt/depfix/scanner.jar", x.config.Workspace, clientArgs)
	return usecase.New(clients,
		usecase.WithConfiguration(x.config),
		usecase.WithInvocation(inv),
	)
}

func (x *fixture) output() string {
	_ = x.console.Flush()
	return x.out.String()
}
