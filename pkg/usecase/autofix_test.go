package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/infra"
	"github.com/secmon-lab/depfix/pkg/usecase"
)

var autofixArgs = []string{"--autofix"}

func TestAutofixAlreadyFixedByUs(t *testing.T) {
	fx := newFixture(t)
	fx.state.ClassifyFunc = func(ctx context.Context) (model.BranchClassification, error) {
		return model.AlreadyFixedByUs, nil
	}
	fx.state.CurrentBranchFunc = func(ctx context.Context) (string, error) {
		return "fixed-by-depfix-1a2b3c4", nil
	}
	uc := fx.useCase(autofixArgs)

	outcome := gt.R1(uc.Autofix(context.Background())).NoError(t)
	gt.V(t, outcome).Equal(model.OutcomeSuccess)

	gt.A(t, fx.runner.RunCalls()).Length(0)
	gt.A(t, fx.state.CommitAllChangesCalls()).Length(0)
	gt.A(t, fx.state.PushCurrentBranchCalls()).Length(0)
	gt.A(t, fx.gateway.CreatePullRequestCalls()).Length(0)
	gt.True(t, strings.Contains(fx.output(),
		"[depfix] Warning: fixed-by-depfix-1a2b3c4 is already fixed, no need to do anything\n"))
}

func TestAutofixFixedBranchAlreadyExistsLocally(t *testing.T) {
	fx := newFixture(t)
	fx.state.ClassifyFunc = func(ctx context.Context) (model.BranchClassification, error) {
		return model.FixedBranchAlreadyExistsLocally, nil
	}
	uc := fx.useCase(autofixArgs)

	outcome := gt.R1(uc.Autofix(context.Background())).NoError(t)
	gt.V(t, outcome).Equal(model.OutcomeFailure)
	gt.V(t, outcome.ExitCode()).Equal(types.ExitLaunchFailure)

	gt.A(t, fx.runner.RunCalls()).Length(0)
	gt.A(t, fx.state.DiscardAllChangesCalls()).Length(0)
	gt.A(t, fx.gateway.CreatePullRequestCalls()).Length(0)
	gt.True(t, strings.Contains(fx.output(),
		"[depfix] Warning: fixed-by-depfix-1a2b3c4 already exists in the local repo, skipping the local branch creation process\n"))
}

func TestAutofixScanFailure(t *testing.T) {
	fx := newFixture(t)
	fx.runner.RunFunc = func(ctx context.Context, inv *model.Invocation, env []string) (*model.ScanResult, error) {
		return &model.ScanResult{ExitCode: 2}, nil
	}
	uc := fx.useCase(autofixArgs)

	outcome := gt.R1(uc.Autofix(context.Background())).NoError(t)
	gt.V(t, outcome).Equal(model.OutcomeFailure)

	gt.A(t, fx.state.DiscardAllChangesCalls()).Length(1)
	gt.A(t, fx.state.HasUncommittedChangesCalls()).Length(0)
	gt.A(t, fx.state.CommitAllChangesCalls()).Length(0)
	gt.A(t, fx.state.PushCurrentBranchCalls()).Length(0)
	gt.A(t, fx.gateway.CreatePullRequestCalls()).Length(0)

	out := fx.output()
	gt.True(t, strings.Contains(out, "Scanner analysis failed with exit code 2\n"))
	gt.True(t, strings.Contains(out,
		"[depfix] Aborting, not continuing with rest of the local/remote branch or pull request creation process.\n"))
}

func TestAutofixLaunchFailureDiscardsChanges(t *testing.T) {
	fx := newFixture(t)
	fx.runner.RunFunc = func(ctx context.Context, inv *model.Invocation, env []string) (*model.ScanResult, error) {
		return nil, errors.New("fork/exec java: permission denied")
	}
	uc := fx.useCase(autofixArgs)

	outcome := gt.R1(uc.Autofix(context.Background())).NoError(t)
	gt.V(t, outcome).Equal(model.OutcomeFailure)
	gt.A(t, fx.state.DiscardAllChangesCalls()).Length(1)
	gt.A(t, fx.gateway.CreatePullRequestCalls()).Length(0)
}

func TestAutofixCommitsAndOpensPullRequest(t *testing.T) {
	fx := newFixture(t)
	var steps []string
	branch := "main"
	fx.state.HasUncommittedChangesFunc = func(ctx context.Context) (bool, error) {
		steps = append(steps, "status")
		return true, nil
	}
	fx.state.CommitAllChangesFunc = func(ctx context.Context) error {
		steps = append(steps, "commit")
		branch = "fixed-by-depfix-1a2b3c4"
		return nil
	}
	fx.state.PushCurrentBranchFunc = func(ctx context.Context) error {
		steps = append(steps, "push")
		return nil
	}
	fx.state.CurrentBranchFunc = func(ctx context.Context) (string, error) {
		return branch, nil
	}
	fx.gateway.CreatePullRequestFunc = func(ctx context.Context, b string) error {
		steps = append(steps, "pr:"+b)
		return nil
	}
	uc := fx.useCase(autofixArgs)

	outcome := gt.R1(uc.Autofix(context.Background())).NoError(t)
	gt.V(t, outcome).Equal(model.OutcomeSuccess)
	gt.V(t, steps).Equal([]string{"status", "commit", "push", "pr:fixed-by-depfix-1a2b3c4"})
	gt.A(t, fx.state.DiscardAllChangesCalls()).Length(0)
}

func TestAutofixWithoutChanges(t *testing.T) {
	fx := newFixture(t)
	uc := fx.useCase(autofixArgs)

	outcome := gt.R1(uc.Autofix(context.Background())).NoError(t)
	gt.V(t, outcome).Equal(model.OutcomeSuccess)

	gt.A(t, fx.state.CommitAllChangesCalls()).Length(0)
	gt.A(t, fx.state.PushCurrentBranchCalls()).Length(0)
	calls := fx.gateway.CreatePullRequestCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Branch).Equal("main")
	gt.True(t, strings.Contains(fx.output(),
		"[depfix] Warning: There are no changes to commit, nothing has been fixed\n"))
}

func TestAutofixWithoutPullRequestGateway(t *testing.T) {
	fx := newFixture(t)
	clients := infra.New(
		infra.WithProcessRunner(fx.runner),
		infra.WithBranchState(fx.state),
		infra.WithConsole(fx.console),
	)
	uc := usecase.New(clients,
		usecase.WithConfiguration(fx.config),
		usecase.WithInvocation(model.NewInvocation("java", "", "scanner.jar", fx.config.Workspace, autofixArgs)),
	)

	outcome := gt.R1(uc.Autofix(context.Background())).NoError(t)
	gt.V(t, outcome).Equal(model.OutcomeSuccess)
	gt.True(t, strings.Contains(fx.output(), "Skipping pull request creation for branch main"))
}

func TestAutofixErrors(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("classification failure", func(t *testing.T) {
		fx := newFixture(t)
		fx.state.ClassifyFunc = func(ctx context.Context) (model.BranchClassification, error) {
			return model.NotYetFixed, errBoom
		}
		outcome, err := fx.useCase(autofixArgs).Autofix(context.Background())
		gt.True(t, errors.Is(err, errBoom))
		gt.V(t, outcome).Equal(model.OutcomeFailure)
		gt.A(t, fx.runner.RunCalls()).Length(0)
	})

	t.Run("discard failure", func(t *testing.T) {
		fx := newFixture(t)
		fx.runner.RunFunc = func(ctx context.Context, inv *model.Invocation, env []string) (*model.ScanResult, error) {
			return &model.ScanResult{ExitCode: 1}, nil
		}
		fx.state.DiscardAllChangesFunc = func(ctx context.Context) error {
			return errBoom
		}
		_, err := fx.useCase(autofixArgs).Autofix(context.Background())
		gt.True(t, errors.Is(err, errBoom))
	})

	t.Run("commit failure stops before push", func(t *testing.T) {
		fx := newFixture(t)
		fx.state.HasUncommittedChangesFunc = func(ctx context.Context) (bool, error) {
			return true, nil
		}
		fx.state.CommitAllChangesFunc = func(ctx context.Context) error {
			return errBoom
		}
		_, err := fx.useCase(autofixArgs).Autofix(context.Background())
		gt.True(t, errors.Is(err, errBoom))
		gt.A(t, fx.state.PushCurrentBranchCalls()).Length(0)
		gt.A(t, fx.gateway.CreatePullRequestCalls()).Length(0)
	})

	t.Run("push failure stops before pull request", func(t *testing.T) {
		fx := newFixture(t)
		fx.state.HasUncommittedChangesFunc = func(ctx context.Context) (bool, error) {
			return true, nil
		}
		fx.state.PushCurrentBranchFunc = func(ctx context.Context) error {
			return errBoom
		}
		_, err := fx.useCase(autofixArgs).Autofix(context.Background())
		gt.True(t, errors.Is(err, errBoom))
		gt.A(t, fx.gateway.CreatePullRequestCalls()).Length(0)
	})

	t.Run("pull request failure", func(t *testing.T) {
		fx := newFixture(t)
		fx.gateway.CreatePullRequestFunc = func(ctx context.Context, branch string) error {
			return errBoom
		}
		outcome, err := fx.useCase(autofixArgs).Autofix(context.Background())
		gt.True(t, errors.Is(err, errBoom))
		gt.V(t, outcome).Equal(model.OutcomeFailure)
	})

	t.Run("working copy is required", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.New(infra.New(infra.WithProcessRunner(fx.runner)), usecase.WithConfiguration(fx.config))
		_, err := uc.Autofix(context.Background())
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
