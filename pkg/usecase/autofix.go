package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
)

const (
	msgAlreadyFixed      = "[depfix] Warning: %s is already fixed, no need to do anything"
	msgFixedBranchExists = "[depfix] Warning: %s already exists in the local repo, skipping the local branch creation process"
	msgAbortingAutofix   = "[depfix] Aborting, not continuing with rest of the local/remote branch or pull request creation process."
	msgNoChangesToCommit = "[depfix] Warning: There are no changes to commit, nothing has been fixed"
)

// Autofix decides from the state of the working copy whether to scan, then commits, pushes and
// opens a pull request for the fix. An aborted fix is reported as OutcomeFailure, not as an
// error; errors are returned only for failed git or pull request operations.
func (x *UseCase) Autofix(ctx context.Context) (model.Outcome, error) {
	state := x.clients.BranchState()
	if state == nil {
		return model.OutcomeFailure, goerr.Wrap(types.ErrInvalidOption, "working copy is not available for autofix")
	}

	classification, err := state.Classify(ctx)
	if err != nil {
		return model.OutcomeFailure, goerr.Wrap(err, "failed to classify current branch")
	}
	x.classification = &classification
	logger := logging.From(ctx).With("classification", classification.String())

	switch classification {
	case model.AlreadyFixedByUs:
		current, err := state.CurrentBranch(ctx)
		if err != nil {
			return model.OutcomeFailure, goerr.Wrap(err, "failed to get current branch")
		}
		x.warn(ctx, fmt.Sprintf(msgAlreadyFixed, current))
		return model.OutcomeSuccess, nil

	case model.FixedBranchAlreadyExistsLocally:
		fixed, err := state.FixedBranchName(ctx)
		if err != nil {
			return model.OutcomeFailure, goerr.Wrap(err, "failed to get fixed branch name")
		}
		x.warn(ctx, fmt.Sprintf(msgFixedBranchExists, fixed))
		return model.OutcomeFailure, nil

	case model.NotYetFixed:
		logger.Info("running scanner with autofix")
		return x.fixBranch(ctx)

	default:
		return model.OutcomeFailure, goerr.New("unknown branch classification",
			goerr.V("classification", int(classification)))
	}
}

func (x *UseCase) fixBranch(ctx context.Context) (model.Outcome, error) {
	state := x.clients.BranchState()

	if exitCode := x.ExecuteScan(ctx); exitCode != types.ExitSuccess {
		if err := state.DiscardAllChanges(ctx); err != nil {
			return model.OutcomeFailure, goerr.Wrap(err, "failed to discard changes after failed scan",
				goerr.V("exitCode", exitCode))
		}
		logging.From(ctx).Error(msgAbortingAutofix, "exitCode", exitCode)
		x.println(msgAbortingAutofix)
		return model.OutcomeFailure, nil
	}

	changed, err := state.HasUncommittedChanges(ctx)
	if err != nil {
		return model.OutcomeFailure, goerr.Wrap(err, "failed to check working tree status")
	}

	if changed {
		if err := state.CommitAllChanges(ctx); err != nil {
			return model.OutcomeFailure, goerr.Wrap(err, "failed to commit fixed dependencies")
		}
		if err := state.PushCurrentBranch(ctx); err != nil {
			return model.OutcomeFailure, goerr.Wrap(err, "failed to push fixed branch")
		}
	} else {
		x.warn(ctx, msgNoChangesToCommit)
	}

	branch, err := state.CurrentBranch(ctx)
	if err != nil {
		return model.OutcomeFailure, goerr.Wrap(err, "failed to get current branch")
	}

	gateway := x.clients.PullRequest()
	if gateway == nil {
		x.warn(ctx, fmt.Sprintf(model.MsgSkippingPullRequest, branch))
		return model.OutcomeSuccess, nil
	}
	if err := gateway.CreatePullRequest(ctx, branch); err != nil {
		return model.OutcomeFailure, goerr.Wrap(err, "failed to create pull request", goerr.V("branch", branch))
	}

	return model.OutcomeSuccess, nil
}

func (x *UseCase) warn(ctx context.Context, msg string) {
	logging.From(ctx).Warn(msg)
	x.println(msg)
}
