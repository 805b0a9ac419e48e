package usecase

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/utils/errutil"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
	"github.com/secmon-lab/depfix/pkg/utils/safe"
)

const msgRequiredSettingMissing = "Required environment variable has not been set"

// Run executes one pipeline step: the autofix flow when it is requested by the scanner
// arguments, a plain scan otherwise. It returns the exit status of the process. The run is
// recorded to the configured audit sinks whatever its result.
func (x *UseCase) Run(ctx context.Context) (int, error) {
	runID, ctx := logging.CtxRunID(ctx)
	ctx = logging.With(ctx, logging.From(ctx).With("runID", runID.String()))

	record := &model.RunRecord{
		ID:        runID,
		Timestamp: logging.CtxTime(ctx).UTC(),
		Autofix:   x.AutofixRequested(),
	}

	exitCode, outcome, err := x.run(ctx)
	record.ExitCode = exitCode
	record.Outcome = outcome.String()
	record.SetScanResult(x.lastResult)
	if x.classification != nil {
		record.Classification = x.classification.String()
	}

	safe.Flush(x.clients.Console())
	x.finishRun(ctx, record)

	return exitCode, err
}

func (x *UseCase) run(ctx context.Context) (int, model.Outcome, error) {
	logging.From(ctx).Info("starting run", "config", x.config, "autofix", x.AutofixRequested())

	if err := x.config.Validate(); err != nil {
		logging.From(ctx).Error(msgRequiredSettingMissing, "error", err)
		x.println(msgRequiredSettingMissing)
		return types.ExitLaunchFailure, model.OutcomeFailure, nil
	}

	if !x.AutofixRequested() {
		exitCode := x.ExecuteScan(ctx)
		return exitCode, model.Outcome(exitCode == types.ExitSuccess), nil
	}

	outcome, err := x.Autofix(ctx)
	if err != nil {
		x.unexpected(ctx, err)
		return types.ExitFatal, model.OutcomeFailure, err
	}
	return outcome.ExitCode(), outcome, nil
}

// finishRun exports the run record, metrics and transcript. Failures are reported but never
// change the exit status of the run.
func (x *UseCase) finishRun(ctx context.Context, record *model.RunRecord) {
	if state := x.clients.BranchState(); state != nil {
		if branch, err := state.CurrentBranch(ctx); err == nil {
			record.Branch = branch
		} else {
			logging.From(ctx).Debug("current branch is not available", "error", err)
		}
		if repo, err := state.RemoteRepository(ctx); err == nil {
			record.Repository = repo.FullName()
		} else {
			logging.From(ctx).Debug("remote repository is not available", "error", err)
		}
	}

	if err := x.recordRun(ctx, record); err != nil {
		errutil.HandleError(ctx, "failed to record run", err)
	}

	if m := x.clients.Metrics(); m != nil {
		m.Observe(record)
		if err := m.Push(ctx); err != nil {
			errutil.HandleError(ctx, "failed to push run metrics", err)
		}
	}

	if err := x.archiveTranscript(ctx, record.ID); err != nil {
		errutil.HandleError(ctx, "failed to archive transcript", err)
	}
}

func (x *UseCase) archiveTranscript(ctx context.Context, runID types.RunID) error {
	archive := x.clients.Archive()
	if archive == nil || x.transcript == "" {
		return nil
	}

	f, err := os.Open(x.transcript)
	if err != nil {
		return goerr.Wrap(err, "failed to open transcript", goerr.V("path", x.transcript))
	}
	defer safe.Close(f)

	location, err := archive.Put(ctx, runID.String()+".log", f)
	if err != nil {
		return goerr.Wrap(err, "failed to upload transcript", goerr.V("path", x.transcript))
	}

	logging.From(ctx).Info("transcript archived", "location", location)
	return nil
}
