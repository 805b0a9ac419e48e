package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
)

const (
	msgBreakingBuild       = "[depfix] Breaking build"
	msgAnalysisFailed      = "Scanner analysis failed with exit code %d"
	msgUnexpectedException = "Unexpected exception!"
)

// ExecuteScan runs the scanner once and returns its exit code. A scanner that cannot be started
// yields types.ExitLaunchFailure.
func (x *UseCase) ExecuteScan(ctx context.Context) int {
	x.lastResult = nil

	if x.invocation == nil {
		x.unexpected(ctx, goerr.Wrap(types.ErrInvalidOption, "scanner invocation is not configured"))
		return types.ExitLaunchFailure
	}

	result, err := x.clients.ProcessRunner().Run(ctx, x.invocation, x.config.ScannerEnv())
	if err != nil {
		x.unexpected(ctx, goerr.Wrap(err, "failed to run scanner", goerr.V("argv", x.invocation.Argv())))
		return types.ExitLaunchFailure
	}
	x.lastResult = result

	if !result.Succeeded() {
		msg := fmt.Sprintf(msgAnalysisFailed, result.ExitCode)
		logging.From(ctx).Error(msgBreakingBuild, "exitCode", result.ExitCode)
		x.println(msgBreakingBuild)
		x.println(msg)
		return result.ExitCode
	}

	logging.From(ctx).Info("scan finished", "result", result)
	return result.ExitCode
}

// AutofixRequested reports whether the composed scanner arguments ask for an automatic fix.
func (x *UseCase) AutofixRequested() bool {
	return x.invocation != nil && x.invocation.HasAutofix()
}

func (x *UseCase) unexpected(ctx context.Context, err error) {
	logging.From(ctx).Error(msgUnexpectedException, "error", err)
	x.println(msgUnexpectedException)
	x.println(err.Error())
}

func (x *UseCase) println(msg string) {
	if c := x.clients.Console(); c != nil {
		c.Println(msg)
	}
}
