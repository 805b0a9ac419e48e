package scanner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"os/exec"
	"sync"
	"syscall"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
	"github.com/secmon-lab/depfix/pkg/utils/safe"
	"golang.org/x/sync/errgroup"
)

const (
	ConsolePrefix       = "[depfix] "
	flushInterval       = 10
	maxLineBufferBytes  = 1024 * 1024
	lineReadBufferBytes = 64 * 1024
)

// LineHandler receives each output line of the scanner. Calls are serialized.
type LineHandler func(ctx context.Context, line string)

type Runner struct {
	dir     string
	console interfaces.Console
	parser  *ReportParser
	hooks   []LineHandler
}

var _ interfaces.ProcessRunner = (*Runner)(nil)

type Option func(*Runner)

// WithDir sets the working directory of the scanner process.
func WithDir(dir string) Option {
	return func(x *Runner) {
		x.dir = dir
	}
}

func WithConsole(console interfaces.Console) Option {
	return func(x *Runner) {
		x.console = console
	}
}

func WithDomainMarker(marker string) Option {
	return func(x *Runner) {
		x.parser = NewReportParser(marker)
	}
}

// WithLineHandler adds a handler called for every output line after the built-in handling.
func WithLineHandler(h LineHandler) Option {
	return func(x *Runner) {
		x.hooks = append(x.hooks, h)
	}
}

func New(options ...Option) *Runner {
	defaultURL, _ := url.Parse(model.DefaultBaseURL)
	runner := &Runner{
		parser: NewReportParser(model.DomainMarker(defaultURL)),
	}
	for _, opt := range options {
		opt(runner)
	}
	return runner
}

// Run starts the scanner and blocks until it exits. Both output streams are drained before
// the exit status is collected. The scanner has no timeout and is not cancelled by ctx.
func (x *Runner) Run(ctx context.Context, inv *model.Invocation, env []string) (*model.ScanResult, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	argv := inv.Argv()
	logging.From(ctx).Info("Starting scanner", slog.Any("argv", argv), slog.String("dir", x.dir))

	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204
	cmd.Env = env
	cmd.Dir = x.dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open scanner stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open scanner stderr")
	}

	if err := cmd.Start(); err != nil {
		return nil, goerr.Wrap(err, "failed to start scanner", goerr.V("argv", argv))
	}

	result := &model.ScanResult{}
	handle := x.lineHandler(result)

	var eg errgroup.Group
	eg.Go(func() error { return readLines(ctx, stdout, handle) })
	eg.Go(func() error { return readLines(ctx, stderr, handle) })
	readErr := eg.Wait()

	waitErr := cmd.Wait()
	if x.console != nil {
		safe.Flush(x.console)
	}

	if readErr != nil {
		return nil, goerr.Wrap(readErr, "failed to read scanner output", goerr.V("argv", argv))
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, goerr.Wrap(waitErr, "failed to wait for scanner", goerr.V("argv", argv))
		}
		result.ExitCode = exitCode(exitErr)
	}

	logging.From(ctx).Info("Scanner finished", slog.Any("result", result))
	return result, nil
}

func (x *Runner) lineHandler(result *model.ScanResult) LineHandler {
	var (
		mutex sync.Mutex
		count int
	)

	return func(ctx context.Context, line string) {
		mutex.Lock()
		defer mutex.Unlock()

		logging.From(ctx).Info(line)

		if x.console != nil {
			x.console.Println(ConsolePrefix + line)
			count++
			if count%flushInterval == 0 {
				safe.Flush(x.console)
			}
		}

		x.parser.Parse(ctx, line, result)

		for _, hook := range x.hooks {
			hook(ctx, line)
		}
	}
}

// exitCode follows the shell convention of 128+N for a scanner killed by signal N, keeping
// it apart from types.ExitLaunchFailure.
func exitCode(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return exitErr.ExitCode()
}

// readLines delivers every line of r to handle. A line longer than maxLineBufferBytes is
// delivered in pieces of at most that size.
func readLines(ctx context.Context, r io.Reader, handle LineHandler) error {
	reader := bufio.NewReaderSize(r, lineReadBufferBytes)

	var (
		buf   []byte
		split bool
	)
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			if len(buf) > 0 {
				handle(ctx, string(buf))
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			// keep the pipe drained so that the process can exit
			_, _ = io.Copy(io.Discard, r)
			return goerr.Wrap(err, "failed to read output line")
		}

		if !isPrefix && split && len(buf) == 0 && len(chunk) == 0 {
			split = false
			continue
		}

		buf = append(buf, chunk...)
		if isPrefix && len(buf) < maxLineBufferBytes {
			continue
		}

		handle(ctx, string(buf))
		buf = buf[:0]
		split = isPrefix
	}
}
