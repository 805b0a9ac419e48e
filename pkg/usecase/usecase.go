package usecase

import (
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/infra"
)

type UseCase struct {
	clients    *infra.Clients
	config     model.Configuration
	invocation *model.Invocation
	transcript string

	lastResult     *model.ScanResult
	classification *model.BranchClassification
}

type Option func(*UseCase)

// WithConfiguration sets the run configuration. Defaults are substituted for empty optional settings.
func WithConfiguration(cfg model.Configuration) Option {
	return func(x *UseCase) {
		x.config = cfg.WithDefaults()
	}
}

func WithInvocation(inv *model.Invocation) Option {
	return func(x *UseCase) {
		x.invocation = inv
	}
}

// WithTranscript sets the path of the console transcript file that is archived after the run.
func WithTranscript(path string) Option {
	return func(x *UseCase) {
		x.transcript = path
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	x := &UseCase{
		clients: clients,
		config:  model.Configuration{}.WithDefaults(),
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// LastResult returns the result of the most recent scan, or nil if the scanner has not run or
// could not be started.
func (x *UseCase) LastResult() *model.ScanResult {
	return x.lastResult
}
