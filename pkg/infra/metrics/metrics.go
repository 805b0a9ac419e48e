package metrics

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
)

const jobName = "depfix"

// Pusher collects run metrics in its own registry and pushes them to a Prometheus Pushgateway
// when the run ends.
type Pusher struct {
	url      string
	job      string
	registry *prometheus.Registry

	RunsTotal      *prometheus.CounterVec
	ScannerExit    prometheus.Gauge
	LastRunSeconds prometheus.Gauge

	repository string
}

var _ interfaces.Metrics = (*Pusher)(nil)

type Option func(*Pusher)

func WithJob(job string) Option {
	return func(x *Pusher) {
		x.job = job
	}
}

func New(gatewayURL string, options ...Option) *Pusher {
	x := &Pusher{
		url:      gatewayURL,
		job:      jobName,
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range options {
		opt(x)
	}

	x.RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "depfix_runs_total",
			Help: "Total number of runs by autofix mode, branch classification and outcome",
		},
		[]string{"autofix", "classification", "outcome"},
	)
	x.ScannerExit = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "depfix_scanner_exit_code",
			Help: "Exit code of the last scanner run",
		},
	)
	x.LastRunSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "depfix_last_run_timestamp_seconds",
			Help: "Unix time of the last run",
		},
	)

	x.registry.MustRegister(x.RunsTotal, x.ScannerExit, x.LastRunSeconds)
	return x
}

// Observe records a finished run.
func (x *Pusher) Observe(record *model.RunRecord) {
	x.RunsTotal.WithLabelValues(
		strconv.FormatBool(record.Autofix),
		record.Classification,
		record.Outcome,
	).Inc()
	x.ScannerExit.Set(float64(record.ExitCode))
	x.LastRunSeconds.Set(float64(record.Timestamp.Unix()))
	x.repository = record.Repository
}

// Push sends the collected metrics, grouped by repository when known.
func (x *Pusher) Push(ctx context.Context) error {
	pusher := push.New(x.url, x.job).Gatherer(x.registry)
	if x.repository != "" {
		pusher = pusher.Grouping("repository", x.repository)
	}

	if err := pusher.PushContext(ctx); err != nil {
		return goerr.Wrap(err, "failed to push metrics", goerr.V("url", x.url), goerr.V("job", x.job))
	}

	logging.From(ctx).Debug("Pushed metrics", slog.String("url", x.url), slog.String("job", x.job))
	return nil
}
