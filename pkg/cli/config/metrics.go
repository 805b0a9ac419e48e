package config

import (
	"log/slog"

	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/infra/metrics"
	"github.com/urfave/cli/v3"
)

type Metrics struct {
	pushgatewayURL string
	job            string
}

func (x *Metrics) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "metrics-pushgateway-url",
			Usage:       "Prometheus Pushgateway URL (metrics are not pushed if not set)",
			Category:    "Metrics",
			Destination: &x.pushgatewayURL,
			Sources:     cli.EnvVars("DEPFIX_METRICS_PUSHGATEWAY_URL"),
		},
		&cli.StringFlag{
			Name:        "metrics-job",
			Usage:       "Job label of pushed metrics",
			Category:    "Metrics",
			Value:       "depfix",
			Destination: &x.job,
			Sources:     cli.EnvVars("DEPFIX_METRICS_JOB"),
		},
	}
}

func (x *Metrics) Enabled() bool {
	return x.pushgatewayURL != ""
}

// NewClient returns nil when pushing metrics is not configured.
func (x *Metrics) NewClient() interfaces.Metrics {
	if !x.Enabled() {
		return nil
	}
	return metrics.New(x.pushgatewayURL, metrics.WithJob(x.job))
}

func (x Metrics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("pushgatewayURL", x.pushgatewayURL),
		slog.String("job", x.job),
	)
}
