package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/depfix/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
	gt.True(t, flagNames["sentry-release"])
}

func TestSentryConfigureWithoutDSN(t *testing.T) {
	var sentryConfig config.Sentry
	parse(t, sentryConfig.Flags(), "--sentry-dsn", "")

	flush, err := sentryConfig.Configure(context.Background())
	gt.NoError(t, err)
	flush()
}
