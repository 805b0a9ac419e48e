package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

// Archive configures where console transcripts are uploaded.
type Archive struct {
	bucket types.GCSBucket
	prefix string
}

func (x *Archive) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "archive-bucket",
			Usage:       "Cloud Storage bucket for console transcripts (not archived if not set)",
			Category:    "Archive",
			Destination: (*string)(&x.bucket),
			Sources:     cli.EnvVars("DEPFIX_ARCHIVE_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "archive-prefix",
			Usage:       "Object name prefix of console transcripts",
			Category:    "Archive",
			Value:       "depfix/",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("DEPFIX_ARCHIVE_PREFIX"),
		},
	}
}

func (x *Archive) Enabled() bool {
	return x.bucket != ""
}

// NewClient returns nil without error when archiving is not configured.
func (x *Archive) NewClient(ctx context.Context) (interfaces.Archive, error) {
	if !x.Enabled() {
		return nil, nil
	}

	client, err := gcs.New(ctx, x.bucket, x.prefix)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x Archive) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("bucket", x.bucket),
		slog.String("prefix", x.prefix),
	)
}
