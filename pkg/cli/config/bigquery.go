package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/infra/bq"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID       types.GoogleProjectID
	datasetID       types.BQDatasetID
	tableID         types.BQTableID
	credentialsFile string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID (run records are not exported if not set)",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("DEPFIX_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("DEPFIX_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Value:       "runs",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("DEPFIX_BIGQUERY_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-credentials",
			Usage:       "Path to a service account key file (application default credentials if not set)",
			Category:    "BigQuery",
			Destination: &x.credentialsFile,
			Sources:     cli.EnvVars("DEPFIX_BIGQUERY_CREDENTIALS"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != "" && x.datasetID != ""
}

// NewClient returns nil without error when the export is not configured.
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var options []option.ClientOption
	if x.credentialsFile != "" {
		options = append(options, option.WithCredentialsFile(x.credentialsFile))
	}

	client, err := bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
		slog.Bool("credentials", x.credentialsFile != ""),
	)
}
