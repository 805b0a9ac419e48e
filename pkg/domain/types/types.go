package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	APIToken             string
	BitbucketAppPassword string
	GitHubToken          string
	GitHubAppID          int64
	GitHubAppInstallID   int64
	GitHubAppPrivateKey  string
	RunID                string
)

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string {
	return string(x)
}

func (x APIToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x APIToken) String() string {
	return "***********"
}

func (x BitbucketAppPassword) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x BitbucketAppPassword) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

type (
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
	GCSBucket       string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
func (x GCSBucket) String() string       { return string(x) }
