package model

import (
	"time"

	"github.com/secmon-lab/depfix/pkg/domain/types"
)

// RunRecord is the audit record of one run exported to BigQuery.
type RunRecord struct {
	ID              types.RunID `bigquery:"id" json:"id"`
	Timestamp       time.Time   `bigquery:"timestamp" json:"timestamp"`
	Repository      string      `bigquery:"repository" json:"repository"`
	Branch          string      `bigquery:"branch" json:"branch"`
	Autofix         bool        `bigquery:"autofix" json:"autofix"`
	Classification  string      `bigquery:"classification" json:"classification"`
	ExitCode        int         `bigquery:"exit_code" json:"exit_code"`
	ScannerExitCode int         `bigquery:"scanner_exit_code" json:"scanner_exit_code"`
	Outcome         string      `bigquery:"outcome" json:"outcome"`
	ProjectID       string      `bigquery:"project_id" json:"project_id"`
	ProjectBranch   string      `bigquery:"project_branch" json:"project_branch"`
	ReportURL       string      `bigquery:"report_url" json:"report_url"`
}

// RunRawRecord carries the timestamp as epoch microseconds, the form accepted by the storage write API.
type RunRawRecord struct {
	RunRecord
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}

func NewRunRawRecord(record RunRecord) *RunRawRecord {
	return &RunRawRecord{
		RunRecord: record,
		Timestamp: record.Timestamp.UnixMicro(),
	}
}

// SetScanResult copies the scanner exit code and the mined report data of result, if any.
func (x *RunRecord) SetScanResult(result *ScanResult) {
	if result == nil {
		return
	}
	x.ScannerExitCode = result.ExitCode
	if result.ProjectID != nil {
		x.ProjectID = result.ProjectID.String()
	}
	x.ProjectBranch = result.ProjectBranch
	if result.ReportURL != nil {
		x.ReportURL = result.ReportURL.String()
	}
}
