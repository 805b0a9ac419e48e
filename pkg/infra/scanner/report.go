package scanner

import (
	"context"
	"log/slog"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
)

// ReportParser mines report URLs from scanner output lines. A URL is accepted only when its
// query has both a branch and a pid parameter; the latest accepted URL replaces earlier ones.
type ReportParser struct {
	marker string
}

func NewReportParser(domainMarker string) *ReportParser {
	return &ReportParser{marker: domainMarker}
}

// Parse updates result with the report URL found in line, if any. Malformed URLs are logged
// and ignored.
func (x *ReportParser) Parse(ctx context.Context, line string, result *model.ScanResult) {
	if !strings.Contains(line, "http") || !strings.Contains(line, x.marker) {
		return
	}

	for _, token := range strings.Fields(line) {
		if !strings.HasPrefix(token, "http") {
			continue
		}

		reportURL, err := url.Parse(token)
		if err != nil {
			logging.From(ctx).Warn("Fail to parse report URL", slog.String("token", token), slog.Any("error", err))
			continue
		}

		branch, pid := findProjectParams(reportURL.Query())
		if branch == "" || pid == "" {
			continue
		}

		projectID, err := uuid.Parse(pid)
		if err != nil {
			logging.From(ctx).Warn("Invalid project ID in report URL", slog.String("url", token), slog.Any("error", err))
			continue
		}

		result.ProjectBranch = branch
		result.ProjectID = &projectID
		result.ReportURL = reportURL
	}
}

// findProjectParams looks up branch and pid ignoring the case of parameter names.
func findProjectParams(query url.Values) (branch, pid string) {
	for _, key := range slices.Sorted(maps.Keys(query)) {
		values := query[key]
		if len(values) == 0 {
			continue
		}

		switch strings.ToLower(key) {
		case "branch":
			branch = values[len(values)-1]
		case "pid":
			pid = values[len(values)-1]
		}
	}
	return branch, pid
}
