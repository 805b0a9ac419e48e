package model_test

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/depfix/pkg/domain/model"
)

func TestNewInvocation(t *testing.T) {
	inv := model.NewInvocation("java", "-Xmx1g  -Dfoo=bar", "/opt/scanner.jar", "/work", []string{"--autofix", "--tags=ci"})

	gt.V(t, inv.Argv()).Equal([]string{
		"java",
		"-Xmx1g",
		"-Dfoo=bar",
		"-Dcli.param.folder=/work",
		"-jar",
		"/opt/scanner.jar",
		"--interactive=false",
		"--autofix",
		"--tags=ci",
	})
	gt.True(t, inv.HasAutofix())
	gt.NoError(t, inv.Validate())
}

func TestInvocationHasAutofix(t *testing.T) {
	t.Run("not requested", func(t *testing.T) {
		inv := model.NewInvocation("java", "", "scanner.jar", "/work", []string{"--tags=ci"})
		gt.False(t, inv.HasAutofix())
	})

	t.Run("only exact argument counts", func(t *testing.T) {
		inv := model.NewInvocation("java", "", "scanner.jar", "/work", []string{"--autofix=false"})
		gt.False(t, inv.HasAutofix())
	})

	t.Run("runtime arguments are ignored", func(t *testing.T) {
		inv := model.NewInvocation("java", "--autofix", "scanner.jar", "/work", nil)
		gt.False(t, inv.HasAutofix())
	})
}

func TestInvocationWithoutArtifact(t *testing.T) {
	inv := &model.Invocation{Command: "/bin/sh", RuntimeArgs: []string{"scan.sh"}, ClientArgs: []string{"--autofix"}}
	gt.V(t, inv.Argv()).Equal([]string{"/bin/sh", "scan.sh", "--autofix"})
	gt.NoError(t, inv.Validate())

	gt.Error(t, (&model.Invocation{}).Validate())
}

func TestScanResult(t *testing.T) {
	t.Run("exit code only", func(t *testing.T) {
		r := &model.ScanResult{ExitCode: 2}
		gt.False(t, r.Succeeded())
		gt.False(t, r.HasProject())
	})

	t.Run("with project", func(t *testing.T) {
		pid := uuid.New()
		u, err := url.Parse("https://www.depfix.io/projects/?pid=" + pid.String() + "&branch=main")
		gt.NoError(t, err)

		r := &model.ScanResult{ProjectID: &pid, ProjectBranch: "main", ReportURL: u}
		gt.True(t, r.Succeeded())
		gt.True(t, r.HasProject())
	})
}

func TestRunRecordSetScanResult(t *testing.T) {
	pid := uuid.New()
	u, err := url.Parse("https://www.depfix.io/projects/?pid=" + pid.String() + "&branch=main")
	gt.NoError(t, err)

	var record model.RunRecord
	record.SetScanResult(&model.ScanResult{ExitCode: 3, ProjectID: &pid, ProjectBranch: "main", ReportURL: u})
	gt.V(t, record.ScannerExitCode).Equal(3)
	gt.V(t, record.ProjectID).Equal(pid.String())
	gt.V(t, record.ProjectBranch).Equal("main")
	gt.V(t, record.ReportURL).Equal(u.String())

	record.SetScanResult(nil)
	gt.V(t, record.ScannerExitCode).Equal(3)

	raw := model.NewRunRawRecord(record)
	gt.V(t, raw.Timestamp).Equal(record.Timestamp.UnixMicro())
}
