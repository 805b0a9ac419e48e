package model

import (
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/types"
)

// AutofixFlag is the scanner argument that asks the scanner to fix vulnerable dependencies in place.
const AutofixFlag = "--autofix"

// ScanResult is the outcome of one scanner invocation. ExitCode is authoritative, the other
// fields are filled only when a report URL carrying both branch and project ID was seen in the
// scanner output.
type ScanResult struct {
	ExitCode      int
	ProjectID     *uuid.UUID
	ProjectBranch string
	ReportURL     *url.URL
}

// Succeeded reports whether the scanner exited with code 0.
func (x *ScanResult) Succeeded() bool {
	return x.ExitCode == 0
}

// HasProject reports whether project information was mined from the output.
func (x *ScanResult) HasProject() bool {
	return x.ProjectID != nil && x.ProjectBranch != "" && x.ReportURL != nil
}

func (x *ScanResult) String() string {
	return fmt.Sprintf("[exitCode=%d, projectID=%v, projectBranch=%s, reportURL=%v]",
		x.ExitCode, x.ProjectID, x.ProjectBranch, x.ReportURL)
}

func (x *ScanResult) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("exitCode", x.ExitCode)}
	if x.ProjectID != nil {
		attrs = append(attrs, slog.String("projectID", x.ProjectID.String()))
	}
	if x.ProjectBranch != "" {
		attrs = append(attrs, slog.String("projectBranch", x.ProjectBranch))
	}
	if x.ReportURL != nil {
		attrs = append(attrs, slog.String("reportURL", x.ReportURL.String()))
	}
	return slog.GroupValue(attrs...)
}

// Invocation is the fully composed scanner command line:
// <Command> <RuntimeArgs...> -jar <Artifact> <ClientArgs...>
type Invocation struct {
	Command     string
	RuntimeArgs []string
	Artifact    string
	ClientArgs  []string
}

// Argv returns the command and its arguments in execution order.
func (x *Invocation) Argv() []string {
	argv := []string{x.Command}
	argv = append(argv, x.RuntimeArgs...)
	if x.Artifact != "" {
		argv = append(argv, "-jar", x.Artifact)
	}
	argv = append(argv, x.ClientArgs...)
	return argv
}

// HasAutofix reports whether the composed client arguments request autofix.
func (x *Invocation) HasAutofix() bool {
	return slices.Contains(x.ClientArgs, AutofixFlag)
}

func (x *Invocation) Validate() error {
	if x.Command == "" {
		return goerr.Wrap(types.ErrValidationFailed, "scanner command is empty")
	}
	return nil
}

const (
	nonInteractiveArg = "--interactive=false"
	workspaceProperty = "-Dcli.param.folder="
)

// NewInvocation composes the scanner command line. The workspace property is always part of
// the runtime arguments and the scanner is always started non-interactively. runtimeArgs is a
// space separated list as given by the user.
func NewInvocation(command, runtimeArgs, artifact, workspace string, clientArgs []string) *Invocation {
	inv := &Invocation{
		Command:  command,
		Artifact: artifact,
	}

	inv.RuntimeArgs = append(inv.RuntimeArgs, strings.Fields(runtimeArgs)...)
	inv.RuntimeArgs = append(inv.RuntimeArgs, workspaceProperty+workspace)

	inv.ClientArgs = append([]string{nonInteractiveArg}, clientArgs...)
	return inv
}
