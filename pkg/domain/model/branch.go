package model

import (
	"regexp"
	"strings"

	"github.com/secmon-lab/depfix/pkg/domain/types"
)

// BranchClassification describes how the current branch relates to its deterministic fixed
// branch. It is computed from version control state on every run and never stored.
type BranchClassification int

const (
	// NotYetFixed means no fixed branch exists for the current branch content.
	NotYetFixed BranchClassification = iota
	// AlreadyFixedByUs means the current branch is itself a fixed branch created by a previous run.
	AlreadyFixedByUs
	// FixedBranchAlreadyExistsLocally means the fixed branch exists locally but is not checked out.
	FixedBranchAlreadyExistsLocally
)

func (x BranchClassification) String() string {
	switch x {
	case NotYetFixed:
		return "not_yet_fixed"
	case AlreadyFixedByUs:
		return "already_fixed_by_us"
	case FixedBranchAlreadyExistsLocally:
		return "fixed_branch_already_exists_locally"
	default:
		return "unknown"
	}
}

const (
	DefaultFixedBranchPrefix = "fixed-by-depfix-"
	shortHashLength          = 7
)

var ptnShortHash = regexp.MustCompile(`^[0-9a-f]{7}$`)

// FixedBranchName returns the deterministic fixed branch name for a branch whose HEAD is
// commitHash. A branch that already carries a well-formed fixed branch name maps to itself.
func FixedBranchName(prefix, currentBranch, commitHash string) string {
	if IsFixedBranchName(prefix, currentBranch) {
		return currentBranch
	}

	short := strings.ToLower(commitHash)
	if len(short) > shortHashLength {
		short = short[:shortHashLength]
	}
	return prefix + short
}

// IsFixedBranchName reports whether name has the shape <prefix><7 hex digits>.
func IsFixedBranchName(prefix, name string) bool {
	if prefix == "" || !strings.HasPrefix(name, prefix) {
		return false
	}
	return ptnShortHash.MatchString(strings.TrimPrefix(name, prefix))
}

// Outcome is the two valued result of a run.
type Outcome bool

const (
	OutcomeSuccess Outcome = true
	OutcomeFailure Outcome = false
)

func (x Outcome) String() string {
	if x {
		return "success"
	}
	return "failure"
}

// ExitCode converts the outcome to a process exit status.
func (x Outcome) ExitCode() int {
	if x {
		return types.ExitSuccess
	}
	return types.ExitLaunchFailure
}
