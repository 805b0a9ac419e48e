package model

import "time"

type PullRequestState string

const (
	PullRequestOpen       PullRequestState = "OPEN"
	PullRequestMerged     PullRequestState = "MERGED"
	PullRequestDeclined   PullRequestState = "DECLINED"
	PullRequestSuperseded PullRequestState = "SUPERSEDED"
)

const (
	PullRequestTitle = "[depfix] Fix for vulnerable dependencies"
	PullRequestBody  = "Dependencies in project configuration file has been fixed"
)

// PullRequest is the subset of a hosting provider's pull request used to detect duplicates.
type PullRequest struct {
	ID           string
	SourceBranch string
	State        PullRequestState
	CreatedOn    time.Time
}

// Console messages shared by pull request gateways.
const (
	MsgFoundPullRequest    = "[depfix] Warning: Found a pull request (id: %s) for org: %s, repo: %s, branch: %s"
	MsgPullRequestExists   = "[depfix] Warning: Pull request already exists for this branch, no new pull request will be created. Fixed already generated for current branch (commit point)."
	MsgFinishedPullRequest = "[depfix] Finished creating pull request for org: %s, repo: %s, branch: %s."
	MsgSkippingPullRequest = "[depfix] Warning: Skipping pull request creation for branch %s, credentials are not configured."
)
