package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	ErrNotOnBranch    = goerr.New("HEAD is not on a branch")
	ErrPullRequestAPI = goerr.New("pull request API error")
	ErrRetryExhausted = goerr.New("retry count exhausted")
)
