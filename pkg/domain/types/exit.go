package types

const (
	// ExitSuccess is returned when the scanner or the autofix run succeeded.
	ExitSuccess = 0

	// ExitLaunchFailure is returned when the scanner process could not be started or its
	// output could not be read, and when an autofix run ends in a handled failure. Scanner's
	// own non-zero codes are passed through untouched.
	ExitLaunchFailure = -1
)

// ExitFatal is returned when a run is aborted by an unrecoverable error such as a failed push or
// pull request creation.
const ExitFatal = 1
