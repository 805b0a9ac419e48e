package cli

import "fmt"

// ExitStatus carries a non-zero exit status of a completed run. It is not a failure of the
// tool itself, so it is neither logged nor reported.
type ExitStatus struct {
	code int
}

func (x *ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", x.code)
}

// Status returns the process exit status.
func (x *ExitStatus) Status() int {
	return x.code
}
