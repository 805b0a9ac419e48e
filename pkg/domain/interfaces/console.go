package interfaces

// Console is the user visible output of the pipeline step.
type Console interface {
	Println(msg string)
	Flush() error
}
