package cli

// consoleNotifier prints coordinator notifications to the terminal. It goes
// through printlnFn so tests can capture the output.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { printlnFn(msg) }
func (consoleNotifier) Info(msg string)    { printlnFn(msg) }
func (consoleNotifier) Error(msg string)   { printlnFn("error: " + msg) }
