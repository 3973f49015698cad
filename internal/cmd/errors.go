package cmd

import "fmt"

// ExitCodeError carries a specific process exit status out of a command.
type ExitCodeError struct {
	Code int
	Msg  string
}

func (e *ExitCodeError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Msg
}

// exitNotTriggered is returned by run when the descriptor's trigger is not met.
const exitNotTriggered = 3
