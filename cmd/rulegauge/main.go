package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess        = 0 // All units met the requirement
	ExitBelowThreshold = 1 // One or more units fell below the required maturity
	ExitError          = 2 // Configuration or runtime error
)

// MaturityShortfallError indicates that diagnostics ran successfully, but
// one or more units fell below the required maturity tier.
type MaturityShortfallError struct {
	Message string
}

func (e *MaturityShortfallError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var shortfallErr *MaturityShortfallError
		if errors.As(err, &shortfallErr) {
			os.Exit(ExitBelowThreshold)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
