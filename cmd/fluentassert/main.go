// Command fluentassert shows how the assertion library renders
// string mismatches and which options it resolves from the
// environment.
package main

import (
	"errors"
	"fmt"
	"os"
)

var version = "dev"

// Exit codes.
const (
	exitSuccess  = 0
	exitMismatch = 1
	exitError    = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errMismatch) {
			return exitMismatch
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return exitError
	}
	return exitSuccess
}
