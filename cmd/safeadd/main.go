// Command safeadd reads three integers from standard input, adds them with
// overflow detection and prints the sum.
//
// Usage:
//
//	echo "1 2 3" | safeadd
//	echo "2147483647 1 0" | safeadd --trace
//
// The sum is printed even when it overflowed, in which case it is the
// clamped int32 maximum and the exit status is 3.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitSuccess      = 0
	exitFailure      = 1
	exitUsage        = 2
	exitDataOverflow = 3
)

// exitError carries the process exit status for an error returned from the
// command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the root command and maps its error to an exit status.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.code != exitDataOverflow {
			fmt.Fprintf(stderr, "safeadd: %v\n", exitErr.err)
		}
		return exitErr.code
	}

	fmt.Fprintf(stderr, "safeadd: %v\n", err)
	return exitFailure
}

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}
