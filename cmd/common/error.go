package common

import (
	"fmt"
	"os"
)

// HandleError reports err on stderr and terminates the process with a
// non-zero status. A nil err passes through so callers can wrap a
// command's Execute directly.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)

	return err
}
