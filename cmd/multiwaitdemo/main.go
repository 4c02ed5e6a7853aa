// Command multiwaitdemo activates the chunked wait engine and runs a
// demonstration wait over a handful of manually created events, printing
// the resolved status. It exists to give the windows native adapter a
// real executable entry point beyond the test suite.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joeycumines/go-multiwait"
)

func main() {
	multiwait.SetLogger(multiwait.NewWriterLogger(multiwait.LevelDebug, os.Stderr))

	_, err := multiwait.Activate()
	switch {
	case errors.Is(err, multiwait.ErrPlatformUnsupported):
		// fall through to run, which reports the platform limitation.
	case err != nil:
		log.Fatalf("activate: %v", err)
	default:
		fmt.Printf("multiwait activated, MaxWorkers=%d\n", multiwait.MaxWorkers())
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}
