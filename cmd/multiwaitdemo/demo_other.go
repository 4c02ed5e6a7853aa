//go:build !windows

package main

import "fmt"

// run reports that the demo has nothing to do here: WaitForMultipleObjects
// has no equivalent outside windows, and Activate has already failed by
// the time run would be called.
func run() error {
	fmt.Println("multiwaitdemo: no native wait primitive on this platform")
	return nil
}
