//go:build windows

package main

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"

	"github.com/joeycumines/go-multiwait"
)

// run creates 70 manual-reset events (deliberately more than the
// 64-handle kernel ceiling), signals the last one on a delay, and waits
// for any of them using the chunked engine.
func run() error {
	const n = 70
	handles := make([]multiwait.Handle, n)
	wh := make([]windows.Handle, n)
	for i := range wh {
		h, err := windows.CreateEvent(nil, 1, 0, nil)
		if err != nil {
			return fmt.Errorf("create event %d: %w", i, err)
		}
		wh[i] = h
		handles[i] = multiwait.Handle(h)
	}
	defer func() {
		for _, h := range wh {
			_ = windows.CloseHandle(h)
		}
	}()

	target := n - 1
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = windows.SetEvent(wh[target])
	}()

	status, err := multiwait.WaitSeconds(handles, multiwait.Any, 5)
	if err != nil {
		return err
	}
	fmt.Printf("wait returned status=%s (expected object index %d)\n", status, target)
	return nil
}
