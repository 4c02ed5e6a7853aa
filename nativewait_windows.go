//go:build windows

package multiwait

import (
	"golang.org/x/sys/windows"
)

// realWaitForMultipleObjects is the Native Wait Adapter for windows: a thin
// binding to windows.WaitForMultipleObjects, translating only the types,
// never the semantics. handles must never exceed MAXIMUM_WAIT_OBJECTS (64);
// waitWith enforces this before a NativeWaiter is ever called.
func realWaitForMultipleObjects(handles []Handle, waitAll bool, ms Millis) Status {
	whandles := make([]windows.Handle, len(handles))
	for i, h := range handles {
		whandles[i] = windows.Handle(h)
	}

	timeout := uint32(ms)
	if ms == Infinite {
		timeout = windows.INFINITE
	}

	event, err := windows.WaitForMultipleObjects(whandles, waitAll, timeout)
	if err != nil {
		logError(getGlobalLogger(), "native", "WaitForMultipleObjects failed", err)
		return StatusFailed
	}
	return Status(event)
}

// platformDefaultWaiter returns the windows NativeWaiter used by Activate.
func platformDefaultWaiter() (NativeWaiter, error) {
	return realWaitForMultipleObjects, nil
}
