//go:build !windows

package multiwait

// platformDefaultWaiter reports ErrPlatformUnsupported: WaitForMultipleObjects
// has no equivalent outside windows, so Activate cannot install a native
// adapter here. The portable engine logic (waitWith and friends) still
// builds and is still tested on every platform via a fake NativeWaiter.
func platformDefaultWaiter() (NativeWaiter, error) {
	return nil, ErrPlatformUnsupported
}
