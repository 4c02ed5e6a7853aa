package multiwait

import "errors"

var (
	// ErrNotActivated is returned by Wait and WaitSeconds when called
	// before Activate has populated the global install state. It cannot be
	// expressed as a Status, since a caller checking only status codes
	// would otherwise silently treat a misconfigured process as a normal
	// timeout or failure.
	ErrNotActivated = errors.New("multiwait: Wait called before Activate; call multiwait.Activate() during process startup")

	// ErrPlatformUnsupported is returned by Activate on any GOOS other
	// than windows, where WaitForMultipleObjects does not exist.
	ErrPlatformUnsupported = errors.New("multiwait: Activate is only supported on windows")
)
