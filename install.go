package multiwait

import (
	"sync"
	"sync/atomic"
)

// defaultMaxWorkers is the worker ceiling a pool should assume before
// Activate has run: MAXIMUM_WAIT_OBJECTS (64) minus headroom for a pool's
// own control handles, matching the conservative value a caller must use
// against the bare kernel primitive.
const defaultMaxWorkers = 61

// TargetMaxWorkers is the worker ceiling a pool may assume once Activate
// has installed the chunked engine: HARD_LIMIT (510, the practical ceiling
// documented for this shim) minus RESERVED (2, slots held back for the
// pool's own control handles).
const TargetMaxWorkers = 508

// Version is this package's semver, part of the public surface the pool
// layer and tests link against alongside Activate and MaxWorkers.
const Version = "1.0.0"

// installState is the process-wide record written exactly once by
// Activate. It is never mutated after construction; every field is safe
// to read concurrently without additional synchronization once published.
type installState struct {
	waiter NativeWaiter
	cfg    engineConfig
}

var (
	// installMu serializes writers (Activate, resetForTest). Readers never
	// take it; they load the atomic pointer instead.
	installMu  sync.Mutex
	installed  atomic.Pointer[installState]
	maxWorkers atomic.Int32
)

func init() {
	maxWorkers.Store(defaultMaxWorkers)
}

// Activate installs the Chunked Wait Engine as the process's Wait/
// WaitSeconds backend, using opts to tune poll interval, chunk size, and
// logger. It is idempotent: the first call wins, installs the native
// adapter for the current platform, and raises MaxWorkers; every
// subsequent call is a no-op that still reports true and leaves the
// already-installed configuration untouched. Callers that need the later opts
// applied must restart the process, mirroring the original shim's
// process-lifetime install semantics.
//
// Activate returns an error on any platform where a native adapter could
// not be constructed (see ErrPlatformUnsupported), and on such platforms
// MaxWorkers remains at its conservative default.
func Activate(opts ...Option) (bool, error) {
	installMu.Lock()
	defer installMu.Unlock()

	if installed.Load() != nil {
		return true, nil
	}

	waiter, err := platformDefaultWaiter()
	if err != nil {
		return false, err
	}

	cfg := resolveOptions(opts)
	installed.Store(&installState{waiter: waiter, cfg: cfg})
	maxWorkers.Store(TargetMaxWorkers)
	logDebug(cfg.log(), "install", "activated chunked wait engine")
	return true, nil
}

// MaxWorkers returns the worker-count ceiling a caller should enforce
// before handing a handle list to Wait: the conservative pre-Activate
// default, or the raised ceiling once Activate has succeeded.
func MaxWorkers() int {
	return int(maxWorkers.Load())
}

// currentAdapter returns the installed native waiter and its
// configuration, or ErrNotActivated if Activate has not yet run.
func currentAdapter() (NativeWaiter, engineConfig, error) {
	st := installed.Load()
	if st == nil {
		return nil, engineConfig{}, ErrNotActivated
	}
	return st.waiter, st.cfg, nil
}

// hasOriginal reports whether Activate has installed a native adapter. It
// exists for tests that need to assert on install state without racing
// Activate's own idempotency check.
func hasOriginal() bool {
	return installed.Load() != nil
}

// resetForTest clears the global install state and worker ceiling,
// restoring a fresh process's initial conditions. It is unexported: only
// this package's own tests may call it, since un-installing in a real
// process would violate the "install once, for the process lifetime"
// contract Activate otherwise guarantees.
func resetForTest() {
	installMu.Lock()
	defer installMu.Unlock()
	installed.Store(nil)
	maxWorkers.Store(defaultMaxWorkers)
}

// Wait blocks until any (waitAll == Any) or all (waitAll == All) of
// handles are signaled, or ms elapses, delegating to the Chunked Wait
// Engine installed by Activate. It returns ErrNotActivated if Activate has
// not yet run.
func Wait(handles []Handle, waitAll WaitMode, ms Millis) (Status, error) {
	waiter, cfg, err := currentAdapter()
	if err != nil {
		return 0, err
	}
	return waitWith(waiter, cfg, handles, waitAll, ms), nil
}

// WaitSeconds is Wait with a fractional-second timeout, ceiling-converted
// to whole milliseconds (see ceilSecondsToMillis): a negative value means
// Infinite, and any positive sub-millisecond remainder rounds up rather
// than down, so a caller's "wait a little" never collapses to "don't
// wait at all".
func WaitSeconds(handles []Handle, waitAll WaitMode, seconds float64) (Status, error) {
	return Wait(handles, waitAll, ceilSecondsToMillis(seconds))
}
