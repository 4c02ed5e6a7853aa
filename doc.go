// Package multiwait lifts the 64-handle ceiling of Windows'
// WaitForMultipleObjects by interposing a chunked wait engine: a drop-in
// replacement that partitions an arbitrarily long handle list into
// batches of at most 63, dispatches each batch to the real kernel primitive, and
// synthesizes a single result indistinguishable from a one-shot call.
//
// # Architecture
//
// Three pieces, leaf-first:
//
//   - The native wait adapter ([NativeWaiter]) is a thin, unretrying binding
//     to WaitForMultipleObjects, accepting at most 64 handles.
//   - The chunked wait engine (unexported; reached via [Wait] and
//     [WaitSeconds]) implements the same contract over any N, by splitting
//     handles into chunks of at most 63 and orchestrating one or more
//     native calls per logical wait.
//   - The install controller ([Activate]) is a process-wide, idempotent,
//     one-shot installer: it captures the platform's native adapter,
//     raises [MaxWorkers] from its pre-activation default to
//     [TargetMaxWorkers], and arms the pre-flight guard that makes [Wait]
//     refuse to run before activation.
//
// # Platform Support
//
// WaitForMultipleObjects exists only on Windows; [Activate] fails with
// [ErrPlatformUnsupported] on every other GOOS. There is no cross-platform
// wait abstraction here by design — see the package's specification notes
// for why that is a deliberate non-goal.
//
// # Thread Safety
//
// [Activate] is safe to call concurrently from multiple goroutines;
// concurrent calls observe the same final state and a second (or
// subsequent) call is a no-op that returns success. [Wait] and
// [WaitSeconds] are reentrant and stateless per call — all working state
// is call-local, so concurrent waits never interfere with each other. The
// global install state is written exactly once per process, behind a
// mutex; reads after that point require no synchronization.
//
// # Usage
//
//	if _, err := multiwait.Activate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	status, err := multiwait.WaitSeconds(handles, multiwait.Any, 5)
//	if err != nil {
//	    log.Fatal(err) // only returned for the pre-activation guard
//	}
//	switch {
//	case status == multiwait.StatusTimeout:
//	    // deadline reached, nothing signaled
//	case status == multiwait.StatusFailed:
//	    // underlying OS error
//	default:
//	    // status encodes WAIT_OBJECT_0+i / WAIT_ABANDONED_0+i, i rebased
//	    // to the caller's handle list
//	}
package multiwait
