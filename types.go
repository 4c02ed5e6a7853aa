package multiwait

import "fmt"

// Handle is an opaque reference to a Windows waitable kernel object (an
// event, mutex, process, thread, and so on). multiwait never creates or
// destroys a Handle; every value is borrowed from the caller for the
// duration of a single Wait call.
type Handle uintptr

// WaitMode documents the boolean wait_all parameter accepted by Wait and
// WaitSeconds: Any returns as soon as one handle is signaled, All returns
// once every handle is signaled.
type WaitMode = bool

const (
	// Any selects "return as soon as one handle is signaled" semantics.
	Any WaitMode = false
	// All selects "return once every handle is signaled" semantics.
	All WaitMode = true
)

// Status is a native-encoded wait result, compatible in value with the
// WAIT_OBJECT_0 / WAIT_ABANDONED_0 / WAIT_TIMEOUT / WAIT_FAILED family
// returned by WaitForMultipleObjects. For a Wait call over N handles, the
// index embedded in an object/abandoned status is always relative to the
// caller's handle list, never to a chunk (see splitChunks).
type Status uint32

const (
	// StatusObject0 is the base for "handle i was signaled": the result is
	// StatusObject0 + i.
	StatusObject0 Status = 0x00000000
	// StatusAbandoned0 is the base for "mutex i was abandoned": the result
	// is StatusAbandoned0 + i.
	StatusAbandoned0 Status = 0x00000080
	// StatusTimeout indicates the deadline was reached with nothing
	// signaled.
	StatusTimeout Status = 0x00000102
	// StatusFailed indicates the underlying OS call failed.
	StatusFailed Status = 0xFFFFFFFF
)

// ObjectIndex returns the status for "handle i was signaled", rebased to
// whatever index space the caller supplies (a chunk base plus an
// in-chunk offset, typically).
func ObjectIndex(i int) Status { return StatusObject0 + Status(i) }

// AbandonedIndex returns the status for "mutex i was abandoned", rebased
// to whatever index space the caller supplies.
func AbandonedIndex(i int) Status { return StatusAbandoned0 + Status(i) }

// String renders recognized sentinel statuses by name; anything else
// prints as a bare numeric value, since for N > 64 a Status is a
// synthesized, non-native value whose ranges can legitimately extend past
// what a real WaitForMultipleObjects call could ever return.
func (s Status) String() string {
	switch s {
	case StatusTimeout:
		return "WAIT_TIMEOUT"
	case StatusFailed:
		return "WAIT_FAILED"
	default:
		return fmt.Sprintf("Status(%d)", uint32(s))
	}
}

// decodeObjectIndex reports whether s is a WAIT_OBJECT_0+i result from a
// single native call over at most maxFast handles, returning i.
func decodeObjectIndex(s Status, maxFast int) (int, bool) {
	if s >= StatusObject0 && s < StatusObject0+Status(maxFast) {
		return int(s - StatusObject0), true
	}
	return 0, false
}

// decodeAbandonedIndex reports whether s is a WAIT_ABANDONED_0+i result
// from a single native call over at most maxFast handles, returning i.
func decodeAbandonedIndex(s Status, maxFast int) (int, bool) {
	if s >= StatusAbandoned0 && s < StatusAbandoned0+Status(maxFast) {
		return int(s - StatusAbandoned0), true
	}
	return 0, false
}
