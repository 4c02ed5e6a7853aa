package multiwait

import (
	"math"
	"time"
)

// Millis is a native-style timeout, in milliseconds, matching the DWORD
// dwMilliseconds parameter of WaitForMultipleObjects. Infinite is the
// sentinel "wait forever" value (mirrors Win32's INFINITE).
type Millis int32

// Infinite is the sentinel timeout meaning "wait forever".
const Infinite Millis = -1

// Duration converts m to a time.Duration. Calling it on Infinite is a
// programmer error; callers must branch on Infinite before converting.
func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

// ceilDurationToMillis converts d to whole milliseconds by ceiling, never
// flooring: a 0.3ms remainder yields 1ms, because a 0ms wait to the kernel
// means "poll, don't block". A zero or negative Duration maps to 0 or
// Infinite respectively, not through the ceiling arithmetic.
func ceilDurationToMillis(d time.Duration) Millis {
	if d < 0 {
		return Infinite
	}
	if d == 0 {
		return 0
	}
	ms := (d + time.Millisecond - 1) / time.Millisecond
	return clampMillis(int64(ms))
}

// ceilSecondsToMillis converts a fractional-second timeout, as accepted by
// WaitSeconds from higher-level callers, to whole milliseconds by
// ceiling. Negative seconds means Infinite, matching the "timeout < 0
// treated as INFINITE" invariant.
func ceilSecondsToMillis(seconds float64) Millis {
	if seconds < 0 {
		return Infinite
	}
	if seconds == 0 {
		return 0
	}
	return clampMillis(int64(math.Ceil(seconds * 1000)))
}

func clampMillis(ms int64) Millis {
	if ms > math.MaxInt32 {
		return Millis(math.MaxInt32)
	}
	if ms < 0 {
		return 0
	}
	return Millis(ms)
}

func minMillis(a, b Millis) Millis {
	if a < b {
		return a
	}
	return b
}
