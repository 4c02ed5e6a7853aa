package multiwait

import "time"

// NativeWaiter is the Native Wait Adapter contract: a thin, unretrying
// binding to the kernel's one-shot multi-wait primitive. |handles| must
// never exceed 64 (the engine enforces this; see fastPathMax/chunkMax).
// Implementations never translate failures into a Go error — NativeFailure
// is represented purely as StatusFailed, so the replaced symbol stays
// drop-in for callers that only switch on status codes.
type NativeWaiter func(handles []Handle, waitAll bool, ms Millis) Status

// chunk is a contiguous slice of a HandleList, carrying the base offset
// needed to rebase a chunk-relative native result back to the caller's
// index space.
type chunk struct {
	handles []Handle
	base    int
}

// splitChunks partitions handles into chunks of at most size, in order,
// retaining each chunk's base offset. Chunk k covers indices
// [k*size, min((k+1)*size, N)).
func splitChunks(handles []Handle, size int) []chunk {
	n := len(handles)
	if n == 0 {
		return nil
	}
	chunks := make([]chunk, 0, (n+size-1)/size)
	for base := 0; base < n; base += size {
		end := base + size
		if end > n {
			end = n
		}
		chunks = append(chunks, chunk{handles: handles[base:end], base: base})
	}
	return chunks
}

// waitWith implements the Chunked Wait Engine over nw, using cfg's
// chunk-size and poll-interval tuning. It is the portion of Wait/
// WaitSeconds that is reachable without going through Activate, so it can
// be exercised with a fake NativeWaiter on any platform.
func waitWith(nw NativeWaiter, cfg engineConfig, handles []Handle, waitAll bool, ms Millis) Status {
	n := len(handles)
	if n == 0 {
		return waitZero(waitAll, ms)
	}
	if n <= cfg.fastPathMax() {
		// Fast path: N already fits in a single native call, so the
		// native result is already relative to the caller's list (base
		// 0). This preserves native semantics byte-for-byte.
		return nw(handles, waitAll, ms)
	}
	chunks := splitChunks(handles, cfg.chunkSize)
	if waitAll {
		return waitAllChunks(nw, chunks, ms, cfg.log())
	}
	return waitAnyChunks(nw, chunks, ms, cfg)
}

// waitZero resolves the N==0 case without ever calling the native
// adapter, since a zero-handle call to the real kernel primitive is
// documented as invalid. ALL over zero handles is vacuously true (there is
// nothing left unsignaled), so it succeeds immediately; ANY over zero
// handles can never be satisfied, so it runs out the clock and reports a
// timeout, without ever crashing.
func waitZero(waitAll bool, ms Millis) Status {
	if waitAll {
		return StatusObject0
	}
	switch {
	case ms == 0:
		return StatusTimeout
	case ms == Infinite:
		// Nothing can ever signal an empty handle list; by construction
		// this blocks forever, the same way a real ANY wait over handles
		// that never fire would. Deliberately unreachable from this
		// package's own tests (see engine_test.go) to avoid hanging the
		// suite.
		select {}
	default:
		time.Sleep(ms.Duration())
		return StatusTimeout
	}
}

// waitAnyChunks implements the ANY slow path: repeated round-robin polling
// sweeps across chunks, returning as soon as any chunk reports a signal,
// so that the shim never blocks on one chunk while another chunk holds
// the handle that actually signaled.
func waitAnyChunks(nw NativeWaiter, chunks []chunk, ms Millis, cfg engineConfig) Status {
	hasDeadline := ms != Infinite
	var deadline time.Time
	if hasDeadline {
		deadline = time.Now().Add(ms.Duration())
	}

	firstSweep := true
	for {
		for _, c := range chunks {
			var sliceMs Millis
			if hasDeadline {
				remaining := time.Until(deadline)
				if remaining <= 0 {
					return StatusTimeout
				}
				remainingMs := ceilDurationToMillis(remaining)
				if firstSweep {
					sliceMs = minMillis(ceilDurationToMillis(cfg.pollInterval), remainingMs)
				} else {
					perChunk := ceilDurationToMillis(remaining / time.Duration(len(chunks)))
					sliceMs = minMillis(perChunk, remainingMs)
				}
			} else {
				sliceMs = ceilDurationToMillis(cfg.pollInterval)
			}

			status := nw(c.handles, false, sliceMs)
			if idx, ok := decodeObjectIndex(status, len(c.handles)); ok {
				return ObjectIndex(c.base + idx)
			}
			if idx, ok := decodeAbandonedIndex(status, len(c.handles)); ok {
				return AbandonedIndex(c.base + idx)
			}
			if status == StatusFailed {
				logError(cfg.log(), "engine", "native wait failed during ANY sweep", nil)
				return StatusFailed
			}
			// StatusTimeout: this chunk had nothing signaled within its
			// slice; move on to the next chunk in the sweep.
			logWarn(cfg.log(), "engine", "native wait timed out mid-sweep, advancing to next chunk")
		}
		firstSweep = false
		if hasDeadline && time.Until(deadline) <= 0 {
			return StatusTimeout
		}
	}
}

// waitAllChunks implements the ALL slow path: one sequential,
// deadline-bounded native call per chunk. Abandonment from any chunk must
// be reported, with the first one encountered in order winning; the
// abandoned index is rebased by the chunk's base offset before being
// returned, which is the single most bug-prone step in the whole engine.
func waitAllChunks(nw NativeWaiter, chunks []chunk, ms Millis, logger Logger) Status {
	hasDeadline := ms != Infinite
	var deadline time.Time
	if hasDeadline {
		deadline = time.Now().Add(ms.Duration())
	}

	sawAbandoned := false
	var firstAbandoned Status

	for _, c := range chunks {
		callMs := ms
		if hasDeadline {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return StatusTimeout
			}
			callMs = ceilDurationToMillis(remaining)
		}

		status := nw(c.handles, true, callMs)
		switch {
		case status == StatusFailed:
			logError(logger, "engine", "native wait failed during ALL pass", nil)
			return StatusFailed
		case status == StatusTimeout:
			return StatusTimeout
		}

		if idx, ok := decodeAbandonedIndex(status, len(c.handles)); ok {
			if !sawAbandoned {
				sawAbandoned = true
				firstAbandoned = AbandonedIndex(c.base + idx)
			}
			continue
		}
		// Otherwise this chunk reported success; proceed to the next one.
	}

	if sawAbandoned {
		return firstAbandoned
	}
	return StatusObject0
}
