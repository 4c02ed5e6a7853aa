package multiwait

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNative simulates a kernel WaitForMultipleObjects call against a
// persistent (manual-reset-like) signaled/abandoned state, so chunked
// sweeps can be exercised deterministically without real handles or a
// windows build.
type fakeNative struct {
	signaled  map[Handle]bool
	abandoned map[Handle]bool
	calls     int
}

func newFakeNative() *fakeNative {
	return &fakeNative{signaled: map[Handle]bool{}, abandoned: map[Handle]bool{}}
}

func (f *fakeNative) wait(handles []Handle, waitAll bool, ms Millis) Status {
	f.calls++
	for i, h := range handles {
		if f.abandoned[h] {
			return AbandonedIndex(i)
		}
	}
	if waitAll {
		for _, h := range handles {
			if !f.signaled[h] {
				return StatusTimeout
			}
		}
		return StatusObject0
	}
	for i, h := range handles {
		if f.signaled[h] {
			return ObjectIndex(i)
		}
	}
	return StatusTimeout
}

func makeHandles(n int) []Handle {
	hs := make([]Handle, n)
	for i := range hs {
		hs[i] = Handle(i + 1)
	}
	return hs
}

// S1: fast-path equivalence — 10 events, signal #7, ANY.
func TestWaitWith_FastPathAny(t *testing.T) {
	handles := makeHandles(10)
	nw := newFakeNative()
	nw.signaled[handles[7]] = true

	cfg := resolveOptions(nil)
	status := waitWith(nw.wait, cfg, handles, Any, 1000)

	assert.Equal(t, ObjectIndex(7), status)
	assert.Equal(t, 1, nw.calls, "fast path makes exactly one native call")
}

// S2: exact boundary — 64 events, none signaled, confirms 64 still routes
// through the fast path rather than being chunked.
func TestWaitWith_FastPathBoundary(t *testing.T) {
	handles := makeHandles(64)
	nw := newFakeNative()

	cfg := resolveOptions(nil)
	status := waitWith(nw.wait, cfg, handles, Any, 10)

	assert.Equal(t, StatusTimeout, status)
	assert.Equal(t, 1, nw.calls)
}

// S3: chunked ANY — 200 events, signal index 137, expect rebased index.
func TestWaitWith_ChunkedAny(t *testing.T) {
	handles := makeHandles(200)
	nw := newFakeNative()
	nw.signaled[handles[137]] = true

	cfg := resolveOptions([]Option{WithPollInterval(time.Millisecond)})
	status := waitWith(nw.wait, cfg, handles, Any, 5000)

	assert.Equal(t, ObjectIndex(137), status)
}

// S4: chunked ALL with abandonment — 150 handles, abandon global index 80,
// everything else signaled. Exercises the chunk-base rebasing for
// WAIT_ABANDONED_0.
func TestWaitWith_ChunkedAllAbandoned(t *testing.T) {
	handles := makeHandles(150)
	nw := newFakeNative()
	for _, h := range handles {
		nw.signaled[h] = true
	}
	nw.abandoned[handles[80]] = true

	cfg := resolveOptions(nil)
	status := waitWith(nw.wait, cfg, handles, All, 5000)

	assert.Equal(t, AbandonedIndex(80), status)
}

// S5: empty list, ANY, zero timeout — must time out without ever calling
// the native adapter.
func TestWaitWith_EmptyAnyZeroTimeout(t *testing.T) {
	nw := newFakeNative()
	cfg := resolveOptions(nil)

	status := waitWith(nw.wait, cfg, nil, Any, 0)

	assert.Equal(t, StatusTimeout, status)
	assert.Equal(t, 0, nw.calls)
}

// Empty list, ALL, any timeout — vacuously successful, no native call.
func TestWaitWith_EmptyAllIsVacuous(t *testing.T) {
	nw := newFakeNative()
	cfg := resolveOptions(nil)

	status := waitWith(nw.wait, cfg, nil, All, Infinite)

	assert.Equal(t, StatusObject0, status)
	assert.Equal(t, 0, nw.calls)
}

func TestWaitWith_ChunkedAnyTimesOut(t *testing.T) {
	handles := makeHandles(130)
	nw := newFakeNative() // nothing signaled

	cfg := resolveOptions([]Option{WithPollInterval(time.Millisecond), WithChunkSize(63)})
	status := waitWith(nw.wait, cfg, handles, Any, 20)

	assert.Equal(t, StatusTimeout, status)
}

// A chunk timing out mid-sweep is a recoverable anomaly, logged at warn,
// not an error: the sweep simply advances to the next chunk.
func TestWaitWith_ChunkedAnyLogsWarnMidSweep(t *testing.T) {
	handles := makeHandles(130)
	nw := newFakeNative()
	nw.signaled[handles[100]] = true // first chunk must time out before this one is reached

	var buf bytes.Buffer
	cfg := resolveOptions([]Option{
		WithPollInterval(time.Millisecond),
		WithLogger(NewWriterLogger(LevelWarn, &buf)),
	})
	status := waitWith(nw.wait, cfg, handles, Any, 5000)

	assert.Equal(t, ObjectIndex(100), status)
	assert.Contains(t, buf.String(), "timed out mid-sweep")
}

func TestWaitWith_ChunkedAllTimesOut(t *testing.T) {
	handles := makeHandles(130)
	nw := newFakeNative() // nothing signaled

	cfg := resolveOptions(nil)
	status := waitWith(nw.wait, cfg, handles, All, 20)

	assert.Equal(t, StatusTimeout, status)
}

func TestWaitWith_ChunkedAllFailure(t *testing.T) {
	handles := makeHandles(130)
	calls := 0
	failing := func(h []Handle, waitAll bool, ms Millis) Status {
		calls++
		if calls == 2 {
			return StatusFailed
		}
		return StatusObject0
	}

	cfg := resolveOptions(nil)
	status := waitWith(failing, cfg, handles, All, 1000)

	assert.Equal(t, StatusFailed, status)
	assert.Equal(t, 2, calls)
}

func TestSplitChunks(t *testing.T) {
	handles := makeHandles(200)
	chunks := splitChunks(handles, 63)

	require.Len(t, chunks, 4)
	assert.Equal(t, 0, chunks[0].base)
	assert.Equal(t, 63, chunks[1].base)
	assert.Equal(t, 126, chunks[2].base)
	assert.Equal(t, 189, chunks[3].base)
	assert.Len(t, chunks[0].handles, 63)
	assert.Len(t, chunks[3].handles, 11)
}

func TestSplitChunks_Empty(t *testing.T) {
	assert.Nil(t, splitChunks(nil, 63))
}
