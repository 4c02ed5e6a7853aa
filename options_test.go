package multiwait

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveOptions_Defaults(t *testing.T) {
	cfg := resolveOptions(nil)
	assert.Equal(t, defaultPollInterval, cfg.pollInterval)
	assert.Equal(t, defaultChunkSize, cfg.chunkSize)
	assert.Equal(t, chunkMax+1, cfg.fastPathMax())
}

func TestWithPollInterval(t *testing.T) {
	cfg := resolveOptions([]Option{WithPollInterval(5 * time.Millisecond)})
	assert.Equal(t, 5*time.Millisecond, cfg.pollInterval)
}

func TestWithPollInterval_IgnoresNonPositive(t *testing.T) {
	cfg := resolveOptions([]Option{WithPollInterval(0), WithPollInterval(-time.Second)})
	assert.Equal(t, defaultPollInterval, cfg.pollInterval)
}

func TestWithChunkSize(t *testing.T) {
	cfg := resolveOptions([]Option{WithChunkSize(8)})
	assert.Equal(t, 8, cfg.chunkSize)
	assert.Equal(t, 9, cfg.fastPathMax())
}

func TestWithChunkSize_IgnoresOutOfRange(t *testing.T) {
	cfg := resolveOptions([]Option{WithChunkSize(0), WithChunkSize(-1), WithChunkSize(chunkMax + 1)})
	assert.Equal(t, defaultChunkSize, cfg.chunkSize)
}

func TestWithLogger(t *testing.T) {
	l := NoOpLogger{}
	cfg := resolveOptions([]Option{WithLogger(l)})
	assert.Equal(t, l, cfg.log())
}

func TestWithLogger_IgnoresNil(t *testing.T) {
	SetLogger(nil)
	cfg := resolveOptions([]Option{WithLogger(nil)})
	assert.Equal(t, NoOpLogger{}, cfg.log())
}

func TestResolveOptions_IgnoresNilOption(t *testing.T) {
	cfg := resolveOptions([]Option{nil, WithChunkSize(10)})
	assert.Equal(t, 10, cfg.chunkSize)
}
