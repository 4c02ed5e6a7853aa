package multiwait

import "time"

// engineConfig holds the resolved, immutable configuration captured by
// Activate and consulted by every Wait call for the life of the process.
type engineConfig struct {
	pollInterval time.Duration
	chunkSize    int
	logger       Logger
}

const (
	// defaultPollInterval is the first-sweep poll budget used by the ANY
	// slow path (see waitAnyChunks): short enough to bound the added
	// latency of round-robin polling, long enough to avoid busy-looping
	// the kernel call.
	defaultPollInterval = time.Millisecond

	// chunkMax is CHUNK_MAX from the specification: the largest chunk the
	// engine will ever hand to a single native call, leaving headroom
	// under the kernel's 64-handle ceiling.
	chunkMax = 63

	// defaultChunkSize is chunkMax unless overridden by WithChunkSize.
	defaultChunkSize = chunkMax
)

// Option configures Activate.
type Option interface {
	apply(*engineConfig)
}

type optionFunc func(*engineConfig)

func (f optionFunc) apply(cfg *engineConfig) { f(cfg) }

// WithPollInterval overrides the first-sweep poll budget used by the ANY
// slow path. Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return optionFunc(func(cfg *engineConfig) {
		if d > 0 {
			cfg.pollInterval = d
		}
	})
}

// WithChunkSize overrides the maximum chunk size, for exercising the
// chunked code paths without constructing 64+ real handles in tests. Values
// outside (0, chunkMax] are ignored.
func WithChunkSize(n int) Option {
	return optionFunc(func(cfg *engineConfig) {
		if n > 0 && n <= chunkMax {
			cfg.chunkSize = n
		}
	})
}

// WithLogger overrides the global logger (see SetLogger) for this
// process's install state. A nil Logger is ignored.
func WithLogger(l Logger) Option {
	return optionFunc(func(cfg *engineConfig) {
		if l != nil {
			cfg.logger = l
		}
	})
}

func resolveOptions(opts []Option) engineConfig {
	cfg := engineConfig{
		pollInterval: defaultPollInterval,
		chunkSize:    defaultChunkSize,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.apply(&cfg)
	}
	return cfg
}

// log returns the configured logger, falling back to the process-global
// one (see SetLogger) when none was supplied via WithLogger.
func (cfg engineConfig) log() Logger {
	if cfg.logger != nil {
		return cfg.logger
	}
	return getGlobalLogger()
}

// fastPathMax is the largest N this configuration will forward directly
// to the native adapter without chunking: one more than chunkSize, since
// a single native call may use the full 64-handle kernel budget.
func (cfg engineConfig) fastPathMax() int { return cfg.chunkSize + 1 }
