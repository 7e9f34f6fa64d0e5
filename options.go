package corotask

// runtimeOptions holds configuration options for Runtime creation.
type runtimeOptions struct {
	metricsEnabled bool
	logger         Logger
	defaultStack   int
}

// --- Runtime Options ---

// RuntimeOption configures a Runtime instance.
type RuntimeOption interface {
	applyRuntime(*runtimeOptions) error
}

// runtimeOptionImpl implements RuntimeOption.
type runtimeOptionImpl struct {
	applyFunc func(*runtimeOptions) error
}

func (o *runtimeOptionImpl) applyRuntime(opts *runtimeOptions) error {
	return o.applyFunc(opts)
}

// WithMetrics enables runtime metrics collection (call/await/wake/drain
// counters, coalesced-wake counts). When enabled, metrics are accessible
// via Runtime.Metrics. This adds minimal overhead; leave it disabled for
// zero-allocation hot paths.
func WithMetrics(enabled bool) RuntimeOption {
	return &runtimeOptionImpl{func(opts *runtimeOptions) error {
		opts.metricsEnabled = enabled
		return nil
	}}
}

// WithLogger sets the structured logger used by a Runtime. A nil logger is
// equivalent to not calling WithLogger: the package-level logger (see
// SetStructuredLogger) is used.
func WithLogger(logger Logger) RuntimeOption {
	return &runtimeOptionImpl{func(opts *runtimeOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithDefaultStackHint sets the default stack-size hint (in bytes) stored in
// the Runtime's options. This has no effect on actual goroutine stack
// allocation (the Go runtime grows goroutine stacks on demand), and nothing
// else reads it: tasks do not record a stack size, and neither logging nor
// metrics report one. It exists so code ported from the stackful original
// can keep passing its stack_size setting.
func WithDefaultStackHint(bytes int) RuntimeOption {
	return &runtimeOptionImpl{func(opts *runtimeOptions) error {
		opts.defaultStack = bytes
		return nil
	}}
}

// resolveRuntimeOptions applies RuntimeOption instances to runtimeOptions.
func resolveRuntimeOptions(opts []RuntimeOption) (*runtimeOptions, error) {
	cfg := &runtimeOptions{
		defaultStack: 64 * 1024, // 64 KiB, matching scenario S1's literal stack size
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyRuntime(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
