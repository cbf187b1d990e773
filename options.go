package genarena

import "log/slog"

type options struct {
	capacity  int
	chunkSize int
	freeList  bool
	logger    *slog.Logger
}

// Option configures an arena created by New or NewSafeArena.
type Option func(*options)

// WithCapacity preallocates room for n values. It is a hint only and never
// changes which handles are returned.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithChunkSize sets the number of slots allocated at a time.
// If n <= 0, DefaultChunkSize is used.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithFreeList replaces the linear free-slot scan with a bitmap index of
// free slots. Insert still reuses the lowest free index, so the handles
// returned are identical; only the cost of finding the slot changes.
func WithFreeList(enabled bool) Option {
	return func(o *options) {
		o.freeList = enabled
	}
}

// WithLogger sets the logger used for debug output about storage growth
// and slot retirement. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
