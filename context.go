package splitlog

import "context"

type contextKey struct{ string }

// _contextKeyInstance is the internal key used to store the logger in a context.
var _contextKeyInstance = contextKey{"log"}

// WithContext adds a logger to a context.
func WithContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, _contextKeyInstance, logger)
}

// FromContext retrieves the logger from a context.
//
// If the context holds no logger it returns the process-wide Logger, which is
// nil before Init. Logging methods on a nil *Logger do nothing, so the result
// is always safe to call.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(_contextKeyInstance).(*Logger); ok {
		return logger
	}
	return _instance.Load()
}
