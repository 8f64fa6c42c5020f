package handle

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the handle package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the handle package's logger.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Field returns a zap field that logs h under key.
func Field[S comparable, P Property[P]](key string, h Handle[S, P]) zap.Field {
	return zap.Object(key, h)
}

func fieldCount(n int) zap.Field {
	return zap.Int("elements", n)
}
