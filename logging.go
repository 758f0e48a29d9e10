package sender

import (
	"log/slog"
)

// LogErrors returns an ErrorListener that logs lost packets at warn level. A
// nil logger uses slog.Default().
func LogErrors(logger *slog.Logger) ErrorListener {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "statsd"))
	return func(err error) {
		logger.Warn("metric dropped", slog.Any("error", err))
	}
}
