package calculation

import "log"

// Logger receives diagnostic output from the calculators. The engine only
// logs when Debug is set, so the default no-op implementation costs nothing
// on the hot path.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger writes through the standard log package with level prefixes.
// Callers that pipe report output should point log at stderr first.
type StdLogger struct{}

func (StdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (StdLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (StdLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (StdLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }
