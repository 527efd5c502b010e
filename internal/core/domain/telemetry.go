package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// BuildStats counts the outcome of recorded build decisions.
type BuildStats struct {
	// Built is the number of sources handed to the compiler, including those
	// that failed.
	Built int
	// Cached is the number of sources answered from the cache.
	Cached int
	// Failed is the number of sources with errors, compiled or cached.
	Failed int
}

// Sub returns the counts recorded since earlier was taken.
func (s BuildStats) Sub(earlier BuildStats) BuildStats {
	return BuildStats{
		Built:  s.Built - earlier.Built,
		Cached: s.Cached - earlier.Cached,
		Failed: s.Failed - earlier.Failed,
	}
}
