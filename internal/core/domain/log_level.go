package domain

// LogLevel is the severity attached to a vertex log line. Values line up with
// log/slog so adapters can convert with a plain cast.
type LogLevel int

// Severities, lowest first.
const (
	LogLevelDebug LogLevel = -4
	LogLevelInfo  LogLevel = 0
	LogLevelWarn  LogLevel = 4
	LogLevelError LogLevel = 8
)

var logLevelNames = map[LogLevel]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

// String returns the upper-case name. Unknown levels print as INFO.
func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return logLevelNames[LogLevelInfo]
}

// Enabled reports whether a record at l passes a threshold of minimum.
func (l LogLevel) Enabled(minimum LogLevel) bool {
	return l >= minimum
}
