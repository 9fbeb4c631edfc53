package domain

// LogLevel grades a message written to the vertex of one request.
type LogLevel uint8

const (
	// LogLevelDebug marks stage transitions.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo marks the reuse decision.
	LogLevelInfo
	// LogLevelWarn marks compiler warnings.
	LogLevelWarn
	// LogLevelError marks the failure that ended a run.
	LogLevelError
)

var levelNames = [...]string{"debug", "info", "warn", "error"}

// String returns the lowercase level name. Unknown levels read as "info".
func (l LogLevel) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return levelNames[LogLevelInfo]
}
