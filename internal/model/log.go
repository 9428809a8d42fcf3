package model

// LogType is the severity badge of a Log.
type LogType string

const (
	LogTypeInfo    LogType = "info"
	LogTypeSuccess LogType = "success"
	LogTypeWarning LogType = "warning"
)

// LogTypes lists the selectable values of the log type filter.
var LogTypes = []LogType{LogTypeInfo, LogTypeSuccess, LogTypeWarning}

// Log is an add-on log record. CreatedAt is epoch milliseconds.
type Log struct {
	ID        string         `json:"id"`
	Type      LogType        `json:"type"`
	Source    string         `json:"source"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
	CreatedAt int64          `json:"createdAt"`
}
