package domain

import "time"

// LogFormat selects how log records are rendered.
type LogFormat string

const (
	// LogFormatAuto renders pretty logs on a terminal and JSON otherwise.
	LogFormatAuto LogFormat = "auto"
	// LogFormatPretty renders human readable, coloured logs.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON renders one JSON object per log record.
	LogFormatJSON LogFormat = "json"
)

// DefaultAutosaveDebounce is how long the watcher waits for the session document to settle.
const DefaultAutosaveDebounce = 500 * time.Millisecond

// Config is the resolved easyws configuration.
type Config struct {
	// StoreDir is the directory holding workspace records.
	StoreDir string
	// Extension is appended to record file names.
	Extension string
	// SessionFile is the session document shared with the editor, or StdioPath.
	SessionFile string
	// LogFormat selects the log handler.
	LogFormat LogFormat
	// AutosaveDebounce is the quiet period before an autosave.
	AutosaveDebounce time.Duration
}
