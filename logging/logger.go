// Package logging builds the hclog loggers used by the commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel selects the log level (trace, debug, info, warn, error).
	EnvLogLevel = "ICONFORGE_LOG_LEVEL"
	// EnvJSONLog switches to JSON output when set to "1".
	EnvJSONLog = "ICONFORGE_JSON_LOG"
	// DefaultLevel is used when neither a flag nor the environment sets one.
	DefaultLevel = "info"
)

// NewLogger creates a named hclog logger writing to output (stderr if nil).
// Text output is prefixed line by line; JSON output is left untouched.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"
	if !jsonFormat {
		output = NewPrefixWriter("🖼️  ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// GetLogLevel returns the level requested by flag, falling back to the
// environment and then to DefaultLevel.
func GetLogLevel(flag string) string {
	if flag = strings.TrimSpace(flag); flag != "" {
		return flag
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		return level
	}
	return DefaultLevel
}
