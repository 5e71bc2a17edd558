package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// base carries the fields stamped on every log line.
var base *log.Entry

// init configures the global logger when the package is imported: JSON with
// ISO 8601 timestamps on stdout, info level unless MATCH_NIGHT_LOG_LEVEL says
// otherwise.
func init() {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	log.SetOutput(os.Stdout)

	log.SetLevel(log.InfoLevel)
	if raw := os.Getenv("MATCH_NIGHT_LOG_LEVEL"); raw != "" {
		if level, err := log.ParseLevel(raw); err == nil {
			log.SetLevel(level)
		}
	}

	base = log.WithField("service", "match-night")
}

// Info logs a message at info level with optional fields
func Info(message string, fields map[string]any) {
	base.WithFields(fields).Info(message)
}

// Warn logs a message at warning level with optional fields
func Warn(message string, fields map[string]any) {
	base.WithFields(fields).Warn(message)
}

// Error logs a message at error level with optional fields
func Error(message string, fields map[string]any) {
	base.WithFields(fields).Error(message)
}

// Fatal logs a message at fatal level and exits the application
func Fatal(message string, fields map[string]any) {
	base.WithFields(fields).Fatal(message)
}
