// ABOUTME: Leveled logging wrapper around logrus for verbose mode output
// ABOUTME: Global level via SetLevel; writes to stderr so it never mixes with the reveal output

package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Level constants matching logrus levels.
const (
	LevelDebug = logrus.DebugLevel
	LevelInfo  = logrus.InfoLevel
	LevelWarn  = logrus.WarnLevel
	LevelError = logrus.ErrorLevel
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(LevelInfo)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	return l
}

// SetLevel sets the global log level.
func SetLevel(l logrus.Level) {
	logger.SetLevel(l)
}

// GetLevel returns the current log level.
func GetLevel() logrus.Level {
	return logger.GetLevel()
}

// SetOutput redirects log output, e.g. to a file while the terminal is raw.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	logger.Errorf(format, args...)
}
