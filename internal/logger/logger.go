// Package logger configures the process-wide logrus logger for CLI use.
// The core packages (schedule, layout) never log; commands do.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// CLIFormatter provides clean output for CLI applications
type CLIFormatter struct {
	DisableTimestamp bool
	DisableLevel     bool
	DisableColors    bool
}

func (f *CLIFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var sb strings.Builder

	if !f.DisableLevel {
		levelColor := ""
		resetColor := ""
		if !f.DisableColors {
			switch entry.Level {
			case logrus.ErrorLevel:
				levelColor = "\033[31m" // Red
			case logrus.WarnLevel:
				levelColor = "\033[33m" // Yellow
			case logrus.InfoLevel:
				levelColor = "\033[36m" // Cyan
			case logrus.DebugLevel:
				levelColor = "\033[37m" // White
			}
			resetColor = "\033[0m"
		}
		sb.WriteString(levelColor)
		sb.WriteString(strings.ToUpper(entry.Level.String()))
		sb.WriteString(resetColor)
		sb.WriteString(": ")
	}

	sb.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		sb.WriteString(" ")
		for k, v := range entry.Data {
			sb.WriteString(fmt.Sprintf("%s=%v ", k, v))
		}
	}

	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

// Setup configures level and formatting from the CLI flags. Environment
// variables LOG_MODE (quiet|verbose|debug) and LOG_FORMAT (json|text)
// override the flags.
func Setup(verbose bool, jsonLogs bool, quiet bool) {
	switch os.Getenv("LOG_MODE") {
	case "quiet":
		quiet, verbose = true, false
	case "verbose", "debug":
		quiet, verbose = false, true
	}

	switch os.Getenv("LOG_FORMAT") {
	case "json":
		jsonLogs = true
	case "text":
		jsonLogs = false
	}

	switch {
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	log.SetOutput(os.Stderr)
	if jsonLogs {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&CLIFormatter{
			DisableTimestamp: true,
			DisableColors:    !isatty.IsTerminal(os.Stderr.Fd()),
		})
	}
}

// L returns the configured logger instance.
func L() *logrus.Logger {
	return log
}

// Convenience delegates.

func Info(msg string) {
	log.Info(msg)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Error(msg string) {
	log.Error(msg)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// WithField creates an entry with a single field
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}
