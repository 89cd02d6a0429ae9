package helpers

import "log"

// Logger provides simplified logging with a prefix and a verbosity switch.
type Logger struct {
	prefix  string
	verbose bool
}

// NewLogger creates a new logger with a prefix. Debug output is emitted only
// when verbose is set.
func NewLogger(prefix string, verbose bool) *Logger {
	return &Logger{prefix: "[" + prefix + "]", verbose: verbose}
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	log.Printf("%s INFO: %s %v", l.prefix, msg, args)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, args ...interface{}) {
	log.Printf("%s ERROR: %s - %v %v", l.prefix, msg, err, args)
}

// Debug logs a debug message when verbose logging is enabled
func (l *Logger) Debug(msg string, args ...interface{}) {
	if !l.verbose {
		return
	}
	log.Printf("%s DEBUG: %s %v", l.prefix, msg, args)
}
