// Package logging carries the shared structured-log field names and the
// small Logger surface the batch tooling is written against, so the
// aggregator can be exercised in tests without a live logrus logger.
package logging

// Logger is the structured logging surface the batch tooling depends on.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Fatal and Fatalf exit the program.
	Fatal(msg string, fields ...Field)
	Fatalf(format string, args ...interface{})

	// WithError returns a logger that attaches err to every entry.
	WithError(err error) Logger
}

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}
