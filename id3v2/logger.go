package id3v2

import "fmt"

// Logger receives diagnostics emitted while parsing or committing a Tag.
// It replaces the module-level debug/warn globals of the source this
// package is modeled on: the core never writes to a process-wide channel
// directly, it calls into whatever Logger the caller supplied.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// StdLogger is a Logger that writes to fmt.Println-style output via the
// supplied print function, for callers that just want warnings on
// stderr without wiring a full logging library.
type StdLogger struct {
	Print func(string)
}

func (l StdLogger) Debugf(format string, args ...interface{}) {
	if l.Print != nil {
		l.Print("debug: " + fmt.Sprintf(format, args...))
	}
}

func (l StdLogger) Warnf(format string, args ...interface{}) {
	if l.Print != nil {
		l.Print("warn: " + fmt.Sprintf(format, args...))
	}
}

// Option configures Open and NewTag.
type Option func(*options)

type options struct {
	logger Logger
}

func newOptions(opts []Option) options {
	o := options{logger: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger injects a diagnostics sink. Parsing never fails because of
// a dropped frame or a tolerated quirk; WithLogger is how a caller
// observes those events.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
