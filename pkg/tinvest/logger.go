package tinvest

import (
	"go.uber.org/zap"
)

// Logger is the minimal logging surface the client needs. The default
// implementation wraps a zap SugaredLogger; tests use NopLogger.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Infof(format string, args ...interface{})  { l.s.Infof(format, args...) }
func (l zapLogger) Errorf(format string, args ...interface{}) { l.s.Errorf(format, args...) }

// NewZapLogger adapts a zap SugaredLogger to the Logger interface.
func NewZapLogger(s *zap.SugaredLogger) Logger {
	return zapLogger{s: s}
}

func defaultLogger() Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return NopLogger()
	}
	return zapLogger{s: l.Sugar()}
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}
