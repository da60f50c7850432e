package telemetry

import (
	"github.com/sirupsen/logrus"
)

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus returns a Logger writing through l, tagging every line with the
// given component name.
func NewLogrus(l *logrus.Logger, component string) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{entry: l.WithField("component", component)}
}

func (l *logrusLogger) Info(msg string)  { l.entry.Info(msg) }
func (l *logrusLogger) Debug(msg string) { l.entry.Debug(msg) }

func (l *logrusLogger) Error(msg string, err error) {
	l.entry.WithError(err).Error(msg)
}
