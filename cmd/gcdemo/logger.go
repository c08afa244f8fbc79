package main

import (
	"github.com/sirupsen/logrus"

	"github.com/sirkon/gcontainers/internal/logging"
)

var _ logging.Logger = &logrusLogger{}

func newLogger(log *logrus.Logger) *logrusLogger {
	return &logrusLogger{log: log}
}

// logrusLogger реализация логгера событий контейнеров поверх logrus.
type logrusLogger struct {
	log *logrus.Logger
}

func (l *logrusLogger) SequenceLengthLimitReached(limit int, err error) {
	l.log.WithError(err).WithField("limit", limit).Warn("sequence length limit reached")
}

func (l *logrusLogger) BitSetGrowthRejected(pos uint64, limit uint64, err error) {
	l.log.WithError(err).WithFields(logrus.Fields{
		"element": pos,
		"limit":   limit,
	}).Warn("bit set element rejected")
}
