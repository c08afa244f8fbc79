// Package logging определяет события контейнеров, о которых стоит сообщить.
package logging

//go:generate mockgen -source=logging.go -destination=mocks/logger.go -package=mocks -mock_names Logger=LoggerMock

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	SequenceLengthLimitReached(limit int, err error)
	BitSetGrowthRejected(pos uint64, limit uint64, err error)
}

// Nop логгер, который ничего не делает.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) SequenceLengthLimitReached(int, error)      {}
func (nopLogger) BitSetGrowthRejected(uint64, uint64, error) {}
