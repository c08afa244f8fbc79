package bitset

import (
	"fmt"

	"github.com/sirkon/errors"

	"github.com/sirkon/gcontainers/internal/logging"
)

// Option тип опции для создания множества.
type Option interface {
	String() string
	apply(c *config) error
}

// BitLimit задаёт ограничение: в множество можно добавлять только числа меньше n.
func BitLimit(n uint64) Option {
	return optionBitLimit(n)
}

// WithLogger задаёт логгер событий множества.
func WithLogger(logger logging.Logger) Option {
	return optionLogger{logger: logger}
}

type optionBitLimit uint64

func (o optionBitLimit) String() string {
	return fmt.Sprintf("limit elements to be less than %d", uint64(o))
}

func (o optionBitLimit) apply(c *config) error {
	if o == 0 {
		return errors.New("bit limit must be positive")
	}

	c.limit = uint64(o)
	return nil
}

type optionLogger struct {
	logger logging.Logger
}

func (o optionLogger) String() string {
	return "set events logger"
}

func (o optionLogger) apply(c *config) error {
	if o.logger == nil {
		return errors.New("logger must not be nil")
	}

	c.logger = o.logger
	return nil
}
