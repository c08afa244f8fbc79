package dllist

import (
	"fmt"

	"github.com/sirkon/errors"

	"github.com/sirkon/gcontainers/internal/logging"
)

// Option тип опции для создания списка.
type Option interface {
	String() string
	apply(c *config) error
}

// LengthLimit задаёт максимальное количество элементов в списке.
// Вставка сверх этого количества завершается ошибкой ErrorLengthLimitReached.
func LengthLimit(n int) Option {
	return optionLengthLimit(n)
}

// WithLogger задаёт логгер событий списка.
func WithLogger(logger logging.Logger) Option {
	return optionLogger{logger: logger}
}

type optionLengthLimit int

func (o optionLengthLimit) String() string {
	return fmt.Sprintf("limit sequence length to %d elements", int(o))
}

func (o optionLengthLimit) apply(c *config) error {
	if o <= 0 {
		return errors.Newf("length limit must be positive, got %d", int(o))
	}

	c.limit = int(o)
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
