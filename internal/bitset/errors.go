package bitset

import (
	"github.com/sirkon/errors"
)

const (
	// ErrorBitLimitExceeded ошибка добавления числа не меньше заданного ограничения.
	ErrorBitLimitExceeded errors.Const = "bit set element limit exceeded"
)

// IsBitLimitExceeded проверка, что ошибка вызвана превышением ограничения.
func IsBitLimitExceeded(err error) bool {
	return errors.Is(err, ErrorBitLimitExceeded)
}
