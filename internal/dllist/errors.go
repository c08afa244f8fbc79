package dllist

import (
	"github.com/sirkon/errors"
)

const (
	// ErrorLengthLimitReached ошибка вставки в список, длина которого уже
	// достигла заданного ограничения.
	ErrorLengthLimitReached errors.Const = "sequence length limit reached"
)

// IsLengthLimitReached проверка, что ошибка вызвана достижением ограничения
// на длину списка.
func IsLengthLimitReached(err error) bool {
	return errors.Is(err, ErrorLengthLimitReached)
}
