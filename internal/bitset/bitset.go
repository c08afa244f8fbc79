// Package bitset множество неотрицательных целых чисел в виде массива битов
// растущего по мере необходимости.
// WARNING: плохо подходит для разреженных множеств с большим максимальным элементом.
package bitset

import (
	"math"
	"math/bits"

	"github.com/sirkon/errors"
	"golang.org/x/exp/constraints"

	"github.com/sirkon/gcontainers/internal/logging"
)

// DefaultBitLimit ограничение на номер бита по-умолчанию.
const DefaultBitLimit uint64 = math.MaxInt32

const wordBits = 64

// New конструктор пустого множества с данными опциями.
func New[T constraints.Unsigned](opts ...Option) (*BitSet[T], error) {
	var s BitSet[T]
	for _, opt := range opts {
		if err := opt.apply(&s.cfg); err != nil {
			return nil, errors.Wrapf(err, "apply option %s", opt)
		}
	}

	return &s, nil
}

// BitSet множество беззнаковых чисел.
// Нулевое значение является готовым к работе пустым множеством.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type BitSet[T constraints.Unsigned] struct {
	words []uint64
	cfg   config
}

type config struct {
	limit  uint64
	logger logging.Logger
}

// Get проверка вхождения числа в множество.
func (s *BitSet[T]) Get(pos T) bool {
	i := uint64(pos) / wordBits
	if i >= uint64(len(s.words)) {
		return false
	}

	return s.words[i]&(1<<(uint64(pos)%wordBits)) != 0
}

// Set добавление числа в множество или его удаление.
// Добавление числа за пределами текущего хранилища расширяет его, удаление
// никогда не расширяет. Возвращает ErrorBitLimitExceeded при попытке добавить
// число не меньше ограничения, множество при этом не меняется.
func (s *BitSet[T]) Set(pos T, value bool) error {
	if value {
		if err := s.checkLimit(uint64(pos)); err != nil {
			return err
		}
	}

	i := uint64(pos) / wordBits
	if i >= uint64(len(s.words)) {
		if !value {
			return nil
		}
		s.grow(uint64(pos))
	}

	mask := uint64(1) << (uint64(pos) % wordBits)
	if value {
		s.words[i] |= mask
	} else {
		s.words[i] &^= mask
	}

	return nil
}

// Flip инвертирование вхождения числа в множество.
func (s *BitSet[T]) Flip(pos T) error {
	return s.Set(pos, !s.Get(pos))
}

// Clear удаление всех чисел из множества, хранилище сохраняется.
func (s *BitSet[T]) Clear() {
	clear(s.words)
}

// Len количество чисел в множестве.
func (s *BitSet[T]) Len() int {
	var res int
	for _, w := range s.words {
		res += bits.OnesCount64(w)
	}

	return res
}

// Empty проверка множества на пустоту.
func (s *BitSet[T]) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Limit ограничение на добавляемые числа.
func (s *BitSet[T]) Limit() uint64 {
	if s.cfg.limit == 0 {
		return DefaultBitLimit
	}

	return s.cfg.limit
}

func (s *BitSet[T]) checkLimit(pos uint64) error {
	limit := s.Limit()
	if pos < limit {
		return nil
	}

	err := errors.Wrap(ErrorBitLimitExceeded, "add element").
		Uint64("element", pos).
		Uint64("limit", limit)
	s.logger().BitSetGrowthRejected(pos, limit, err)
	return err
}

// grow расширяет хранилище так, чтобы в него поместился данный бит.
func (s *BitSet[T]) grow(pos uint64) {
	words := make([]uint64, pos/wordBits+1)
	copy(words, s.words)
	s.words = words
}

func (s *BitSet[T]) logger() logging.Logger {
	if s.cfg.logger == nil {
		return logging.Nop()
	}

	return s.cfg.logger
}
