package bitset

import (
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Clone независимая копия множества с теми же опциями.
func (s *BitSet[T]) Clone() *BitSet[T] {
	res := &BitSet[T]{cfg: s.cfg}
	if len(s.words) > 0 {
		res.words = append([]uint64(nil), s.words...)
	}

	return res
}

// Swap обмен содержимым двух множеств.
func (s *BitSet[T]) Swap(other *BitSet[T]) {
	s.words, other.words = other.words, s.words
}

// All последовательность чисел множества по возрастанию.
func (s *BitSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, w := range s.words {
			for w != 0 {
				bit := bits.TrailingZeros64(w)
				if !yield(T(uint64(i)*wordBits + uint64(bit))) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// Elements числа множества по возрастанию.
func (s *BitSet[T]) Elements() []T {
	res := make([]T, 0, s.Len())
	for v := range s.All() {
		res = append(res, v)
	}

	return res
}

// Equal проверка множеств на равенство. Размер хранилищ не важен:
// хвост из нулевых слов в более длинном хранилище не учитывается.
func Equal[T constraints.Unsigned](a, b *BitSet[T]) bool {
	short, long := a.words, b.words
	if len(short) > len(long) {
		short, long = long, short
	}

	for i, w := range short {
		if w != long[i] {
			return false
		}
	}
	for _, w := range long[len(short):] {
		if w != 0 {
			return false
		}
	}

	return true
}

// Union объединение множеств.
func Union[T constraints.Unsigned](a, b *BitSet[T]) *BitSet[T] {
	return combine(a, b, func(x, y uint64) uint64 { return x | y }, true)
}

// Intersection пересечение множеств.
func Intersection[T constraints.Unsigned](a, b *BitSet[T]) *BitSet[T] {
	return combine(a, b, func(x, y uint64) uint64 { return x & y }, false)
}

// SymmetricDifference симметрическая разность множеств.
func SymmetricDifference[T constraints.Unsigned](a, b *BitSet[T]) *BitSet[T] {
	return combine(a, b, func(x, y uint64) uint64 { return x ^ y }, true)
}

// combine поэлементная операция над словами, недостающие слова более короткого
// хранилища считаются нулевыми. Результат получает опции a.
func combine[T constraints.Unsigned](a, b *BitSet[T], op func(x, y uint64) uint64, keepTail bool) *BitSet[T] {
	res := &BitSet[T]{cfg: a.cfg}

	size := min(len(a.words), len(b.words))
	if keepTail {
		size = max(len(a.words), len(b.words))
	}
	if size == 0 {
		return res
	}

	res.words = make([]uint64, size)
	for i := range res.words {
		res.words[i] = op(word(a.words, i), word(b.words, i))
	}

	return res
}

func word(words []uint64, i int) uint64 {
	if i < len(words) {
		return words[i]
	}

	return 0
}
