package bitset

import (
	"strconv"
	"strings"

	"github.com/sirkon/errors"
	"golang.org/x/exp/constraints"
)

// String представление множества в виде {1, 5, 9}.
func (s *BitSet[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	b.WriteByte('}')

	return b.String()
}

// Parse разбор множества из списка чисел разделённых пробельными символами.
func Parse[T constraints.Unsigned](text string, opts ...Option) (*BitSet[T], error) {
	s, err := New[T](opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create bit set")
	}

	for i, field := range strings.Fields(text) {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "parse element").Int("element-index", i).Str("element", field)
		}
		if uint64(T(v)) != v {
			return nil, errors.New("element is out of the type range").Int("element-index", i).Str("element", field)
		}

		if err := s.Set(T(v), true); err != nil {
			return nil, errors.Wrap(err, "add element").Int("element-index", i)
		}
	}

	return s, nil
}
