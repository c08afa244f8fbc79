//go:build dllistcheck

package dllist

import (
	"github.com/sirkon/errors"
)

// Проверки предусловий и целостности кольца в отладочной сборке.
// Включаются тегом dllistcheck, в обычной сборке не стоят ничего.

func checkNotEmpty[T any](l *List[T], op string) {
	if l.size == 0 {
		panic(errors.Newf("%s on empty list", op))
	}
}

func checkNotEnd[T any](l *List[T], n *node[T], op string) {
	if n == &l.root {
		panic(errors.Newf("%s at the end position", op))
	}
}

func checkRing[T any](l *List[T]) {
	if err := verifyRing(l); err != nil {
		panic(errors.Wrap(err, "ring integrity compromised"))
	}
}
