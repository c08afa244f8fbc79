package dllist

import "iter"

// Collect конструктор списка из значений последовательности в порядке их выдачи.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	l.init()
	for v := range seq {
		l.insert(&l.root, v)
	}

	return l
}

// All последовательность значений от первого к последнему.
// Текущий элемент можно удалять во время обхода.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.init()
		for n := l.root.next; n != &l.root; {
			next := n.next
			if !yield(n.value) {
				return
			}
			n = next
		}
	}
}

// Backward последовательность значений от последнего к первому.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.init()
		for n := l.root.prev; n != &l.root; {
			prev := n.prev
			if !yield(n.value) {
				return
			}
			n = prev
		}
	}
}
