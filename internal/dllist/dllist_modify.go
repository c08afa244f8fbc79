package dllist

import (
	"github.com/sirkon/errors"
)

// Insert вставка значения непосредственно перед данной позицией с возвратом
// позиции нового элемента. Вставка перед Begin() делает новый элемент первым,
// вставка перед End() делает его последним.
// Возвращает ошибку ErrorLengthLimitReached, если длина списка уже достигла
// ограничения, в этом случае список не изменяется.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	l.init()
	if l.cfg.limit > 0 && l.size >= l.cfg.limit {
		err := errors.Wrap(ErrorLengthLimitReached, "insert new element").
			Int("limit", l.cfg.limit).
			Int("length", l.size)
		l.logger().SequenceLengthLimitReached(l.cfg.limit, err)
		return Iterator[T]{}, err
	}

	n := l.insert(pos.n, v)
	checkRing(l)
	return Iterator[T]{n: n}, nil
}

// PushFront добавление значения в начало списка.
func (l *List[T]) PushFront(v T) error {
	if _, err := l.Insert(l.Begin(), v); err != nil {
		return errors.Wrap(err, "push front")
	}

	return nil
}

// PushBack добавление значения в конец списка.
func (l *List[T]) PushBack(v T) error {
	if _, err := l.Insert(l.End(), v); err != nil {
		return errors.Wrap(err, "push back")
	}

	return nil
}

// Erase удаление элемента в данной позиции с возвратом позиции следующего
// за ним элемента.
// Позиция не должна быть равна End(). Все позиции удалённого элемента
// становятся недействительными, позиции остальных элементов не меняются.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	l.init()
	checkNotEnd(l, pos.n, "erase")

	next := pos.n.next
	l.erase(pos.n)
	checkRing(l)

	return Iterator[T]{n: next}
}

// EraseRange удаление элементов из полуинтервала [first, last) с возвратом last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for it := first; it != last; {
		it = l.Erase(it)
	}

	return last
}

// PopFront удаление первого элемента.
// Список не должен быть пустым.
func (l *List[T]) PopFront() {
	l.init()
	checkNotEmpty(l, "pop front")
	l.Erase(l.Begin())
}

// PopBack удаление последнего элемента.
// Список не должен быть пустым.
func (l *List[T]) PopBack() {
	l.init()
	checkNotEmpty(l, "pop back")
	l.Erase(l.End().Prev())
}

// Clear удаление всех элементов списка.
func (l *List[T]) Clear() {
	l.init()
	for n := l.root.next; n != &l.root; {
		next := n.next
		n.cleanup()
		n = next
	}

	l.root.selfLink()
	l.size = 0
}

// insert вставка без проверки ограничения на длину.
func (l *List[T]) insert(pos *node[T], v T) *node[T] {
	n := &node[T]{value: v}
	n.linkBefore(pos)
	l.size++

	return n
}

func (l *List[T]) erase(n *node[T]) {
	n.unlink()
	n.cleanup()
	l.size--
}
