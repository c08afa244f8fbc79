package dllist

import (
	"github.com/sirkon/errors"
)

// Move конструктор перемещения: новый список забирает кольцо src целиком
// вместе с опциями, src становится пустым. Узлы не копируются, переставляются
// только две граничные связи, указывавшие на стража src.
func Move[T any](src *List[T]) *List[T] {
	l := &List[T]{cfg: src.cfg}
	l.init()
	l.attach(src.detach())
	checkRing(l)
	checkRing(src)

	return l
}

// Clone создание независимой копии списка с теми же значениями и опциями.
func (l *List[T]) Clone() *List[T] {
	return l.CloneFunc(func(v T) T { return v })
}

// CloneFunc создание независимой копии списка, где каждое значение
// получено с помощью clone.
func (l *List[T]) CloneFunc(clone func(T) T) *List[T] {
	l.init()
	res := &List[T]{cfg: l.cfg}
	res.init()
	for n := l.root.next; n != &l.root; n = n.next {
		res.insert(&res.root, clone(n.value))
	}

	return res
}

// Assign замена содержимого списка копией содержимого src.
// Опции списка не меняются. Если длина src превышает ограничение списка,
// возвращается ErrorLengthLimitReached и список не изменяется.
func (l *List[T]) Assign(src *List[T]) error {
	if l == src {
		return nil
	}

	if err := l.checkFits(src.size); err != nil {
		return errors.Wrap(err, "assign sequence copy")
	}

	l.Clear()
	src.init()
	for n := src.root.next; n != &src.root; n = n.next {
		l.insert(&l.root, n.value)
	}
	checkRing(l)

	return nil
}

// MoveFrom перемещение содержимого src в данный список. Прежнее
// содержимое списка удаляется, src становится пустым. Опции обоих
// списков остаются при них.
// Если длина src превышает ограничение списка, возвращается
// ErrorLengthLimitReached и оба списка не изменяются.
func (l *List[T]) MoveFrom(src *List[T]) error {
	if l == src {
		return nil
	}

	if err := l.checkFits(src.size); err != nil {
		return errors.Wrap(err, "move sequence")
	}

	l.Clear()
	l.attach(src.detach())
	checkRing(l)
	checkRing(src)

	return nil
}

// Swap обмен содержимым с другим списком за O(1).
// Узлы остаются на своих местах, поэтому все позиции продолжают ссылаться
// на те же значения, но уже в другом списке. Опции остаются при списках.
// Если содержимое одного из списков не укладывается в ограничение другого,
// возвращается ErrorLengthLimitReached и оба списка не изменяются.
func (l *List[T]) Swap(other *List[T]) error {
	if l == other {
		return nil
	}

	if err := l.checkFits(other.size); err != nil {
		return errors.Wrap(err, "swap sequences")
	}
	if err := other.checkFits(l.size); err != nil {
		return errors.Wrap(err, "swap sequences")
	}

	lfirst, llast, lsize := l.detach()
	l.attach(other.detach())
	other.attach(lfirst, llast, lsize)
	checkRing(l)
	checkRing(other)

	return nil
}

// checkFits проверка, что в список поместится size элементов.
func (l *List[T]) checkFits(size int) error {
	if l.cfg.limit == 0 || size <= l.cfg.limit {
		return nil
	}

	err := errors.Wrap(ErrorLengthLimitReached, "take elements").
		Int("limit", l.cfg.limit).
		Int("length", size)
	l.logger().SequenceLengthLimitReached(l.cfg.limit, err)
	return err
}

// detach отцепляет кольцо элементов от стража и возвращает его границы.
// Список остаётся пустым.
func (l *List[T]) detach() (first, last *node[T], size int) {
	l.init()
	if l.size == 0 {
		return nil, nil, 0
	}

	first, last, size = l.root.next, l.root.prev, l.size
	l.root.selfLink()
	l.size = 0

	return first, last, size
}

// attach цепляет отцепленное кольцо к стражу пустого списка: граничные
// элементы перенаправляются на адрес этого стража.
func (l *List[T]) attach(first, last *node[T], size int) {
	if size == 0 {
		l.root.selfLink()
		l.size = 0
		return
	}

	l.root.next = first
	l.root.prev = last
	first.prev = &l.root
	last.next = &l.root
	l.size = size
}
