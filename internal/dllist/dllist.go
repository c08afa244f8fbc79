// Package dllist двусвязный список с заголовком-стражем, который разделяется
// между самим списком и каждым его узлом.
//
// Страж хранится в структуре List по значению, поэтому пустой список не
// требует ни одного выделения памяти. Первый элемент списка это root.next,
// последний это root.prev, отдельных указателей на голову и хвост нет.
// Благодаря стражу позиция End() допускает шаг назад к последнему элементу.
package dllist

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/gcontainers/internal/logging"
)

// New конструктор пустого двусвязного списка с данными опциями.
func New[T any](opts ...Option) (*List[T], error) {
	l := &List[T]{}
	l.init()

	for _, opt := range opts {
		if err := opt.apply(&l.cfg); err != nil {
			return nil, errors.Wrapf(err, "apply option %s", opt)
		}
	}

	return l, nil
}

// From конструктор списка из данных значений в том же порядке.
func From[T any](values ...T) *List[T] {
	l := &List[T]{}
	l.init()
	for _, v := range values {
		l.insert(&l.root, v)
	}

	return l
}

// List двусвязный список.
// Нулевое значение является готовым к работе пустым списком.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
// WARNING: Список нельзя копировать присваиванием после начала использования,
// узлы ссылаются на адрес стража. Для этого есть Clone, Move, MoveFrom, Assign
// и Swap.
type List[T any] struct {
	root node[T]
	size int
	cfg  config
}

type config struct {
	limit  int
	logger logging.Logger
}

// init замыкает стража на себя, если список ещё ни разу не использовался.
func (l *List[T]) init() {
	if l.root.next == nil {
		l.root.selfLink()
	}
}

// Empty проверка списка на пустоту.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Len количество элементов в списке.
func (l *List[T]) Len() int {
	return l.size
}

// Limit ограничение на длину списка, 0 означает отсутствие ограничения.
func (l *List[T]) Limit() int {
	return l.cfg.limit
}

// Begin позиция первого элемента, либо End() для пустого списка.
func (l *List[T]) Begin() Iterator[T] {
	l.init()
	return Iterator[T]{n: l.root.next}
}

// End позиция стража.
func (l *List[T]) End() Iterator[T] {
	l.init()
	return Iterator[T]{n: &l.root}
}

// CBegin то же, что и Begin, но только на чтение.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd то же, что и End, но только на чтение.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// RBegin начало обхода в обратном порядке, т.е. позиция последнего элемента.
func (l *List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: l.End()}
}

// REnd конец обхода в обратном порядке.
func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: l.Begin()}
}

// CRBegin то же, что и RBegin, но только на чтение.
func (l *List[T]) CRBegin() ConstReverseIterator[T] {
	return l.RBegin().Const()
}

// CREnd то же, что и REnd, но только на чтение.
func (l *List[T]) CREnd() ConstReverseIterator[T] {
	return l.REnd().Const()
}

// Front значение первого элемента.
// Список не должен быть пустым.
func (l *List[T]) Front() T {
	l.init()
	checkNotEmpty(l, "front")
	return l.root.next.value
}

// Back значение последнего элемента.
// Список не должен быть пустым.
func (l *List[T]) Back() T {
	l.init()
	checkNotEmpty(l, "back")
	return l.root.prev.value
}

func (l *List[T]) logger() logging.Logger {
	if l.cfg.logger == nil {
		return logging.Nop()
	}

	return l.cfg.logger
}
